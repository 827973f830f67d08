package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireboard_backend/internal/forms"
	"hireboard_backend/internal/middleware"
	"hireboard_backend/internal/models"
	"hireboard_backend/internal/services"
	"hireboard_backend/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	appService *services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, appService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, appService: appService}
}

func (h *ApplicationHandler) RegisterRoutes(api *gin.RouterGroup) {
	jobs := api.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/:id/applications", h.Submit)
		jobs.GET("/:id/applied", h.Applied)
	}

	mine := api.Group("/applications")
	mine.Use(middleware.AuthMiddleware())
	{
		mine.GET("", h.ListMine)
	}

	admin := api.Group("/admin/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("", h.ListAll)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id/status", h.SetStatus)
	}
}

// Submit files an application for a position.
// POST /api/v1/jobs/:id/applications
func (h *ApplicationHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	builder := forms.FromSubmission(req.FormData, req.PendingUploads)

	app, err := h.appService.Submit(c.Request.Context(), c.Param("id"), userID, builder, req.ProfilePhotoURL)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// Applied reports whether the caller has already applied to the position.
// GET /api/v1/jobs/:id/applied
func (h *ApplicationHandler) Applied(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	applied, err := h.appService.HasApplied(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": applied})
}

// ListMine returns the caller's applications run through the filter pipeline.
// GET /api/v1/applications
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.appService.ListMine(c.Request.Context(), userID, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListAll returns every application for the review board.
// GET /api/v1/admin/applications
func (h *ApplicationHandler) ListAll(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.appService.ListAll(c.Request.Context(), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get renders one application with labeled answers and signed file links.
// GET /api/v1/admin/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	detail, err := h.appService.GetDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// SetStatus moves an application through the review pipeline.
// PATCH /api/v1/admin/applications/:id/status
func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	app, err := h.appService.SetStatus(c.Request.Context(), c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
