package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hireboard_backend/internal/middleware"
	"hireboard_backend/internal/models"
	"hireboard_backend/internal/services"
	"hireboard_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService *services.JobService
	appService *services.ApplicationService
}

func NewJobHandler(base *BaseHandler, jobService *services.JobService, appService *services.ApplicationService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService, appService: appService}
}

func (h *JobHandler) RegisterRoutes(api *gin.RouterGroup) {
	jobs := api.Group("/jobs")
	jobs.Use(middleware.OptionalAuthMiddleware())
	{
		jobs.GET("", h.List)
		jobs.GET("/:id", h.Get)
	}

	admin := api.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.PUT("/:id/fields", h.ReplaceSchema)
		admin.PATCH("/:id/active", h.SetActive)
		admin.DELETE("/:id", h.Delete)
		admin.GET("/:id/applications", h.Applications)
	}
}

// List returns one filtered, sorted page of open positions.
// GET /api/v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	includeInactive := h.GetRole(c) == string(models.UserRoleAdmin) && c.Query("include_inactive") == "true"

	resp, err := h.jobService.ListJobs(c.Request.Context(), query, includeInactive)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get returns one position with its application form contracts.
// GET /api/v1/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	detail, err := h.jobService.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create opens a new position with its form schema.
// POST /api/v1/admin/jobs
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	detail, err := h.jobService.CreateJob(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// Update edits a position's own attributes.
// PATCH /api/v1/admin/jobs/:id
func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	detail, err := h.jobService.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type replaceSchemaRequest struct {
	Fields []dto.FieldDefRequest `json:"fields" validate:"dive"`
}

// ReplaceSchema swaps the custom field set of a position that has no
// applications yet.
// PUT /api/v1/admin/jobs/:id/fields
func (h *JobHandler) ReplaceSchema(c *gin.Context) {
	var req replaceSchemaRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	detail, err := h.jobService.ReplaceSchema(c.Request.Context(), c.Param("id"), req.Fields)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

type setActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// SetActive opens or closes a position for applications.
// PATCH /api/v1/admin/jobs/:id/active
func (h *JobHandler) SetActive(c *gin.Context) {
	var req setActiveRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.jobService.SetActive(c.Request.Context(), c.Param("id"), *req.IsActive); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "is_active": *req.IsActive})
}

// Delete removes a position with its schema and applications.
// DELETE /api/v1/admin/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Applications lists the raw applications for one position.
// GET /api/v1/admin/jobs/:id/applications
func (h *JobHandler) Applications(c *gin.Context) {
	apps, err := h.appService.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps, "count": len(apps)})
}
