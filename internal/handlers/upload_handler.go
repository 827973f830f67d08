package handlers

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"hireboard_backend/internal/middleware"
	"hireboard_backend/internal/services"
	"hireboard_backend/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService *services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{BaseHandler: base, uploadService: uploadService}
}

func (h *UploadHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/uploads", middleware.AuthMiddleware(), h.Upload)
	api.GET("/files/*path", h.Serve)
}

// Upload stores one multipart file and returns its stored path and URL. The
// client keeps the field pending until this responds, then records the path
// as the field's answer.
// POST /api/v1/uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file in multipart form"))
		return
	}

	result, err := h.uploadService.SaveApplicationFile(c.Request.Context(), userID, header)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Serve streams a locally stored file. Only used with the local storage
// backend; S3 deployments hand out signed URLs instead.
// GET /api/v1/files/*path
func (h *UploadHandler) Serve(c *gin.Context) {
	path := c.Param("path")
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}

	rc, err := h.uploadService.Open(c.Request.Context(), path)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, rc)
}
