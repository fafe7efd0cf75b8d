package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinarybook/backend/internal/service"
)

// 5 MB cap on photo uploads.
const maxPhotoSize = 5 << 20

// FileHandler accepts multipart photo uploads and stores them through
// the photo service.
type FileHandler struct {
	photos *service.PhotoService
}

func NewFileHandler(photos *service.PhotoService) *FileHandler {
	return &FileHandler{photos: photos}
}

func (h *FileHandler) RegisterRoutes(router *gin.RouterGroup, auth gin.HandlerFunc) {
	files := router.Group("/files", auth)
	files.POST("/photos", h.UploadPhoto)
}

func (h *FileHandler) UploadPhoto(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if header.Size > maxPhotoSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds maximum size"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read uploaded file"})
		return
	}
	defer file.Close()

	url, err := h.photos.Upload(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
