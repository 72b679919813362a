package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/jcanovas/vivenda/internal/errors"
	"github.com/jcanovas/vivenda/internal/media"
)

// maxUploadBytes bounds a single image upload.
const maxUploadBytes = 10 << 20

// Uploader sends image bytes to the media host.
type Uploader interface {
	UploadImage(ctx context.Context, name string, data []byte) (*media.Upload, error)
}

// MediaHandler handles image upload HTTP requests.
type MediaHandler struct {
	uploader Uploader
}

// NewMediaHandler creates a new MediaHandler instance.
func NewMediaHandler(uploader Uploader) *MediaHandler {
	return &MediaHandler{
		uploader: uploader,
	}
}

// Upload handles POST /api/v1/media.
// Accepts one multipart image and returns the URL the media host assigned.
// The draft keeps only that URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		apierrors.BadRequest(c, "Missing image file", nil)
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		apierrors.BadRequest(c, "Image too large", map[string]interface{}{
			"maxBytes": maxUploadBytes,
		})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		apierrors.InternalServerError(c, "Failed to read image", err)
		return
	}

	upload, err := h.uploader.UploadImage(c.Request.Context(), header.Filename, data)
	if err != nil {
		apierrors.InternalServerError(c, "Failed to upload image", err)
		return
	}

	c.JSON(http.StatusCreated, upload)
}
