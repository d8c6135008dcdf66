package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mjal-at/file-service/internal/api/middleware"
	"github.com/mjal-at/file-service/internal/services"
)

// Download streams the file's bytes with its original name and declared
// MIME type as transfer metadata.
func (h *Handler) Download(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	rec, stream, err := h.files.Download(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		case errors.Is(err, services.ErrNotFoundOnDisk):
			c.JSON(http.StatusNotFound, gin.H{"error": "File not found on disk"})
		default:
			log.Printf("download error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Download failed"})
		}
		return
	}
	defer stream.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", rec.OriginalName),
	}
	c.DataFromReader(http.StatusOK, rec.Size, rec.MimeType, stream, extraHeaders)
}
