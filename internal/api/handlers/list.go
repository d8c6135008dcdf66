package handlers

import (
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mjal-at/file-service/internal/api/middleware"
	"github.com/mjal-at/file-service/internal/models"
)

// List returns the caller's files, newest first by default. Search,
// status filter and sorting are read-side transformations: query params
// search, status, sortBy (name|date|size) and sortDir (asc|desc).
func (h *Handler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	records, err := h.files.List(c.Request.Context(), userID)
	if err != nil {
		log.Printf("list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch files"})
		return
	}

	records = filterRecords(records, c.Query("search"), c.Query("status"))
	sortRecords(records, c.Query("sortBy"), c.Query("sortDir"))

	infos := make([]models.FileInfo, 0, len(records))
	for _, rec := range records {
		infos = append(infos, rec.Info())
	}
	c.JSON(http.StatusOK, infos)
}

func filterRecords(records []models.FileRecord, search, status string) []models.FileRecord {
	if search == "" && status == "" {
		return records
	}
	search = strings.ToLower(search)

	filtered := records[:0]
	for _, rec := range records {
		if search != "" && !strings.Contains(strings.ToLower(rec.OriginalName), search) {
			continue
		}
		if status != "" && string(rec.Status) != status {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

// sortRecords orders in place. Unknown keys keep the store's default
// date-descending order.
func sortRecords(records []models.FileRecord, sortBy, sortDir string) {
	asc := sortDir == "asc"

	var less func(a, b models.FileRecord) bool
	switch sortBy {
	case "name":
		less = func(a, b models.FileRecord) bool {
			return strings.ToLower(a.OriginalName) < strings.ToLower(b.OriginalName)
		}
	case "size":
		less = func(a, b models.FileRecord) bool { return a.Size < b.Size }
	case "date":
		less = func(a, b models.FileRecord) bool { return a.UploadDate.Before(b.UploadDate) }
	default:
		if !asc {
			return
		}
		less = func(a, b models.FileRecord) bool { return a.UploadDate.Before(b.UploadDate) }
	}

	sort.SliceStable(records, func(i, j int) bool {
		if asc {
			return less(records[i], records[j])
		}
		return less(records[j], records[i])
	})
}
