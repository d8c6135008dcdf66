package models

import (
	"time"
)

// Status of a file record. Only StatusCompleted is produced today; the
// other values are reserved for an async processing pipeline.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusProcessing Status = "processing"
	StatusFailed     Status = "failed"
)

// FileRecord is the persisted metadata row for one uploaded file.
type FileRecord struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	StoredName   string    `json:"stored_name"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	MimeType     string    `json:"mime_type"`
	StoragePath  string    `json:"-"`
	Status       Status    `json:"status"`
	UploadDate   time.Time `json:"upload_date"`
}

// FileInfo is the client-facing projection of a FileRecord. The storage
// path never leaves the service.
type FileInfo struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	Type       string    `json:"type"`
	UploadDate time.Time `json:"uploadDate"`
	Status     Status    `json:"status"`
}

// Info returns the projection served to clients.
func (r FileRecord) Info() FileInfo {
	return FileInfo{
		ID:         r.ID,
		Name:       r.OriginalName,
		Size:       r.Size,
		Type:       r.MimeType,
		UploadDate: r.UploadDate,
		Status:     r.Status,
	}
}
