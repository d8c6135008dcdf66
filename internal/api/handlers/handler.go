package handlers

import (
	"time"

	"github.com/mjal-at/file-service/internal/services"
	"github.com/mjal-at/file-service/internal/storage"
)

// Handler holds the collaborators the HTTP endpoints need. Everything is
// injected at startup; there is no package state.
type Handler struct {
	files   *services.FileService
	meta    storage.MetadataStore
	started time.Time
}

func New(files *services.FileService, meta storage.MetadataStore) *Handler {
	return &Handler{
		files:   files,
		meta:    meta,
		started: time.Now(),
	}
}
