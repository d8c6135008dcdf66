package storage

import (
	"context"
	"errors"

	"github.com/mjal-at/file-service/internal/models"
)

// ErrNotFound means no record matched the (id, user_id) pair. A record
// owned by another user is indistinguishable from an absent one.
var ErrNotFound = errors.New("file record not found")

// MetadataStore is the authoritative index of what files exist and who
// owns them. Every read and write is scoped by user_id.
type MetadataStore interface {
	// Insert assigns the record's ID and upload date, persists it, and
	// returns the completed record.
	Insert(ctx context.Context, rec models.FileRecord) (models.FileRecord, error)

	// ListByUser returns the user's records, newest first.
	ListByUser(ctx context.Context, userID string) ([]models.FileRecord, error)

	// Get returns the record matching both id and userID, or ErrNotFound.
	Get(ctx context.Context, id, userID string) (models.FileRecord, error)

	// Delete removes the record matching both id and userID. Zero rows
	// affected is reported as ErrNotFound.
	Delete(ctx context.Context, id, userID string) error

	// Ping reports store connectivity, for the health endpoint.
	Ping(ctx context.Context) error
}
