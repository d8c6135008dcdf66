package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/mjal-at/file-service/internal/blob"
	"github.com/mjal-at/file-service/internal/models"
	"github.com/mjal-at/file-service/internal/storage"
	"github.com/mjal-at/file-service/internal/validation"
)

// FileService sequences validator, blob store, metadata store and
// notifier into the operations exposed at the API boundary.
type FileService struct {
	validator *validation.Validator
	blobs     blob.Store
	meta      storage.MetadataStore
	notifier  Notifier
}

func NewFileService(validator *validation.Validator, blobs blob.Store, meta storage.MetadataStore, notifier Notifier) *FileService {
	return &FileService{
		validator: validator,
		blobs:     blobs,
		meta:      meta,
		notifier:  notifier,
	}
}

// Upload validates the file, stores its bytes, persists the metadata row
// and dispatches a best-effort notification. Nothing is written when
// validation rejects. The upload has succeeded once the insert commits;
// notification failures are logged, never propagated.
func (s *FileService) Upload(ctx context.Context, r io.Reader, originalName, mimeType string, size int64, userID string) (models.FileRecord, error) {
	if err := s.validator.Check(mimeType, size); err != nil {
		return models.FileRecord{}, err
	}

	storedName, storagePath, err := s.blobs.Put(ctx, r, size, originalName, mimeType)
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("failed to store file: %w", err)
	}

	rec, err := s.meta.Insert(ctx, models.FileRecord{
		UserID:       userID,
		StoredName:   storedName,
		OriginalName: originalName,
		Size:         size,
		MimeType:     mimeType,
		StoragePath:  storagePath,
		Status:       models.StatusCompleted,
	})
	if err != nil {
		// cleanup the blob if the metadata insert fails
		if delErr := s.blobs.Delete(ctx, storagePath); delErr != nil {
			log.Printf("warning: failed to cleanup blob after metadata insert failure: %v", delErr)
		}
		return models.FileRecord{}, fmt.Errorf("failed to save file metadata: %w", err)
	}

	go func() {
		if err := s.notifier.FileUploaded(context.Background(), rec); err != nil {
			log.Printf("warning: failed to publish upload notification for %s: %v", rec.ID, err)
		}
	}()

	return rec, nil
}

// List returns the user's records, newest first.
func (s *FileService) List(ctx context.Context, userID string) ([]models.FileRecord, error) {
	return s.meta.ListByUser(ctx, userID)
}

// Get returns one record, or ErrNotFound if it is absent or owned by
// someone else.
func (s *FileService) Get(ctx context.Context, id, userID string) (models.FileRecord, error) {
	rec, err := s.meta.Get(ctx, id, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.FileRecord{}, ErrNotFound
		}
		return models.FileRecord{}, err
	}
	return rec, nil
}

// Download returns the record and a reader over its bytes. A record whose
// blob is missing from storage fails with ErrNotFoundOnDisk.
func (s *FileService) Download(ctx context.Context, id, userID string) (models.FileRecord, io.ReadCloser, error) {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return models.FileRecord{}, nil, err
	}

	stream, err := s.blobs.Open(ctx, rec.StoragePath)
	if err != nil {
		if errors.Is(err, blob.ErrNotFound) {
			log.Printf("warning: blob missing for record %s at %s", rec.ID, rec.StoragePath)
			return models.FileRecord{}, nil, ErrNotFoundOnDisk
		}
		return models.FileRecord{}, nil, err
	}
	return rec, stream, nil
}

// Delete removes the metadata row, then removes the blob. The row delete
// is authoritative; a blob removal failure leaves an orphaned blob, which
// is logged and tolerated.
func (s *FileService) Delete(ctx context.Context, id, userID string) error {
	rec, err := s.Get(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.meta.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.blobs.Delete(ctx, rec.StoragePath); err != nil {
		log.Printf("warning: failed to remove blob for deleted record %s: %v", rec.ID, err)
	}
	return nil
}
