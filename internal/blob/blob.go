package blob

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no object exists at the given path.
var ErrNotFound = errors.New("object not found")

// Store is durable byte storage addressed by a store-generated name,
// decoupled from the metadata store.
type Store interface {
	// Put writes size bytes from r under a freshly generated name and
	// returns that name plus the path used to address the object later.
	Put(ctx context.Context, r io.Reader, size int64, originalName, contentType string) (storedName, storagePath string, err error)

	// Open returns a reader over the object at storagePath, or ErrNotFound.
	Open(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes the object. Deleting an absent object is not an error.
	Delete(ctx context.Context, storagePath string) error
}
