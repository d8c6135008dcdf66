package blob

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStorePutAndOpen(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	content := []byte("hello, blob store")
	stored, path, err := store.Put(context.Background(), bytes.NewReader(content), int64(len(content)), "notes.txt", "text/plain")
	require.NoError(t, err)
	assert.Equal(t, stored, filepath.Base(path))
	assert.True(t, strings.HasSuffix(stored, "-notes.txt"))

	r, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestDiskStoreGeneratedNamesDiffer(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	a, _, err := store.Put(context.Background(), strings.NewReader("a"), 1, "same.txt", "text/plain")
	require.NoError(t, err)
	b, _, err := store.Put(context.Background(), strings.NewReader("b"), 1, "same.txt", "text/plain")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDiskStorePutShortWrite(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	// declared size larger than the actual stream
	_, _, err = store.Put(context.Background(), strings.NewReader("abc"), 10, "short.txt", "text/plain")
	assert.Error(t, err)
}

func TestDiskStoreOpenMissing(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	_, err = store.Open(context.Background(), filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStoreDeleteIdempotent(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, path, err := store.Put(context.Background(), strings.NewReader("x"), 1, "x.txt", "text/plain")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), path))
	// deleting an already-absent object is not an error
	assert.NoError(t, store.Delete(context.Background(), path))

	_, err = store.Open(context.Background(), path)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"my file (1).txt", "my_file__1_.txt"},
		{"../../etc/passwd", "passwd"},
		{"наклейка.png", "________.png"},
		{"", "file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.in), "input %q", tt.in)
	}
}
