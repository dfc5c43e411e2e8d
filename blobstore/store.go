package blobstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations return an error that satisfies `errors.Is(err, ErrNotFound)`.
var ErrNotFound = os.ErrNotExist

// BlobStore stores named, immutable blobs.
type BlobStore interface {
	// Put writes a blob atomically, replacing any blob of the same name.
	Put(ctx context.Context, name string, data []byte) error
	// Get returns the full contents of a blob.
	Get(ctx context.Context, name string) ([]byte, error)
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the names with the given prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
}

func validateName(name string) error {
	if name == "" || !filepath.IsLocal(name) {
		return fmt.Errorf("invalid blob name %q", name)
	}
	return nil
}
