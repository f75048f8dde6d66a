package docsystem

import (
	"context"
	"io"
)

// BlobStore persists file contents under keys that mirror the folder tree.
// Keys are slash-separated and relative to the store root; "" is the root.
type BlobStore interface {
	// EnsureDir creates the directory for dir if needed (idempotent)
	EnsureDir(ctx context.Context, dir string) error

	// Put writes r to key, replacing any existing blob
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error

	// Delete removes the blob at key; a missing blob is not an error
	Delete(ctx context.Context, key string) error
}
