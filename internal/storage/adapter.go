// Package storage provides the output sink and bank source for both
// pipelines: a local filesystem adapter for the normal one-shot run, and an
// S3-compatible adapter for publishing banks and books to a bucket.
package storage

import (
	"context"
	"io"
)

// Adapter defines the interface for storage backends
type Adapter interface {
	// Put stores data at the given path, creating parents as needed
	Put(ctx context.Context, path string, data io.Reader) error

	// Get retrieves data from the given path. A missing path returns an
	// error wrapping types.ErrInputNotFound.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if data exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// Close cleans up any resources
	Close() error
}
