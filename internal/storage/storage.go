// Package storage provides interfaces and implementations for audio artifact
// storage. Supported providers: local filesystem and Amazon S3 (or
// S3-compatible services).
package storage

import (
	"context"
	"io"
)

// Storage defines the interface for artifact storage operations.
// Uploads consume the reader incrementally; implementations must not buffer
// the full payload in memory. There is no delete operation: stored artifacts
// outlive the pipeline stages that read them.
type Storage interface {
	// Upload writes data from reader to the given path.
	Upload(ctx context.Context, path string, reader io.Reader) error

	// Download returns a reader for the artifact at the given path.
	// The caller is responsible for closing the returned ReadCloser.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks whether an artifact exists at the given path.
	Exists(ctx context.Context, path string) (bool, error)
}
