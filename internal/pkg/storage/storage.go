package storage

import (
	"context"
	"io"
)

// FileStorage is the object-storage collaborator for generated payslip
// documents. The stored path doubles as the object key.
type FileStorage interface {
	// Upload stores a file and returns its storage path
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// GetURL returns a retrievable URL for a stored path
	GetURL(ctx context.Context, path string) (string, error)
}
