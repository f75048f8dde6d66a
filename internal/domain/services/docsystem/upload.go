package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// UploadService stores uploaded blobs and records their document rows
type UploadService interface {
	// Upload writes each file into the folder's directory, in order.
	// It stops at the first failure; rows for earlier files stay committed.
	Upload(ctx context.Context, req *UploadRequest) ([]docsystem.Document, error)
}

// UploadRequest represents a batch upload into one folder
type UploadRequest struct {
	FolderID  *int64 // nil targets the root folder
	CreatedBy *int64
	Files     []UploadedFile
}

// FileTypeResolver picks the stored MIME type for an uploaded file
type FileTypeResolver interface {
	Resolve(filename, clientType string) string
}
