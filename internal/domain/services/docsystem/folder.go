package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// FolderService handles folder business logic
type FolderService interface {
	// GetRootFolder returns the configured root folder, creating it on first use
	GetRootFolder(ctx context.Context) (*docsystem.Folder, error)

	// CreateFolder creates a folder row and its directory
	CreateFolder(ctx context.Context, req *CreateFolderRequest) (*docsystem.Folder, error)
}

// CreateFolderRequest represents a folder creation request
type CreateFolderRequest struct {
	ParentID  *int64 `json:"parentId,omitempty"` // nil creates a top-level folder
	Name      string `json:"name"`
	CreatedBy *int64 `json:"createdBy,omitempty"`
}
