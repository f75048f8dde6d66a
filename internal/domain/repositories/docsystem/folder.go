package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// FolderRepository defines data access operations for folders
type FolderRepository interface {
	// Create inserts a folder and fills in ID and timestamps
	Create(ctx context.Context, folder *docsystem.Folder) error

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id int64) (*docsystem.Folder, error)

	// GetRootByPath retrieves the parentless folder with the given path
	GetRootByPath(ctx context.Context, path string) (*docsystem.Folder, error)

	// ListChildren lists immediate child folders with creator names
	ListChildren(ctx context.Context, parentID int64) ([]docsystem.Folder, error)

	// ListAll retrieves every folder (flat list)
	ListAll(ctx context.Context) ([]docsystem.Folder, error)
}
