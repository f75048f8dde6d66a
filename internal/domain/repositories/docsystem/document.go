package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// DocumentRepository defines data access operations for documents
type DocumentRepository interface {
	// Create inserts a document and fills in ID and timestamps
	Create(ctx context.Context, doc *docsystem.Document) error

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id int64) (*docsystem.Document, error)

	// ListByFolder lists documents directly inside a folder with creator names
	ListByFolder(ctx context.Context, folderID int64) ([]docsystem.Document, error)

	// ListAll retrieves every document (flat list)
	ListAll(ctx context.Context) ([]docsystem.Document, error)
}
