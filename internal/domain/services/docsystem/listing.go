package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// Sort keys and orders understood by ListingService
const (
	SortByName      = "name"
	SortByCreatedAt = "createdAt"
	SortOrderAsc    = "asc"
	SortOrderDesc   = "desc"
)

// ListingService builds the merged folder/document view of one folder
type ListingService interface {
	// List returns one page of the folder's subfolders and documents
	List(ctx context.Context, folderID int64, opts ListOptions) (*docsystem.Listing, error)
}

// ListOptions controls filtering, ordering and pagination.
// A non-empty Search disables sorting.
type ListOptions struct {
	SortBy    string
	SortOrder string
	Search    string
	Page      int
	PageSize  int
}
