package docsystem

import (
	"context"

	"dochub/internal/domain/models/docsystem"
)

// DocumentService exposes document metadata lookups
type DocumentService interface {
	GetDocument(ctx context.Context, id int64) (*docsystem.Document, error)
}
