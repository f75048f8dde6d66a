package docsystem

import (
	"context"
	"log/slog"

	models "dochub/internal/domain/models/docsystem"
	docsysRepo "dochub/internal/domain/repositories/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"
)

// documentService implements the DocumentService interface
type documentService struct {
	docRepo docsysRepo.DocumentRepository
	logger  *slog.Logger
}

// NewDocumentService creates a new document service
func NewDocumentService(docRepo docsysRepo.DocumentRepository, logger *slog.Logger) docsysSvc.DocumentService {
	return &documentService{
		docRepo: docRepo,
		logger:  logger,
	}
}

// GetDocument retrieves document metadata by ID
func (s *documentService) GetDocument(ctx context.Context, id int64) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc, nil
}
