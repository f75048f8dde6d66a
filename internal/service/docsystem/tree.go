package docsystem

import (
	"context"
	"log/slog"

	models "dochub/internal/domain/models/docsystem"
	docsysRepo "dochub/internal/domain/repositories/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"
)

// treeService implements the TreeService interface
type treeService struct {
	folderRepo   docsysRepo.FolderRepository
	documentRepo docsysRepo.DocumentRepository
	validator    *ResourceValidator
	logger       *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo docsysRepo.FolderRepository,
	documentRepo docsysRepo.DocumentRepository,
	validator *ResourceValidator,
	logger *slog.Logger,
) docsysSvc.TreeService {
	return &treeService{
		folderRepo:   folderRepo,
		documentRepo: documentRepo,
		validator:    validator,
		logger:       logger,
	}
}

// GetTree builds the nested folder/document tree rooted at folderID
func (s *treeService) GetTree(ctx context.Context, folderID int64) (*models.FolderTreeNode, error) {
	if _, err := s.validator.RequireFolder(ctx, folderID); err != nil {
		return nil, err
	}

	allFolders, err := s.folderRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	allDocuments, err := s.documentRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	// First pass: create all folder nodes
	folderMap := make(map[int64]*models.FolderTreeNode, len(allFolders))
	for _, folder := range allFolders {
		folderMap[folder.ID] = &models.FolderTreeNode{
			ID:        folder.ID,
			Name:      folder.Name,
			ParentID:  folder.ParentID,
			CreatedAt: folder.CreatedAt,
			Folders:   []*models.FolderTreeNode{},
			Documents: []models.DocumentTreeNode{},
		}
	}

	// Second pass: connect children to parents
	for _, folder := range allFolders {
		if folder.ParentID == nil {
			continue
		}
		if parent, exists := folderMap[*folder.ParentID]; exists {
			parent.Folders = append(parent.Folders, folderMap[folder.ID])
		}
	}

	// Third pass: attach documents
	for _, doc := range allDocuments {
		if parent, exists := folderMap[doc.FolderID]; exists {
			parent.Documents = append(parent.Documents, models.DocumentTreeNode{
				ID:        doc.ID,
				Name:      doc.Name,
				FolderID:  doc.FolderID,
				FileType:  doc.FileType,
				Size:      doc.Size,
				UpdatedAt: doc.UpdatedAt,
			})
		}
	}

	root, exists := folderMap[folderID]
	if !exists {
		// Deleted between the existence check and the scan
		return nil, notFoundFolder(folderID)
	}

	s.logger.Info("folder tree built",
		"folder_id", folderID,
		"folder_count", len(allFolders),
		"document_count", len(allDocuments),
	)

	return root, nil
}
