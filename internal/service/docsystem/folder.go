package docsystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dochub/internal/domain"
	models "dochub/internal/domain/models/docsystem"
	"dochub/internal/domain/repositories"
	docsysRepo "dochub/internal/domain/repositories/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RootFolderName is the display name of the bootstrap root folder
const RootFolderName = "root"

type folderService struct {
	folderRepo docsysRepo.FolderRepository
	blobs      docsysSvc.BlobStore
	txManager  repositories.TransactionManager
	validator  *ResourceValidator
	rootPath   string
	logger     *slog.Logger
}

// NewFolderService creates a new folder service. rootPath is the stored path
// of the root folder; it maps to the blob store root.
func NewFolderService(
	folderRepo docsysRepo.FolderRepository,
	blobs docsysSvc.BlobStore,
	txManager repositories.TransactionManager,
	validator *ResourceValidator,
	rootPath string,
	logger *slog.Logger,
) docsysSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		blobs:      blobs,
		txManager:  txManager,
		validator:  validator,
		rootPath:   rootPath,
		logger:     logger,
	}
}

// GetRootFolder finds the root folder by its configured path, creating the
// row and the store root directory when it is missing.
func (s *folderService) GetRootFolder(ctx context.Context) (*models.Folder, error) {
	root, err := s.folderRepo.GetRootByPath(ctx, s.rootPath)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	root = &models.Folder{
		Name:      RootFolderName,
		Path:      s.rootPath,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.folderRepo.Create(ctx, root); err != nil {
			return err
		}
		if err := s.blobs.EnsureDir(ctx, ""); err != nil {
			return &domain.StorageError{Op: "create directory", Name: root.Name, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("root folder created", "id", root.ID, "path", root.Path)
	return root, nil
}

// CreateFolder inserts the folder row and creates its directory in one
// transaction, so a failed mkdir leaves no row behind.
func (s *folderService) CreateFolder(ctx context.Context, req *docsysSvc.CreateFolderRequest) (*models.Folder, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ParentID = normalizeID(req.ParentID)
	req.CreatedBy = normalizeID(req.CreatedBy)

	if err := s.validateCreateRequest(req); err != nil {
		return nil, validationError(err)
	}

	var parentPath string
	if req.ParentID != nil {
		parent, err := s.validator.RequireFolder(ctx, *req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("parent folder not found: %w", err)
		}
		parentPath = parent.Path
	}
	if err := s.checkReservedName(parentPath, req); err != nil {
		return nil, err
	}

	// Duplicate names under one parent are permitted
	now := time.Now()
	folder := &models.Folder{
		ParentID:  req.ParentID,
		Name:      req.Name,
		Path:      BuildFolderPath(parentPath, req.Name),
		CreatedBy: req.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		if err := s.folderRepo.Create(ctx, folder); err != nil {
			return err
		}
		if err := s.blobs.EnsureDir(ctx, BlobDir(folder.Path, s.rootPath)); err != nil {
			s.logger.Error("failed to create folder directory",
				"path", folder.Path,
				"error", err,
			)
			return &domain.StorageError{Op: "create directory", Name: folder.Name, Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"id", folder.ID,
		"name", folder.Name,
		"parent_id", folder.ParentID,
		"path", folder.Path,
	)

	return folder, nil
}

// checkReservedName rejects names whose blob directory would alias the
// store root or the top-level namespace
func (s *folderService) checkReservedName(parentPath string, req *docsysSvc.CreateFolderRequest) error {
	if req.ParentID == nil && req.Name == s.rootPath {
		return fmt.Errorf("%w: name %q is reserved for the root folder", domain.ErrValidation, req.Name)
	}
	if req.ParentID != nil && parentPath == s.rootPath && req.Name == TopLevelBlobDir {
		return fmt.Errorf("%w: name %q is reserved", domain.ErrValidation, req.Name)
	}
	return nil
}

// validateCreateRequest validates a folder creation request
func (s *folderService) validateCreateRequest(req *docsysSvc.CreateFolderRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Name, nameRules...),
	)
}
