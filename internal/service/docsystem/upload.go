package docsystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"dochub/internal/config"
	"dochub/internal/domain"
	models "dochub/internal/domain/models/docsystem"
	docsysRepo "dochub/internal/domain/repositories/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// uploadService implements the UploadService interface
type uploadService struct {
	docRepo       docsysRepo.DocumentRepository
	blobs         docsysSvc.BlobStore
	types         docsysSvc.FileTypeResolver
	folderService docsysSvc.FolderService
	validator     *ResourceValidator
	rootPath      string
	logger        *slog.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(
	docRepo docsysRepo.DocumentRepository,
	blobs docsysSvc.BlobStore,
	types docsysSvc.FileTypeResolver,
	folderService docsysSvc.FolderService,
	validator *ResourceValidator,
	rootPath string,
	logger *slog.Logger,
) docsysSvc.UploadService {
	return &uploadService{
		docRepo:       docRepo,
		blobs:         blobs,
		types:         types,
		folderService: folderService,
		validator:     validator,
		rootPath:      rootPath,
		logger:        logger,
	}
}

// Upload stores each file in the target folder's directory, then records its
// document row. A row failure removes the blob just written. Rows recorded
// for earlier files stay when a later file fails.
func (s *uploadService) Upload(ctx context.Context, req *docsysSvc.UploadRequest) ([]models.Document, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("%w: no files uploaded", domain.ErrValidation)
	}

	names := make([]string, len(req.Files))
	for i, file := range req.Files {
		name := SafeFilename(file.Filename)
		if err := validation.Validate(name, fileNameRules...); err != nil {
			return nil, fmt.Errorf("%w: file %q: %v", domain.ErrValidation, file.Filename, err)
		}
		names[i] = name
	}

	folder, err := s.targetFolder(ctx, normalizeID(req.FolderID))
	if err != nil {
		return nil, err
	}
	createdBy := normalizeID(req.CreatedBy)
	dir := BlobDir(folder.Path, s.rootPath)

	documents := make([]models.Document, 0, len(req.Files))
	for i, file := range req.Files {
		doc, err := s.storeFile(ctx, folder, dir, names[i], file, createdBy)
		if err != nil {
			s.logger.Error("upload aborted",
				"folder_id", folder.ID,
				"file", names[i],
				"stored", len(documents),
				"error", err,
			)
			return nil, err
		}
		documents = append(documents, *doc)
	}

	s.logger.Info("files uploaded",
		"folder_id", folder.ID,
		"count", len(documents),
		"created_by", createdBy,
	)

	return documents, nil
}

// targetFolder loads the requested folder, defaulting to the root
func (s *uploadService) targetFolder(ctx context.Context, folderID *int64) (*models.Folder, error) {
	if folderID == nil {
		return s.folderService.GetRootFolder(ctx)
	}
	return s.validator.RequireFolder(ctx, *folderID)
}

func (s *uploadService) storeFile(
	ctx context.Context,
	folder *models.Folder,
	dir, name string,
	file docsysSvc.UploadedFile,
	createdBy *int64,
) (*models.Document, error) {
	key := BuildBlobKey(dir, name)
	fileType := s.types.Resolve(name, file.ContentType)

	counter := &countingReader{r: file.Content}
	if err := s.blobs.Put(ctx, key, counter, file.Size, fileType); err != nil {
		return nil, &domain.StorageError{Op: "store file", Name: name, Err: err}
	}

	now := time.Now()
	doc := &models.Document{
		FolderID:  folder.ID,
		Name:      name,
		FilePath:  key,
		FileType:  fileType,
		Size:      counter.n,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		if delErr := s.blobs.Delete(ctx, key); delErr != nil {
			s.logger.Error("failed to remove orphaned blob",
				"key", key,
				"error", delErr,
			)
		}
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, &domain.StorageError{Op: "record file", Name: name, Err: err}
	}

	return doc, nil
}

// fileNameRules validate a stored file name
var fileNameRules = []validation.Rule{
	validation.Required.Error("file name is required"),
	validation.Length(1, config.MaxDocumentNameLength),
}

// countingReader tracks bytes read so the stored size matches the blob
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
