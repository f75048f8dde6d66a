package docsystem

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"dochub/internal/config"
	"dochub/internal/domain"
	models "dochub/internal/domain/models/docsystem"
	docsysRepo "dochub/internal/domain/repositories/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// nameRules apply to folder and file names. They keep a single path element.
var nameRules = []validation.Rule{
	validation.Required,
	validation.Length(1, config.MaxFolderNameLength),
	validation.Match(regexp.MustCompile(`^[^/\\]+$`)).Error("name cannot contain slashes"),
	validation.NotIn(".", "..").Error("name cannot be . or .."),
}

// ResourceValidator checks that referenced resources exist before
// operations on their children
type ResourceValidator struct {
	folderRepo docsysRepo.FolderRepository
}

// NewResourceValidator creates a new resource validator
func NewResourceValidator(folderRepo docsysRepo.FolderRepository) *ResourceValidator {
	return &ResourceValidator{folderRepo: folderRepo}
}

// RequireFolder loads a folder, returning domain.ErrNotFound if it doesn't exist
func (v *ResourceValidator) RequireFolder(ctx context.Context, folderID int64) (*models.Folder, error) {
	folder, err := v.folderRepo.GetByID(ctx, folderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, notFoundFolder(folderID)
		}
		return nil, err
	}
	return folder, nil
}

func notFoundFolder(id int64) error {
	return fmt.Errorf("folder %d not found: %w", id, domain.ErrNotFound)
}

// validationError wraps ozzo validation output into domain.ErrValidation
func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

// normalizeID treats zero and negative ids from clients as absent
func normalizeID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	return id
}
