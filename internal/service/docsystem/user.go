package docsystem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dochub/internal/config"
	"dochub/internal/domain"
	models "dochub/internal/domain/models/docsystem"
	"dochub/internal/domain/repositories"
	docsysRepo "dochub/internal/domain/repositories/docsystem"
	docsysSvc "dochub/internal/domain/services/docsystem"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"golang.org/x/crypto/bcrypt"
)

// userService implements the UserService interface
type userService struct {
	userRepo      docsysRepo.UserRepository
	folderService docsysSvc.FolderService
	txManager     repositories.TransactionManager
	logger        *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo docsysRepo.UserRepository,
	folderService docsysSvc.FolderService,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) docsysSvc.UserService {
	return &userService{
		userRepo:      userRepo,
		folderService: folderService,
		txManager:     txManager,
		logger:        logger,
	}
}

// Register creates a user or returns the existing one for a known email.
// The first user becomes admin and bootstraps the root folder.
func (s *userService) Register(ctx context.Context, req *docsysSvc.RegisterRequest) (*models.User, bool, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validateRegisterRequest(req); err != nil {
		return nil, false, validationError(err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		s.logger.Info("existing user returned", "id", existing.ID)
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, false, fmt.Errorf("%w: password: %v", domain.ErrValidation, err)
		}
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}

	err = s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		count, err := s.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count == 0 {
			user.Role = models.RoleAdmin
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		if user.Role == models.RoleAdmin {
			if _, err := s.folderService.GetRootFolder(ctx); err != nil {
				return fmt.Errorf("bootstrap root folder: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		// Lost a race with a concurrent registration for the same email
		if errors.Is(err, domain.ErrConflict) {
			existing, getErr := s.userRepo.GetByEmail(ctx, req.Email)
			if getErr == nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	s.logger.Info("user registered",
		"id", user.ID,
		"username", user.Username,
		"role", user.Role,
	)

	return user, true, nil
}

// validateRegisterRequest validates a registration request
func (s *userService) validateRegisterRequest(req *docsysSvc.RegisterRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Username,
			validation.Required,
			validation.Length(1, config.MaxUsernameLength),
		),
		validation.Field(&req.Email, validation.Required, is.EmailFormat),
		validation.Field(&req.Password, validation.Required),
	)
}

// HashPassword hashes a plain password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
