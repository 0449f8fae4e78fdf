package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"backoffice/internal/auth"
	"backoffice/internal/cache"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// CreateAccountInput carries the fields accepted when creating an account.
type CreateAccountInput struct {
	Name     string
	Email    string
	Password string
	Role     model.Role
	Status   model.AccountStatus
	Phone    string
}

// UpdateAccountInput lists the only fields an update may change. Nil means unchanged.
type UpdateAccountInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *model.Role
	Status   *model.AccountStatus
	Phone    *string
}

// AccountService manages back-office user accounts.
type AccountService interface {
	Create(ctx context.Context, in CreateAccountInput) (*model.Account, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Account, error)
	List(ctx context.Context, search string) ([]model.Account, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateAccountInput) (*model.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountService struct {
	repo   repository.AccountRepository
	hasher *auth.PasswordHasher
	cache  *cache.Client
}

// NewAccountService creates a new account service.
func NewAccountService(repo repository.AccountRepository, hasher *auth.PasswordHasher, cache *cache.Client) AccountService {
	return &accountService{repo: repo, hasher: hasher, cache: cache}
}

// Create stores a new account with a hashed password. The existence check is best
// effort; the unique index settles concurrent registrations as ErrDuplicate.
func (s *accountService) Create(ctx context.Context, in CreateAccountInput) (*model.Account, error) {
	email := model.NormalizeEmail(in.Email)
	if email == "" {
		return nil, invalidf("email is required")
	}
	if in.Password == "" {
		return nil, invalidf("password is required")
	}

	if err := s.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         in.Role,
		Status:       in.Status,
		Phone:        strings.TrimSpace(in.Phone),
	}
	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	dropStats(ctx, s.cache)
	return account, nil
}

func (s *accountService) Get(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *accountService) List(ctx context.Context, search string) ([]model.Account, error) {
	return s.repo.List(ctx, search)
}

// Update applies the allow-listed changes in in. A new password is re-hashed.
func (s *accountService) Update(ctx context.Context, id uuid.UUID, in UpdateAccountInput) (*model.Account, error) {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		account.Name = strings.TrimSpace(*in.Name)
	}
	if in.Email != nil {
		email := model.NormalizeEmail(*in.Email)
		if email == "" {
			return nil, invalidf("email is required")
		}
		if email != account.Email {
			if err := s.ensureEmailFree(ctx, email, account.ID); err != nil {
				return nil, err
			}
		}
		account.Email = email
	}
	if in.Password != nil && *in.Password != "" {
		hashedPassword, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hashedPassword
	}
	if in.Role != nil {
		account.Role = *in.Role
	}
	if in.Status != nil {
		account.Status = *in.Status
	}
	if in.Phone != nil {
		account.Phone = strings.TrimSpace(*in.Phone)
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}
	dropStats(ctx, s.cache)
	return account, nil
}

func (s *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	dropStats(ctx, s.cache)
	return nil
}

func (s *accountService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != self:
		return apperrors.ErrDuplicate
	case err != nil && !errors.Is(err, apperrors.ErrNotFound):
		return fmt.Errorf("check account existence: %w", err)
	}
	return nil
}
