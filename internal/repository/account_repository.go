package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice/internal/model"
)

// AccountRepository defines account persistence operations.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	Update(ctx context.Context, account *model.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	FindActiveByEmail(ctx context.Context, email string) (*model.Account, error)
	List(ctx context.Context, search string) ([]model.Account, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.AccountStatus) (int64, error)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account. A taken email yields ErrDuplicate.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return translate(r.db.WithContext(ctx).Create(account).Error)
}

// Update writes every column of an existing account. A row deleted in the meantime
// yields ErrNotFound; it is never re-inserted.
func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	return affected(r.db.WithContext(ctx).Model(account).Select("*").Updates(account))
}

// Delete removes an account permanently.
func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Account{}))
}

// FindByID finds an account by ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

// FindByEmail finds an account by email regardless of status.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

// FindActiveByEmail finds an active account by email.
func (r *accountRepository) FindActiveByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	err := r.db.WithContext(ctx).
		Where("email = ? AND status = ?", model.NormalizeEmail(email), model.AccountActive).
		First(&account).Error
	if err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

// List returns accounts newest first, optionally filtered by name or email.
func (r *accountRepository) List(ctx context.Context, search string) ([]model.Account, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if s := strings.TrimSpace(search); s != "" {
		p := containsPattern(s)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", p, p)
	}
	var accounts []model.Account
	if err := q.Find(&accounts).Error; err != nil {
		return nil, translate(err)
	}
	return accounts, nil
}

func (r *accountRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).Count(&n).Error
	return n, translate(err)
}

func (r *accountRepository) CountByStatus(ctx context.Context, status model.AccountStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Account{}).Where("status = ?", status).Count(&n).Error
	return n, translate(err)
}
