package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice/internal/model"
)

// SubscriberRepository defines newsletter persistence operations.
type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *model.Subscriber) error
	Update(ctx context.Context, subscriber *model.Subscriber) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Subscriber, error)
	FindByEmail(ctx context.Context, email string) (*model.Subscriber, error)
	List(ctx context.Context, search string) ([]model.Subscriber, error)
	CountByStatus(ctx context.Context, status model.SubscriberStatus) (int64, error)
}

type subscriberRepository struct {
	db *gorm.DB
}

// NewSubscriberRepository creates a new newsletter subscriber repository.
func NewSubscriberRepository(db *gorm.DB) SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *model.Subscriber) error {
	return translate(r.db.WithContext(ctx).Create(subscriber).Error)
}

func (r *subscriberRepository) Update(ctx context.Context, subscriber *model.Subscriber) error {
	return affected(r.db.WithContext(ctx).Model(subscriber).Select("*").Updates(subscriber))
}

func (r *subscriberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscriber{}))
}

func (r *subscriberRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&subscriber).Error; err != nil {
		return nil, translate(err)
	}
	return &subscriber, nil
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*model.Subscriber, error) {
	var subscriber model.Subscriber
	if err := r.db.WithContext(ctx).Where("email = ?", model.NormalizeEmail(email)).First(&subscriber).Error; err != nil {
		return nil, translate(err)
	}
	return &subscriber, nil
}

// List returns subscribers newest first, optionally filtered by email.
func (r *subscriberRepository) List(ctx context.Context, search string) ([]model.Subscriber, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if s := strings.TrimSpace(search); s != "" {
		q = q.Where("LOWER(email) LIKE ?", containsPattern(s))
	}
	var subscribers []model.Subscriber
	if err := q.Find(&subscribers).Error; err != nil {
		return nil, translate(err)
	}
	return subscribers, nil
}

func (r *subscriberRepository) CountByStatus(ctx context.Context, status model.SubscriberStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Subscriber{}).Where("status = ?", status).Count(&n).Error
	return n, translate(err)
}
