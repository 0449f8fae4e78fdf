package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice/internal/model"
)

// TestimonialRepository defines testimonial persistence operations.
type TestimonialRepository interface {
	Create(ctx context.Context, testimonial *model.Testimonial) error
	Update(ctx context.Context, testimonial *model.Testimonial) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	// List returns testimonials newest first; a nil status returns every status.
	List(ctx context.Context, status *model.TestimonialStatus) ([]model.Testimonial, error)
	CountByStatus(ctx context.Context, status model.TestimonialStatus) (int64, error)
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository creates a new testimonial repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, testimonial *model.Testimonial) error {
	return translate(r.db.WithContext(ctx).Create(testimonial).Error)
}

func (r *testimonialRepository) Update(ctx context.Context, testimonial *model.Testimonial) error {
	return affected(r.db.WithContext(ctx).Model(testimonial).Select("*").Updates(testimonial))
}

func (r *testimonialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Testimonial{}))
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	var testimonial model.Testimonial
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&testimonial).Error; err != nil {
		return nil, translate(err)
	}
	return &testimonial, nil
}

func (r *testimonialRepository) List(ctx context.Context, status *model.TestimonialStatus) ([]model.Testimonial, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	var testimonials []model.Testimonial
	if err := q.Find(&testimonials).Error; err != nil {
		return nil, translate(err)
	}
	return testimonials, nil
}

func (r *testimonialRepository) CountByStatus(ctx context.Context, status model.TestimonialStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Testimonial{}).Where("status = ?", status).Count(&n).Error
	return n, translate(err)
}
