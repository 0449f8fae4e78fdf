package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, search string) ([]model.Product, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return translate(r.db.WithContext(ctx).Create(product).Error)
}

func (r *productRepository) Update(ctx context.Context, product *model.Product) error {
	return affected(r.db.WithContext(ctx).Model(product).Select("*").Updates(product))
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return affected(r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Product{}))
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// List returns products newest first, optionally filtered by name, description or category.
func (r *productRepository) List(ctx context.Context, search string) ([]model.Product, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if s := strings.TrimSpace(search); s != "" {
		p := containsPattern(s)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?", p, p, p)
	}
	var products []model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&n).Error
	return n, translate(err)
}

func (r *productRepository) CountByStatus(ctx context.Context, status model.ProductStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).Where("status = ?", status).Count(&n).Error
	return n, translate(err)
}
