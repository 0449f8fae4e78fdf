package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/cache"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// ProductUpdate lists the fields a product update may change. Nil means unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Category    *string
	Stock       *int
	Image       *string
	Status      *model.ProductStatus
}

// ProductService exposes catalogue operations.
type ProductService interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, search string) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, in ProductUpdate) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo  repository.ProductRepository
	cache *cache.Client
	ttl   time.Duration
}

// NewProductService builds a ProductService with repository and read-through cache.
func NewProductService(repo repository.ProductRepository, cache *cache.Client, ttl time.Duration) ProductService {
	return &productService{repo: repo, cache: cache, ttl: ttl}
}

func (s *productService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("product:%s", id)
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	trimProduct(product)
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	dropStats(ctx, s.cache)
	return product, nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var cached model.Product
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, s.cacheKey(id), product, s.ttl)
	return product, nil
}

func (s *productService) List(ctx context.Context, search string) ([]model.Product, error) {
	return s.repo.List(ctx, search)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, in ProductUpdate) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Image != nil {
		product.Image = *in.Image
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	trimProduct(product)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	dropStats(ctx, s.cache)
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	dropStats(ctx, s.cache)
	return nil
}

func trimProduct(p *model.Product) {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Category = strings.TrimSpace(p.Category)
	p.Image = strings.TrimSpace(p.Image)
}

func validateProduct(p *model.Product) error {
	switch {
	case p.Name == "":
		return invalidf("Product name is required")
	case p.Description == "":
		return invalidf("Description is required")
	case p.Category == "":
		return invalidf("Category is required")
	case p.Price.IsNegative():
		return invalidf("Price must be positive")
	case p.Stock < 0:
		return invalidf("Stock must be positive")
	case p.Status != "" && p.Status != model.ProductActive && p.Status != model.ProductInactive:
		return invalidf("unknown product status %q", p.Status)
	}
	return nil
}
