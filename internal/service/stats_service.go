package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"backoffice/internal/cache"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// Stats are the dashboard figures.
type Stats struct {
	Products     ProductStats `json:"products"`
	Users        UserStats    `json:"users"`
	Newsletter   CountStats   `json:"newsletter"`
	Testimonials CountStats   `json:"testimonials"`
}

type ProductStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type UserStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}

type CountStats struct {
	Total int64 `json:"total"`
}

// StatsService aggregates dashboard counts.
type StatsService interface {
	Get(ctx context.Context) (*Stats, error)
}

type statsService struct {
	products     repository.ProductRepository
	accounts     repository.AccountRepository
	subscribers  repository.SubscriberRepository
	testimonials repository.TestimonialRepository
	cache        *cache.Client
	ttl          time.Duration
}

// NewStatsService creates a stats service. Results are cached for ttl.
func NewStatsService(
	products repository.ProductRepository,
	accounts repository.AccountRepository,
	subscribers repository.SubscriberRepository,
	testimonials repository.TestimonialRepository,
	cache *cache.Client,
	ttl time.Duration,
) StatsService {
	return &statsService{
		products:     products,
		accounts:     accounts,
		subscribers:  subscribers,
		testimonials: testimonials,
		cache:        cache,
		ttl:          ttl,
	}
}

// Get runs the six counts concurrently; the first failure cancels the rest.
func (s *statsService) Get(ctx context.Context) (*Stats, error) {
	var stats Stats
	if s.cache.GetJSON(ctx, statsCacheKey, &stats) {
		return &stats, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Products.Total, err = s.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Products.Active, err = s.products.CountByStatus(gctx, model.ProductActive)
		return err
	})
	g.Go(func() (err error) {
		stats.Users.Total, err = s.accounts.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Users.Active, err = s.accounts.CountByStatus(gctx, model.AccountActive)
		return err
	})
	g.Go(func() (err error) {
		stats.Newsletter.Total, err = s.subscribers.CountByStatus(gctx, model.Subscribed)
		return err
	})
	g.Go(func() (err error) {
		stats.Testimonials.Total, err = s.testimonials.CountByStatus(gctx, model.TestimonialApproved)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.cache.SetJSON(ctx, statsCacheKey, &stats, s.ttl)
	return &stats, nil
}
