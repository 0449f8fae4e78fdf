package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"backoffice/internal/cache"
	apperrors "backoffice/internal/errors"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// SubscriberUpdate lists the fields a subscriber update may change. Nil means unchanged.
type SubscriberUpdate struct {
	Email  *string
	Status *model.SubscriberStatus
}

// NewsletterService manages the mailing list.
type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Subscriber, error)
	List(ctx context.Context, search string) ([]model.Subscriber, error)
	Update(ctx context.Context, id uuid.UUID, in SubscriberUpdate) (*model.Subscriber, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type newsletterService struct {
	repo  repository.SubscriberRepository
	cache *cache.Client
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(repo repository.SubscriberRepository, cache *cache.Client) NewsletterService {
	return &newsletterService{repo: repo, cache: cache}
}

// Subscribe adds email to the list. An address already on the list yields ErrDuplicate,
// whether caught by the lookup or by the unique index.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	email = model.NormalizeEmail(email)
	if email == "" {
		return nil, invalidf("Email is required")
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, apperrors.ErrDuplicate
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("check subscriber existence: %w", err)
	}

	subscriber := &model.Subscriber{Email: email}
	if err := s.repo.Create(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	dropStats(ctx, s.cache)
	return subscriber, nil
}

func (s *newsletterService) Get(ctx context.Context, id uuid.UUID) (*model.Subscriber, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *newsletterService) List(ctx context.Context, search string) ([]model.Subscriber, error) {
	return s.repo.List(ctx, search)
}

func (s *newsletterService) Update(ctx context.Context, id uuid.UUID, in SubscriberUpdate) (*model.Subscriber, error) {
	subscriber, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		email := model.NormalizeEmail(*in.Email)
		if email == "" {
			return nil, invalidf("Email is required")
		}
		subscriber.Email = email
	}
	if in.Status != nil {
		switch *in.Status {
		case model.Subscribed, model.Unsubscribed:
			subscriber.Status = *in.Status
		default:
			return nil, invalidf("unknown subscriber status %q", *in.Status)
		}
	}

	if err := s.repo.Update(ctx, subscriber); err != nil {
		return nil, fmt.Errorf("update subscriber: %w", err)
	}
	dropStats(ctx, s.cache)
	return subscriber, nil
}

func (s *newsletterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	dropStats(ctx, s.cache)
	return nil
}
