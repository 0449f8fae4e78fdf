package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"backoffice/internal/cache"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

// StatusFilterAll lists testimonials of every status.
const StatusFilterAll = "all"

// TestimonialUpdate lists the fields a testimonial update may change. Nil means unchanged.
type TestimonialUpdate struct {
	Name     *string
	Email    *string
	Company  *string
	Position *string
	Message  *string
	Rating   *int
	Image    *string
	Status   *model.TestimonialStatus
}

// TestimonialService exposes testimonial moderation operations.
type TestimonialService interface {
	Create(ctx context.Context, testimonial *model.Testimonial) (*model.Testimonial, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Testimonial, error)
	// List filters by status; empty means approved, StatusFilterAll means every status.
	List(ctx context.Context, status string) ([]model.Testimonial, error)
	Update(ctx context.Context, id uuid.UUID, in TestimonialUpdate) (*model.Testimonial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type testimonialService struct {
	repo  repository.TestimonialRepository
	cache *cache.Client
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository, cache *cache.Client) TestimonialService {
	return &testimonialService{repo: repo, cache: cache}
}

func (s *testimonialService) Create(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	if t.Rating == 0 {
		t.Rating = 5
	}
	trimTestimonial(t)
	if err := validateTestimonial(t); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	dropStats(ctx, s.cache)
	return t, nil
}

func (s *testimonialService) Get(ctx context.Context, id uuid.UUID) (*model.Testimonial, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *testimonialService) List(ctx context.Context, status string) ([]model.Testimonial, error) {
	switch status {
	case StatusFilterAll:
		return s.repo.List(ctx, nil)
	case "":
		approved := model.TestimonialApproved
		return s.repo.List(ctx, &approved)
	}

	st := model.TestimonialStatus(status)
	if !validTestimonialStatus(st) {
		return nil, invalidf("unknown testimonial status %q", status)
	}
	return s.repo.List(ctx, &st)
}

func (s *testimonialService) Update(ctx context.Context, id uuid.UUID, in TestimonialUpdate) (*model.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Email != nil {
		t.Email = *in.Email
	}
	if in.Company != nil {
		t.Company = *in.Company
	}
	if in.Position != nil {
		t.Position = *in.Position
	}
	if in.Message != nil {
		t.Message = *in.Message
	}
	if in.Rating != nil {
		t.Rating = *in.Rating
	}
	if in.Image != nil {
		t.Image = *in.Image
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	trimTestimonial(t)
	if err := validateTestimonial(t); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update testimonial: %w", err)
	}
	dropStats(ctx, s.cache)
	return t, nil
}

func (s *testimonialService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	dropStats(ctx, s.cache)
	return nil
}

func trimTestimonial(t *model.Testimonial) {
	t.Name = strings.TrimSpace(t.Name)
	t.Email = model.NormalizeEmail(t.Email)
	t.Company = strings.TrimSpace(t.Company)
	t.Position = strings.TrimSpace(t.Position)
	t.Message = strings.TrimSpace(t.Message)
	t.Image = strings.TrimSpace(t.Image)
}

func validateTestimonial(t *model.Testimonial) error {
	switch {
	case t.Name == "":
		return invalidf("Name is required")
	case t.Email == "":
		return invalidf("Email is required")
	case t.Message == "":
		return invalidf("Message is required")
	case t.Rating < 1:
		return invalidf("Rating must be at least 1")
	case t.Rating > 5:
		return invalidf("Rating cannot exceed 5")
	case t.Status != "" && !validTestimonialStatus(t.Status):
		return invalidf("unknown testimonial status %q", t.Status)
	}
	return nil
}

func validTestimonialStatus(s model.TestimonialStatus) bool {
	switch s {
	case model.TestimonialPending, model.TestimonialApproved, model.TestimonialRejected:
		return true
	}
	return false
}
