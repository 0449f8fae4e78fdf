package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TestimonialStatus is the moderation state of a testimonial.
type TestimonialStatus string

const (
	TestimonialPending  TestimonialStatus = "pending"
	TestimonialApproved TestimonialStatus = "approved"
	TestimonialRejected TestimonialStatus = "rejected"
)

// Testimonial is a customer quote shown on the public site once approved.
type Testimonial struct {
	ID        uuid.UUID         `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string            `json:"name" gorm:"size:255;not null"`
	Email     string            `json:"email" gorm:"size:255;not null"`
	Company   string            `json:"company,omitempty" gorm:"size:255"`
	Position  string            `json:"position,omitempty" gorm:"size:255"`
	Message   string            `json:"message" gorm:"type:text;not null"`
	Rating    int               `json:"rating" gorm:"not null;default:5"`
	Image     string            `json:"image,omitempty" gorm:"size:1024"`
	Status    TestimonialStatus `json:"status" gorm:"size:32;not null;default:'pending';index"`
	CreatedAt time.Time         `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// BeforeCreate sets UUID and defaults before creating the record.
func (t *Testimonial) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = TestimonialPending
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	return nil
}

// BeforeSave lowercases the contact email.
func (t *Testimonial) BeforeSave(tx *gorm.DB) error {
	t.Email = NormalizeEmail(t.Email)
	return nil
}
