package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriberStatus is the mailing list membership state.
type SubscriberStatus string

const (
	Subscribed   SubscriberStatus = "subscribed"
	Unsubscribed SubscriberStatus = "unsubscribed"
)

// Subscriber is a newsletter mailing list entry.
type Subscriber struct {
	ID           uuid.UUID        `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string           `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Status       SubscriberStatus `json:"status" gorm:"size:32;not null;default:'subscribed';index"`
	SubscribedAt time.Time        `json:"subscribedAt"`
	CreatedAt    time.Time        `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// TableName keeps the mailing list apart from other email tables.
func (Subscriber) TableName() string {
	return "newsletter_subscribers"
}

// BeforeCreate sets UUID and defaults before creating the record.
func (s *Subscriber) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = Subscribed
	}
	if s.SubscribedAt.IsZero() {
		s.SubscribedAt = time.Now()
	}
	return nil
}

// BeforeSave keeps the stored email in canonical form.
func (s *Subscriber) BeforeSave(tx *gorm.DB) error {
	s.Email = NormalizeEmail(s.Email)
	return nil
}
