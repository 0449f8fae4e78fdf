package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the access level of an account.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStandard      Role = "standard"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// Account represents a back-office user with credentials and a role.
type Account struct {
	ID           uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string        `json:"name" gorm:"size:255;not null"`
	Email        string        `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string        `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         Role          `json:"role" gorm:"size:32;not null;default:'standard'"`
	Status       AccountStatus `json:"status" gorm:"size:32;not null;default:'active';index"`
	Phone        string        `json:"phone,omitempty" gorm:"size:64"`
	CreatedAt    time.Time     `json:"createdAt" gorm:"index"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// BeforeCreate sets UUID and defaults before creating the record.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Role == "" {
		a.Role = RoleStandard
	}
	if a.Status == "" {
		a.Status = AccountActive
	}
	return nil
}

// BeforeSave keeps the stored email in canonical form.
func (a *Account) BeforeSave(tx *gorm.DB) error {
	a.Email = NormalizeEmail(a.Email)
	return nil
}

// IsActive reports whether the account may authenticate.
func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// Identity returns the password-free projection handed to request handlers.
func (a *Account) Identity() *Identity {
	return &Identity{
		ID:    a.ID.String(),
		Email: a.Email,
		Name:  a.Name,
		Role:  a.Role,
	}
}

// Identity is the authenticated view of an account.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
