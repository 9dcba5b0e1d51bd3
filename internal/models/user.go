package models

import (
	"strings"

	"gorm.io/gorm"
)

// Providers a user can authenticate with.
const (
	ProviderLocal    = "local"
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// User represents an account in the tracker. Expenses, budgets and
// categories are isolated per user.
type User struct {
	DefaultModel
	Name       string `json:"name"`
	Email      string `json:"email" gorm:"uniqueIndex"`
	Password   string `json:"-"` // bcrypt hash, empty for federated accounts
	Provider   string `json:"provider"`
	GoogleID   string `json:"-" gorm:"index"`
	FacebookID string `json:"-" gorm:"index"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.TrimSpace(strings.ToLower(u.Email))
	u.Name = strings.TrimSpace(u.Name)

	if u.Provider == "" {
		u.Provider = ProviderLocal
	}

	return nil
}
