package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a spending category. Categories are scoped to
// their owner, so two users can both have a "Food" category.
type Category struct {
	DefaultModel
	Name    string    `json:"name" gorm:"uniqueIndex:category_owner_name"`
	OwnerID uuid.UUID `json:"-" gorm:"uniqueIndex:category_owner_name"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// DefaultCategories are created for a user whose category list is empty.
var DefaultCategories = []string{"Food", "Transport", "Entertainment", "Study", "Shopping"}

// SeedDefaultCategories creates the default set of categories for an
// owner. It is a no-op when the owner already has categories.
func SeedDefaultCategories(db *gorm.DB, ownerID uuid.UUID) error {
	var count int64
	err := db.Model(&Category{}).Where("owner_id = ?", ownerID).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, name := range DefaultCategories {
		err = db.Create(&Category{Name: name, OwnerID: ownerID}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
