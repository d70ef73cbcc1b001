package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named spending bucket with icon and color metadata
// for rendering.
type Category struct {
	DefaultModel
	UserID uuid.UUID `json:"userId" gorm:"uniqueIndex:category_user_name"`
	Name   string    `json:"name" gorm:"uniqueIndex:category_user_name" example:"Groceries"`
	Icon   string    `json:"icon" example:"fas fa-utensils"` // Icon token, rendered by the client
	Color  string    `json:"color" example:"#10b981"`        // Color token, rendered by the client
}

// BeforeSave trims whitespace and verifies the name is usable.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)
	c.Color = strings.TrimSpace(c.Color)

	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// Referenced reports whether any transaction or budget references the
// category. Referenced categories must not be deleted.
//
// Soft-deleted transactions count as references. Their rows still carry
// the category ID, so removing the category would leave them dangling.
func (c Category) Referenced(db *gorm.DB) (bool, error) {
	var count int64

	err := db.Unscoped().Model(&Transaction{}).Where(&Transaction{CategoryID: c.ID}).Count(&count).Error
	if err != nil {
		return false, err
	}

	if count > 0 {
		return true, nil
	}

	err = db.Unscoped().Model(&Budget{}).Where(&Budget{CategoryID: c.ID}).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// DefaultCategories returns the category set every new user starts with.
func DefaultCategories(userID uuid.UUID) []Category {
	defaults := []struct {
		name  string
		icon  string
		color string
	}{
		{"Food", "fas fa-utensils", "#f59e0b"},
		{"Transport", "fas fa-car", "#3b82f6"},
		{"Housing", "fas fa-home", "#8b5cf6"},
		{"Entertainment", "fas fa-film", "#ec4899"},
		{"Shopping", "fas fa-shopping-bag", "#f43f5e"},
		{"Utilities", "fas fa-bolt", "#eab308"},
		{"Healthcare", "fas fa-heartbeat", "#ef4444"},
		{"Income", "fas fa-dollar-sign", "#10b981"},
		{"Other", "fas fa-question-circle", "#64748b"},
	}

	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			UserID: userID,
			Name:   d.name,
			Icon:   d.icon,
			Color:  d.color,
		})
	}

	return categories
}
