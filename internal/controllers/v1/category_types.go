package v1

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name  string `json:"name" example:"Groceries"`
	Icon  string `json:"icon" example:"fas fa-utensils" default:""` // Icon token, rendered by the client
	Color string `json:"color" example:"#10b981" default:""`        // Color token, rendered by the client
}

func (editable CategoryEditable) model(userID uuid.UUID) models.Category {
	return models.Category{
		UserID: userID,
		Name:   editable.Name,
		Icon:   editable.Icon,
		Color:  editable.Color,
	}
}

type CategoryListResponse struct {
	Data  []models.Category `json:"data"`                                                          // List of categories
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Data  *models.Category `json:"data"`                                                          // Data for the category
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
