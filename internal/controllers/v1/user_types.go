package v1

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// UserEditable represents all user configurable parameters of the user itself
type UserEditable struct {
	Name            string          `json:"name" example:"Jane" default:""`
	StartingBalance decimal.Decimal `json:"startingBalance" example:"21000" default:"0"` // Added to the lifetime balance
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:            editable.Name,
		StartingBalance: editable.StartingBalance,
	}
}

type UserResponse struct {
	Data  *models.User `json:"data"`                                                      // Data for the user
	Error *string      `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}
