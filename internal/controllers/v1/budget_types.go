package v1

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetEditable represents all user configurable parameters
type BudgetEditable struct {
	CategoryID uuid.UUID           `json:"categoryId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Amount     decimal.Decimal     `json:"amount" example:"1000"` // The spending cap for one period
	Period     models.BudgetPeriod `json:"period" example:"monthly" default:"monthly"`
	StartDate  time.Time           `json:"startDate" example:"2026-08-01T00:00:00Z"` // Defaults to the current time
}

func (editable BudgetEditable) model(userID uuid.UUID) models.Budget {
	return models.Budget{
		UserID:     userID,
		CategoryID: editable.CategoryID,
		Amount:     editable.Amount,
		Period:     editable.Period,
		StartDate:  editable.StartDate,
	}
}

// Budget is a budget with its live status and category for the API.
type Budget struct {
	models.Budget
	Spent           decimal.Decimal `json:"spent" example:"850"`
	Remaining       decimal.Decimal `json:"remaining" example:"150"`
	PercentageSpent int64           `json:"percentageSpent" example:"85"` // Not capped at 100, values above signal an over-budget state
	Category        models.Category `json:"category"`                     // The category the budget limits
}

// newBudget computes the status of the budget for the month containing
// asOf and loads its category.
func newBudget(db *gorm.DB, model models.Budget, asOf time.Time) (Budget, error) {
	status, err := model.Status(db, asOf)
	if err != nil {
		return Budget{}, err
	}

	var category models.Category
	err = db.First(&category, "id = ?", model.CategoryID).Error
	if err != nil {
		return Budget{}, err
	}

	return Budget{
		Budget:          model,
		Spent:           status.Spent,
		Remaining:       status.Remaining,
		PercentageSpent: status.PercentageSpent,
		Category:        category,
	}, nil
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`                                                          // List of budgets
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // Data for the budget
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
