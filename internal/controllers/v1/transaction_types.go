package v1

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	ft_uuid "github.com/fintrack/backend/internal/uuid"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Type        models.TransactionType `json:"type" example:"expense"`
	Amount      decimal.Decimal        `json:"amount" example:"14.37"` // Always positive, the type determines the sign
	Description string                 `json:"description" example:"Groceries for the week" default:""`
	CategoryID  uuid.UUID              `json:"categoryId" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Date        time.Time              `json:"date" example:"2026-08-12T00:00:00Z"` // Defaults to the current time
}

func (editable TransactionEditable) model(userID uuid.UUID) models.Transaction {
	return models.Transaction{
		UserID:      userID,
		Type:        editable.Type,
		Amount:      editable.Amount,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
		Date:        editable.Date,
	}
}

type TransactionListResponse struct {
	Data       []models.Transaction `json:"data"`                                                          // List of transactions
	Error      *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination          `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *models.Transaction `json:"data"`                                                          // Data for the transaction
	Error *string             `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type       string       `form:"type"`                          // By type: income or expense
	CategoryID ft_uuid.UUID `form:"category"`                      // By ID of the category
	FromDate   string       `form:"fromDate" filterField:"false"`  // Only transactions at or after this date
	UntilDate  string       `form:"untilDate" filterField:"false"` // Only transactions before this date
	Search     string       `form:"search" filterField:"false"`    // By string in the description
	Page       int          `form:"page" filterField:"false"`      // The page to return, starting at 1
	PageSize   int          `form:"pageSize" filterField:"false"`  // Number of transactions per page
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		Type:       models.TransactionType(f.Type),
		CategoryID: f.CategoryID.UUID,
	}
}
