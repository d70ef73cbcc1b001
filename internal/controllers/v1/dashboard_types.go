package v1

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
)

// Dashboard is all data needed to render the dashboard.
type Dashboard struct {
	Overview           models.Overview        `json:"overview"`
	RecentTransactions []models.Transaction   `json:"recentTransactions"` // The five newest transactions
	Budgets            []Budget               `json:"budgets"`            // All budgets with their current status
	CategorySpending   []models.CategoryTotal `json:"categorySpending"`   // Expense totals by category for the current month
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                      // Data for the dashboard
	Error *string    `json:"error" example:"there is no user matching your query"` // The error, if any occurred
}

// Analytics is the expense breakdown for one resolved period window.
type Analytics struct {
	Period     types.Period           `json:"period" example:"month"`
	From       time.Time              `json:"from" example:"2026-08-01T00:00:00Z"`  // Start of the window, inclusive
	Until      time.Time              `json:"until" example:"2026-09-01T00:00:00Z"` // End of the window, exclusive
	Categories []models.CategoryTotal `json:"categories"`                           // Expense totals, largest first
}

type AnalyticsResponse struct {
	Data  *Analytics `json:"data"`                                               // Data for the analytics
	Error *string    `json:"error" example:"the specified period is invalid"` // The error, if any occurred
}
