package v1

import (
	"net/http"
	"time"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/overview", OptionsDashboardOverview)
	r.GET("/overview", GetOverview)
	r.OPTIONS("/analytics", OptionsDashboardAnalytics)
	r.GET("/analytics", GetAnalytics)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/overview [options]
func OptionsDashboardOverview(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/analytics [options]
func OptionsDashboardAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Dashboard overview
// @Description	Returns the headline figures, the newest transactions, all budget statuses and the spending by category for the current month
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard/overview [get]
func GetOverview(c *gin.Context) {
	now := time.Now()

	var user models.User
	err := models.DB.First(&user, "id = ?", userID(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	overview, err := user.Overview(models.DB, now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	recent, err := models.RecentTransactions(models.DB, user.ID, 5)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	var budgets []models.Budget
	err = models.DB.Where(&models.Budget{UserID: user.ID}).Find(&budgets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	budgetData := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		apiResource, err := newBudget(models.DB, budget, now)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), DashboardResponse{Error: &s})
			return
		}
		budgetData = append(budgetData, apiResource)
	}

	from, until, err := types.PeriodMonth.Window(now)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	spending, err := models.CategoryBreakdown(models.DB, user.ID, from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &Dashboard{
		Overview:           overview,
		RecentTransactions: recent,
		Budgets:            budgetData,
		CategorySpending:   spending,
	}})
}

// @Summary		Spending analytics
// @Description	Returns the expense totals by category for the requested period, largest first
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	AnalyticsResponse
// @Failure		400		{object}	AnalyticsResponse
// @Failure		500		{object}	AnalyticsResponse
// @Param			period	query		string	true	"One of: today, week, month, quarter, year"
// @Router			/v1/dashboard/analytics [get]
func GetAnalytics(c *gin.Context) {
	period := types.Period(c.Query("period"))

	from, until, err := period.Window(time.Now())
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{Error: &s})
		return
	}

	breakdown, err := models.CategoryBreakdown(models.DB, userID(c), from, until)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnalyticsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AnalyticsResponse{Data: &Analytics{
		Period:     period,
		From:       from,
		Until:      until,
		Categories: breakdown,
	}})
}
