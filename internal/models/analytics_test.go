package models_test

import (
	"time"

	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestOverview() {
	user := suite.createTestUser(models.User{
		StartingBalance: decimal.NewFromFloat(21000),
	})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	asOf := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeIncome,
		Amount:     decimal.NewFromFloat(2500),
		CategoryID: category.ID,
		Date:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(85.50),
		CategoryID: category.ID,
		Date:       time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	})

	overview, err := user.Overview(models.DB, asOf)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), overview.TotalBalance.Equal(decimal.NewFromFloat(23414.50)), "TotalBalance is %s, should be 23414.5", overview.TotalBalance)
	assert.True(suite.T(), overview.MonthlyIncome.Equal(decimal.NewFromFloat(2500)))
	assert.True(suite.T(), overview.MonthlyExpenses.Equal(decimal.NewFromFloat(85.50)))
}

func (suite *TestSuiteStandard) TestOverviewLifetimeVsMonthly() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	asOf := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	// Income from an earlier month counts for the balance, but not for
	// the monthly figures
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeIncome,
		Amount:     decimal.NewFromFloat(1000),
		CategoryID: category.ID,
		Date:       time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	overview, err := user.Overview(models.DB, asOf)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), overview.TotalBalance.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), overview.MonthlyIncome.IsZero())
	assert.True(suite.T(), overview.MonthlyExpenses.IsZero())
}

func (suite *TestSuiteStandard) TestOverviewEmpty() {
	user := suite.createTestUser(models.User{})

	overview, err := user.Overview(models.DB, time.Now())
	require.Nil(suite.T(), err)

	assert.True(suite.T(), overview.TotalBalance.IsZero())
	assert.True(suite.T(), overview.MonthlyIncome.IsZero())
	assert.True(suite.T(), overview.MonthlyExpenses.IsZero())
}

func (suite *TestSuiteStandard) TestCategoryBreakdown() {
	user := suite.createTestUser(models.User{})
	food := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Food"})
	transport := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Transport"})
	unused := suite.createTestCategory(models.Category{UserID: user.ID, Name: "Unused"})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(50),
		CategoryID: food.ID,
		Date:       time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(120),
		CategoryID: transport.ID,
		Date:       time.Date(2026, 8, 6, 0, 0, 0, 0, time.UTC),
	})

	// Income must not appear in the breakdown
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeIncome,
		Amount:     decimal.NewFromFloat(9000),
		CategoryID: unused.ID,
		Date:       time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC),
	})

	breakdown, err := models.CategoryBreakdown(models.DB, user.ID, from, until)
	require.Nil(suite.T(), err)

	// Categories without expenses are omitted, the rest is ordered by
	// total descending
	require.Len(suite.T(), breakdown, 2)
	assert.Equal(suite.T(), "Transport", breakdown[0].Category.Name)
	assert.True(suite.T(), breakdown[0].Total.Equal(decimal.NewFromFloat(120)))
	assert.Equal(suite.T(), "Food", breakdown[1].Category.Name)
	assert.True(suite.T(), breakdown[1].Total.Equal(decimal.NewFromFloat(50)))
}

func (suite *TestSuiteStandard) TestCategoryBreakdownWindow() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// One transaction exactly at the start (included) and one exactly
	// at the end (excluded)
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(10),
		CategoryID: category.ID,
		Date:       from,
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(99),
		CategoryID: category.ID,
		Date:       until,
	})

	breakdown, err := models.CategoryBreakdown(models.DB, user.ID, from, until)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), breakdown, 1)
	assert.True(suite.T(), breakdown[0].Total.Equal(decimal.NewFromFloat(10)))
}

func (suite *TestSuiteStandard) TestDeleteUserData() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	category := suite.createTestCategory(models.Category{UserID: user.ID})
	otherCategory := suite.createTestCategory(models.Category{UserID: other.ID})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(10),
		CategoryID: category.ID,
	})
	_ = suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(100),
	})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     other.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(10),
		CategoryID: otherCategory.ID,
	})

	require.Nil(suite.T(), models.DeleteUserData(models.DB, user.ID))

	var count int64
	require.Nil(suite.T(), models.DB.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)

	// The other user's data is untouched
	require.Nil(suite.T(), models.DB.Model(&models.Transaction{}).Where("user_id = ?", other.ID).Count(&count).Error)
	assert.Equal(suite.T(), int64(1), count)

	// The user itself is kept
	var reloaded models.User
	assert.Nil(suite.T(), models.DB.First(&reloaded, "id = ?", user.ID).Error)
}
