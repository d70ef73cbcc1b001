package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	user := suite.createTestUser(models.User{})

	category := suite.createTestCategory(models.Category{
		UserID: user.ID,
		Name:   "  Groceries \t",
		Icon:   " fas fa-utensils ",
		Color:  " #10b981 ",
	})

	assert.Equal(suite.T(), "Groceries", category.Name)
	assert.Equal(suite.T(), "fas fa-utensils", category.Icon)
	assert.Equal(suite.T(), "#10b981", category.Color)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	user := suite.createTestUser(models.User{})

	category := models.Category{UserID: user.ID, Name: "   "}
	err := models.DB.Create(&category).Error

	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	_ = suite.createTestCategory(models.Category{UserID: user.ID, Name: "Groceries"})

	// The same name for another user is fine
	otherCategory := models.Category{UserID: other.ID, Name: "Groceries"}
	require.Nil(suite.T(), models.DB.Create(&otherCategory).Error)

	// The same name for the same user is not
	duplicate := models.Category{UserID: user.ID, Name: "Groceries"}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)
}

func (suite *TestSuiteStandard) TestCategoryReferenced() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})
	unused := suite.createTestCategory(models.Category{UserID: user.ID})

	_ = suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(10),
		CategoryID: category.ID,
	})

	referenced, err := category.Referenced(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), referenced)

	referenced, err = unused.Referenced(models.DB)
	require.Nil(suite.T(), err)
	assert.False(suite.T(), referenced)
}

// Soft-deleted transactions still reference their category, the row
// keeps the category ID.
func (suite *TestSuiteStandard) TestCategoryReferencedBySoftDeletedTransaction() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	transaction := suite.createTestTransaction(models.Transaction{
		UserID:     user.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(10),
		CategoryID: category.ID,
	})
	require.Nil(suite.T(), models.DB.Delete(&transaction).Error)

	referenced, err := category.Referenced(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), referenced)
}

func (suite *TestSuiteStandard) TestCategoryReferencedByBudget() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: user.ID})

	_ = suite.createTestBudget(models.Budget{
		UserID:     user.ID,
		CategoryID: category.ID,
		Amount:     decimal.NewFromFloat(100),
	})

	referenced, err := category.Referenced(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), referenced)
}

func (suite *TestSuiteStandard) TestDefaultCategories() {
	user := suite.createTestUser(models.User{})

	categories := models.DefaultCategories(user.ID)
	require.Len(suite.T(), categories, 9)

	require.Nil(suite.T(), models.DB.Create(&categories).Error)

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		assert.Equal(suite.T(), user.ID, category.UserID)
		assert.NotEmpty(suite.T(), category.Icon)
		assert.NotEmpty(suite.T(), category.Color)
		names = append(names, category.Name)
	}

	assert.Contains(suite.T(), names, "Food")
	assert.Contains(suite.T(), names, "Income")
	assert.Contains(suite.T(), names, "Other")
}
