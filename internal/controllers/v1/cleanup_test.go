package v1_test

import (
	"net/http"
	"testing"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCleanup() {
	data := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: data.User.ID})
	_ = suite.createTestTransaction(models.Transaction{
		UserID: data.User.ID, CategoryID: category.ID,
		Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(10),
	})
	_ = suite.createTestBudget(models.Budget{
		UserID: data.User.ID, CategoryID: category.ID,
		Amount: decimal.NewFromInt(100),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1?confirm=yes-please-delete-my-data", "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// All resources are gone, the account still works
	for _, model := range []any{
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
	} {
		var count int64
		err := models.DB.Model(model).Where("user_id = ?", data.User.ID).Count(&count).Error
		suite.Require().NoError(err)
		suite.Assert().Zero(count)
	}

	recorder = test.Request(suite.T(), http.MethodGet, "/v1/users/me", "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
}

// TestCleanupScoped verifies that only the authenticated user's data is deleted.
func (suite *TestSuiteStandard) TestCleanupScoped() {
	data := suite.registerTestUser()
	other := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: other.User.ID})
	transaction := suite.createTestTransaction(models.Transaction{
		UserID: other.User.ID, CategoryID: category.ID,
		Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(10),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, "/v1?confirm=yes-please-delete-my-data", "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	err := models.DB.First(&models.Transaction{}, "id = ?", transaction.ID).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	data := suite.registerTestUser()
	_ = suite.createTestCategory(models.Category{UserID: data.User.ID})

	tests := []string{
		"/v1",
		"/v1?confirm=",
		"/v1?confirm=YES-PLEASE-DELETE-MY-DATA",
		"/v1?confirm=yes-please-delete-my-dat",
	}

	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, path, "", test.BearerHeader(data.Token))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response struct {
				Error string `json:"error"`
			}
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "the confirmation for the cleanup API call was incorrect", response.Error)
		})
	}

	// Nothing was deleted
	var count int64
	err := models.DB.Model(&models.Category{}).Where("user_id = ?", data.User.ID).Count(&count).Error
	suite.Require().NoError(err)
	suite.Assert().NotZero(count)
}
