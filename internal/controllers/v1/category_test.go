package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateCategory() {
	data := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{
		Name:  "Streaming",
		Icon:  "fas fa-film",
		Color: "#8b5cf6",
	}, test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Streaming", response.Data.Name)
	suite.Assert().Equal("fas fa-film", response.Data.Icon)
	suite.Assert().Equal("#8b5cf6", response.Data.Color)
	suite.Assert().Equal(data.User.ID, response.Data.UserID)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalid() {
	data := suite.registerTestUser()

	tests := []struct {
		name string
		body any
	}{
		{"Broken JSON", `{ "name": "b`},
		{"Empty name", v1.CategoryEditable{Name: ""}},
		{"Whitespace name", v1.CategoryEditable{Name: "   "}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "/v1/categories", tt.body, test.BearerHeader(data.Token))
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateCategoryDuplicateName() {
	data := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Pets"}, test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Pets"}, test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)

	// The same name is fine for another user
	other := suite.registerTestUser()
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Pets"}, test.BearerHeader(other.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestGetCategories() {
	data := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The nine default categories, sorted by name
	suite.Require().Len(response.Data, 9)
	for i := 1; i < len(response.Data); i++ {
		suite.Assert().LessOrEqual(response.Data[i-1].Name, response.Data[i].Name)
	}
}

// TestGetCategoriesScoped verifies that users only ever see their own categories.
func (suite *TestSuiteStandard) TestGetCategoriesScoped() {
	data := suite.registerTestUser()
	other := suite.registerTestUser()

	_ = suite.createTestCategory(models.Category{UserID: other.User.ID, Name: "Secret"})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/categories", "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	for _, category := range response.Data {
		suite.Assert().Equal(data.User.ID, category.UserID)
	}
}

func (suite *TestSuiteStandard) TestGetCategory() {
	data := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: data.User.ID, Name: "Hobbies"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/categories/%s", category.ID), "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Hobbies", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetCategoryInvalid() {
	data := suite.registerTestUser()
	other := suite.registerTestUser()
	hidden := suite.createTestCategory(models.Category{UserID: other.User.ID})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Invalid UUID", "/v1/categories/not-a-uuid", http.StatusBadRequest},
		{"Nonexistent", "/v1/categories/cf1027c8-553a-473f-9563-9278dc400a8f", http.StatusNotFound},
		{"Other user's category", fmt.Sprintf("/v1/categories/%s", hidden.ID), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, tt.path, "", test.BearerHeader(data.Token))
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.status == http.StatusNotFound {
				var response v1.CategoryResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Equal(t, "there is no category matching your query", *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestUpdateCategory() {
	data := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: data.User.ID, Name: "Hobbies", Icon: "fas fa-dice"})

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/categories/%s", category.ID), map[string]string{
		"name": "Games",
	}, test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Games", response.Data.Name)
	suite.Assert().Equal("fas fa-dice", response.Data.Icon)
}

func (suite *TestSuiteStandard) TestDeleteCategory() {
	data := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: data.User.ID})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Deleting twice returns a 404
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteCategoryReferenced() {
	data := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: data.User.ID})
	_ = suite.createTestTransaction(models.Transaction{
		UserID:     data.User.ID,
		CategoryID: category.ID,
		Type:       models.TransactionTypeExpense,
		Amount:     decimal.NewFromFloat(14.37),
	})

	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", category.ID), "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the category is still referenced by transactions or budgets", *response.Error)
}

// TestDeleteCategoryReusesName verifies that the name of a deleted
// category can be used for a new one.
func (suite *TestSuiteStandard) TestDeleteCategoryReusesName() {
	data := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Subscriptions"}, test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/categories/%s", response.Data.ID), "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodPost, "/v1/categories", v1.CategoryEditable{Name: "Subscriptions"}, test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestCategoryOptions() {
	data := suite.registerTestUser()
	category := suite.createTestCategory(models.Category{UserID: data.User.ID})

	recorder := test.Request(suite.T(), http.MethodOptions, "/v1/categories", "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/categories/%s", category.ID), "", test.BearerHeader(data.Token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", recorder.Header().Get("allow"))
}
