package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/pfdash/backend/internal/controllers/v1"
	"github.com/pfdash/backend/test"
	"github.com/stretchr/testify/assert"
)

// createTestCategory creates a category via the API and returns it.
func createTestCategory(t *testing.T, editable v1.CategoryEditable) v1.Category {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{editable})
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(t, &r, &response)

	return *response.Data[0].Data
}

func (suite *TestSuiteStandard) TestOptionsCategories() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateCategory() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	suite.Assert().Equal("Groceries", category.Name)
	suite.Assert().NotZero(category.ID)
	suite.Assert().NotZero(category.CreatedAt)
}

func (suite *TestSuiteStandard) TestCreateCategoryInvalidName() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{{Name: "Rent#1"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Require().NotNil(response.Data[0].Error)
	suite.Assert().Contains(*response.Data[0].Error, "letters and numbers")

	// The vocabulary must not have changed
	l := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &l, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &l, &list)
	suite.Assert().Empty(list.Data)
}

func (suite *TestSuiteStandard) TestCreateCategoriesPartialFailure() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", []v1.CategoryEditable{
		{Name: "Groceries"},
		{Name: "Rent#1"},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)

	// The valid category was still added
	l := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &l, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("Groceries", list.Data[0].Name)
}

func (suite *TestSuiteStandard) TestCreateCategoryEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.CategoryCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestCreateCategoryBrokenJSON() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/categories", `[{ "name": "Groc`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetCategoriesOrder() {
	for _, name := range []string{"Groceries", "Rent", "Travel"} {
		createTestCategory(suite.T(), v1.CategoryEditable{Name: name})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var list v1.CategoryListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	suite.Require().Len(list.Data, 3)

	// Creation order
	suite.Assert().Equal("Groceries", list.Data[0].Name)
	suite.Assert().Equal("Rent", list.Data[1].Name)
	suite.Assert().Equal("Travel", list.Data[2].Name)
}

func (suite *TestSuiteStandard) TestCategoriesDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
