package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pfdash/backend/internal/controllers/v1"
	"github.com/pfdash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestOptionsChart() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/charts/monthly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/charts/daily", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetChartInvalidFrequency() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/daily", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the frequency must be one of 'weekly', 'monthly'", *response.Error)
}

func (suite *TestSuiteStandard) TestGetChartMonthly() {
	amount := decimal.NewFromInt(10)
	createTestRecord(suite.T(), v1.RecordEditable{Amount: &amount, Category: "Groceries", Date: "2024-01-15T12:00:00Z"})

	amount = decimal.NewFromInt(5)
	createTestRecord(suite.T(), v1.RecordEditable{Amount: &amount, Category: "Groceries", Date: "2024-03-02T12:00:00Z"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/monthly?category=Groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	chart := *response.Data
	suite.Assert().Equal("Monthly Trends", chart.Title)
	suite.Assert().Equal("Month", chart.XAxis)
	suite.Assert().Equal("Amount", chart.YAxis)
	suite.Require().Len(chart.Series, 1)
	suite.Assert().Equal("Groceries", chart.Series[0].Name)

	// January through March, with February filled in as zero
	points := chart.Series[0].Points
	suite.Require().Len(points, 3)
	suite.Assert().True(points[0].PeriodStart.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	suite.Assert().True(points[0].Amount.Equal(decimal.NewFromInt(10)))
	suite.Assert().True(points[1].PeriodStart.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	suite.Assert().True(points[1].Amount.IsZero())
	suite.Assert().True(points[2].PeriodStart.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	suite.Assert().True(points[2].Amount.Equal(decimal.NewFromInt(5)))
}

func (suite *TestSuiteStandard) TestGetChartWeekly() {
	amount := decimal.NewFromInt(10)

	// 2024-01-10 is a Wednesday, its week starts Monday 2024-01-08
	createTestRecord(suite.T(), v1.RecordEditable{Amount: &amount, Category: "Groceries", Date: "2024-01-10T12:00:00Z"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/weekly?category=Groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	chart := *response.Data
	suite.Assert().Equal("Weekly Trends", chart.Title)
	suite.Assert().Equal("Week", chart.XAxis)
	suite.Require().Len(chart.Series, 1)
	suite.Require().Len(chart.Series[0].Points, 1)
	suite.Assert().True(chart.Series[0].Points[0].PeriodStart.Equal(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)))
}

// Without a category selection the chart has no series and no labels, the
// dashboard renders it as an empty panel.
func (suite *TestSuiteStandard) TestGetChartNoCategories() {
	amount := decimal.NewFromInt(10)
	createTestRecord(suite.T(), v1.RecordEditable{Amount: &amount, Category: "Groceries", Date: "2024-01-15T12:00:00Z"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/monthly", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Empty(response.Data.Series)
	suite.Assert().Empty(response.Data.Title)
}

func (suite *TestSuiteStandard) TestGetChartSeriesOrder() {
	amount := decimal.NewFromInt(10)
	createTestRecord(suite.T(), v1.RecordEditable{Amount: &amount, Category: "Rent", Date: "2024-01-15T12:00:00Z"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/monthly?category=Rent&category=Groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChartResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data.Series, 2)

	// Series follow the request order. Groceries has no records, so its
	// series is empty.
	suite.Assert().Equal("Rent", response.Data.Series[0].Name)
	suite.Assert().Equal("Groceries", response.Data.Series[1].Name)
	suite.Assert().Len(response.Data.Series[0].Points, 1)
	suite.Assert().Empty(response.Data.Series[1].Points)
}

func (suite *TestSuiteStandard) TestChartDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/charts/monthly?category=Groceries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
