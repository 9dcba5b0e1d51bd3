package controllers_test

import (
	"net/http"

	"github.com/chitieu/backend/internal/controllers"
	"github.com/chitieu/backend/internal/httperrors"
	"github.com/chitieu/backend/internal/models"
	"github.com/chitieu/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestYearlyStats() {
	token := suite.signUp()
	category := suite.createCategory(token, "Du lịch")

	suite.createExpense(token, controllers.ExpenseCreate{
		Amount:      decimal.NewFromInt(5000000),
		CategoryID:  category.ID,
		Description: "Chuyến đi Đà Lạt",
		Date:        "2025-11-15",
	})
	suite.createBudget(token, controllers.BudgetCreate{
		CategoryID: category.ID,
		Limit:      decimal.NewFromInt(4000000),
		Month:      11,
		Year:       2025,
	})

	r := test.Request(suite.T(), http.MethodGet, "/api/v1/stats/year?year=2025", "", suite.authHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var stats models.YearlyStats
	test.DecodeResponse(suite.T(), &r, &stats)

	suite.Require().Len(stats.Months, 12, "The report must contain all twelve months")

	november := stats.Months[10]
	assert.Equal(suite.T(), 11, november.Month)
	assert.True(suite.T(), november.Over.Equal(decimal.NewFromInt(1000000)), "November overage is %s", november.Over)
	assert.Equal(suite.T(), int64(125), november.Percent)
}

func (suite *TestSuiteStandard) TestYearlyStatsMissingYear() {
	token := suite.signUp()

	r := test.Request(suite.T(), http.MethodGet, "/api/v1/stats/year", "", suite.authHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response httperrors.HTTPError
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Thiếu tham số year", response.Message)

	r = test.Request(suite.T(), http.MethodGet, "/api/v1/stats/year?year=abc", "", suite.authHeader(token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
