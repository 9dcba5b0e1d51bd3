package models_test

import (
	"github.com/chitieu/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExpenseDeriveMonthYear() {
	expense := suite.createTestExpense(models.Expense{
		Date: date(2025, 11, 15),
	})

	assert.Equal(suite.T(), 11, expense.Month)
	assert.Equal(suite.T(), 2025, expense.Year)
}

func (suite *TestSuiteStandard) TestExpenseMonthYearFollowDate() {
	expense := suite.createTestExpense(models.Expense{
		Date: date(2025, 11, 15),
	})

	// Moving the date to another month updates month and year in the
	// same write, even across a year boundary
	expense.Date = date(2026, 1, 2)
	err := models.DB.Save(&expense).Error
	require.Nil(suite.T(), err)

	var reloaded models.Expense
	err = models.DB.First(&reloaded, expense.ID).Error
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), 1, reloaded.Month)
	assert.Equal(suite.T(), 2026, reloaded.Year)
}

func (suite *TestSuiteStandard) TestExpenseClientMonthIgnored() {
	expense := suite.createTestExpense(models.Expense{
		Date:  date(2025, 7, 1),
		Month: 3,
		Year:  1999,
	})

	assert.Equal(suite.T(), 7, expense.Month)
	assert.Equal(suite.T(), 2025, expense.Year)
}

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	expense := suite.createTestExpense(models.Expense{
		Description: "  Cà phê sáng  ",
	})

	assert.Equal(suite.T(), "Cà phê sáng", expense.Description)
}

func (suite *TestSuiteStandard) TestExpenseDefaultDate() {
	expense := suite.createTestExpense(models.Expense{
		Amount: decimal.NewFromInt(10000),
	})

	assert.False(suite.T(), expense.Date.IsZero())
	assert.Equal(suite.T(), int(expense.Date.Month()), expense.Month)
	assert.Equal(suite.T(), expense.Date.Year(), expense.Year)
}

func (suite *TestSuiteStandard) TestExpenseNotFoundError() {
	var expense models.Expense
	err := models.DB.First(&expense, "id = ?", "00000000-0000-0000-0000-000000000000").Error

	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "Không tìm thấy khoản chi", err.Error())
}
