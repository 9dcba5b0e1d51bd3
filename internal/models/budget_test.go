package models_test

import (
	"errors"

	"github.com/chitieu/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBudgetUnique() {
	budget := suite.createTestBudget(models.Budget{Month: 4, Year: 2025})

	err := models.CheckBudgetUnique(models.DB, budget.OwnerID, budget.CategoryID, 4, 2025)
	require.NotNil(suite.T(), err)

	var exists models.ErrBudgetExists
	require.True(suite.T(), errors.As(err, &exists))
	assert.Equal(suite.T(), budget.ID, exists.BudgetID)
	assert.Equal(suite.T(), "Định mức cho danh mục này trong tháng đã tồn tại.", err.Error())
}

func (suite *TestSuiteStandard) TestBudgetUniquePerMonth() {
	budget := suite.createTestBudget(models.Budget{Month: 4, Year: 2025})

	// A different month, year or category is no conflict
	assert.Nil(suite.T(), models.CheckBudgetUnique(models.DB, budget.OwnerID, budget.CategoryID, 5, 2025))
	assert.Nil(suite.T(), models.CheckBudgetUnique(models.DB, budget.OwnerID, budget.CategoryID, 4, 2026))

	category := suite.createTestCategory(models.Category{OwnerID: budget.OwnerID})
	assert.Nil(suite.T(), models.CheckBudgetUnique(models.DB, budget.OwnerID, category.ID, 4, 2025))
}

func (suite *TestSuiteStandard) TestBudgetUniquePerOwner() {
	budget := suite.createTestBudget(models.Budget{Month: 4, Year: 2025})

	// The same category and month for another user is no conflict
	other := suite.createTestUser(models.User{})
	assert.Nil(suite.T(), models.CheckBudgetUnique(models.DB, other.ID, budget.CategoryID, 4, 2025))
}

func (suite *TestSuiteStandard) TestBudgetUniqueDBFail() {
	budget := suite.createTestBudget(models.Budget{})
	suite.CloseDB()

	err := models.CheckBudgetUnique(models.DB, budget.OwnerID, budget.CategoryID, budget.Month, budget.Year)
	assert.NotNil(suite.T(), err)

	var exists models.ErrBudgetExists
	assert.False(suite.T(), errors.As(err, &exists))
}
