package models_test

import (
	"github.com/chitieu/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSeedDefaultCategories() {
	user := suite.createTestUser(models.User{})

	err := models.SeedDefaultCategories(models.DB, user.ID)
	require.Nil(suite.T(), err)

	var categories []models.Category
	err = models.DB.Where("owner_id = ?", user.ID).Find(&categories).Error
	require.Nil(suite.T(), err)
	require.Len(suite.T(), categories, len(models.DefaultCategories))

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(suite.T(), models.DefaultCategories, names)
}

func (suite *TestSuiteStandard) TestSeedDefaultCategoriesIdempotent() {
	user := suite.createTestUser(models.User{})

	require.Nil(suite.T(), models.SeedDefaultCategories(models.DB, user.ID))
	require.Nil(suite.T(), models.SeedDefaultCategories(models.DB, user.ID))

	var count int64
	err := models.DB.Model(&models.Category{}).Where("owner_id = ?", user.ID).Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(len(models.DefaultCategories)), count)
}

func (suite *TestSuiteStandard) TestSeedSkippedWhenCategoriesExist() {
	user := suite.createTestUser(models.User{})
	suite.createTestCategory(models.Category{Name: "Du lịch", OwnerID: user.ID})

	require.Nil(suite.T(), models.SeedDefaultCategories(models.DB, user.ID))

	var count int64
	err := models.DB.Model(&models.Category{}).Where("owner_id = ?", user.ID).Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count, "Seeding must not run for users that already have categories")
}

func (suite *TestSuiteStandard) TestCategoryUniquePerOwner() {
	category := suite.createTestCategory(models.Category{Name: "Du lịch"})

	err := models.DB.Create(&models.Category{Name: "Du lịch", OwnerID: category.OwnerID}).Error
	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrCategoryExists)

	// Another user may use the same name
	other := suite.createTestUser(models.User{})
	err = models.DB.Create(&models.Category{Name: "Du lịch", OwnerID: other.ID}).Error
	assert.Nil(suite.T(), err)
}
