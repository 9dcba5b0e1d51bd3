package models_test

import (
	"encoding/json"

	"github.com/chitieu/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := suite.createTestUser(models.User{Email: "  An.Binh@Example.COM "})

	assert.Equal(suite.T(), "an.binh@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	suite.createTestUser(models.User{Email: "duplicate@example.com"})

	err := models.DB.Create(&models.User{Name: "B", Email: "duplicate@example.com"}).Error
	require.NotNil(suite.T(), err)
	assert.ErrorIs(suite.T(), err, models.ErrEmailExists)
}

func (suite *TestSuiteStandard) TestUserDefaultProvider() {
	user := suite.createTestUser(models.User{})

	assert.Equal(suite.T(), models.ProviderLocal, user.Provider)
}

func (suite *TestSuiteStandard) TestUserPasswordNotSerialized() {
	user := suite.createTestUser(models.User{Password: "hashed-password", GoogleID: "g-123"})

	raw, err := json.Marshal(user)
	require.Nil(suite.T(), err)

	assert.NotContains(suite.T(), string(raw), "hashed-password")
	assert.NotContains(suite.T(), string(raw), "g-123")
}
