package models_test

import (
	"time"

	"github.com/chitieu/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestBlacklistToken() {
	err := models.BlacklistToken(models.DB, "some-token", time.Now().Add(time.Hour))
	require.Nil(suite.T(), err)

	blacklisted, err := models.TokenBlacklisted(models.DB, "some-token")
	require.Nil(suite.T(), err)
	assert.True(suite.T(), blacklisted)

	blacklisted, err = models.TokenBlacklisted(models.DB, "another-token")
	require.Nil(suite.T(), err)
	assert.False(suite.T(), blacklisted)
}

func (suite *TestSuiteStandard) TestBlacklistIgnoresExpired() {
	err := models.BlacklistToken(models.DB, "stale-token", time.Now().Add(-time.Minute))
	require.Nil(suite.T(), err)

	// A token whose own expiry has passed is rejected by signature
	// verification anyway, the blacklist entry no longer matters
	blacklisted, err := models.TokenBlacklisted(models.DB, "stale-token")
	require.Nil(suite.T(), err)
	assert.False(suite.T(), blacklisted)
}

func (suite *TestSuiteStandard) TestCleanupExpiredTokens() {
	require.Nil(suite.T(), models.BlacklistToken(models.DB, "stale-token", time.Now().Add(-time.Minute)))
	require.Nil(suite.T(), models.BlacklistToken(models.DB, "live-token", time.Now().Add(time.Hour)))

	require.Nil(suite.T(), models.CleanupExpiredTokens(models.DB))

	var count int64
	err := models.DB.Model(&models.BlacklistedToken{}).Count(&count).Error
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}
