package models

import (
	"time"

	"gorm.io/gorm"
)

// BlacklistedToken is a revoked bearer token. It is written on logout
// and consulted on every authenticated request, which makes a logout
// effective immediately even though the token itself is still valid.
//
// Rows become useless once the token would have expired anyway;
// CleanupExpiredTokens removes them.
type BlacklistedToken struct {
	DefaultModel
	Token     string    `json:"-" gorm:"uniqueIndex"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// BlacklistToken revokes a token until its expiry.
func BlacklistToken(db *gorm.DB, token string, expiresAt time.Time) error {
	return db.Create(&BlacklistedToken{Token: token, ExpiresAt: expiresAt}).Error
}

// TokenBlacklisted reports whether the token has been revoked. Entries
// whose expiry has passed are ignored, the token is rejected by
// signature verification at that point anyway.
func TokenBlacklisted(db *gorm.DB, token string) (bool, error) {
	var count int64
	err := db.Model(&BlacklistedToken{}).
		Where("token = ? AND expires_at > ?", token, time.Now().In(time.UTC)).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CleanupExpiredTokens deletes blacklist entries for tokens that have
// expired on their own.
func CleanupExpiredTokens(db *gorm.DB) error {
	return db.Unscoped().
		Where("expires_at <= ?", time.Now().In(time.UTC)).
		Delete(&BlacklistedToken{}).Error
}
