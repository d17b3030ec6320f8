package auth

import (
	"time"

	"wordnest/models"
	"wordnest/tools"

	"github.com/jinzhu/gorm"
)

// TokenPair is what every successful login/registration/refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// GenerateTokens issues a fresh access+refresh pair for the user. The
// refresh token is 64 random bytes hex-encoded; only its SHA-512 hash is
// persisted. A user may hold any number of concurrent refresh tokens
// (multiple devices, no single-session enforcement).
func GenerateTokens(db *gorm.DB, user models.User) (TokenPair, error) {
	access, err := NewAccessToken(user)
	if err != nil {
		return TokenPair{}, err
	}

	raw, err := tools.RandomHex(64)
	if err != nil {
		return TokenPair{}, err
	}

	exp := time.Now().Add(refreshTokenTTL())
	stored := models.RefreshToken{
		UserID:    user.ID,
		TokenHash: tools.EncryptTextSHA512(raw),
		ExpiresAt: &exp,
	}
	if err := db.Create(&stored).Error; err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: raw}, nil
}

// Refresh rotates a refresh token: the presented token is deleted and a
// brand-new pair is issued. Reusing a rotated token always fails, which is
// what lets a detection layer flag replay.
//
// The delete is the claim: exactly one of two concurrent calls with the
// same token sees RowsAffected == 1, the other gets ErrInvalidRefreshToken.
func Refresh(db *gorm.DB, refreshToken string) (TokenPair, error) {
	now := time.Now()
	hash := tools.EncryptTextSHA512(refreshToken)

	var stored models.RefreshToken
	if err := db.Where("token_hash = ?", hash).First(&stored).Error; err != nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if stored.IsExpired(now) {
		db.Where("token_hash = ?", hash).Delete(&models.RefreshToken{})
		return TokenPair{}, ErrRefreshTokenExpired
	}

	res := db.Where("token_hash = ?", hash).Delete(&models.RefreshToken{})
	if res.Error != nil {
		return TokenPair{}, res.Error
	}
	if res.RowsAffected == 0 {
		// Lost the race to a concurrent refresh with the same token.
		return TokenPair{}, ErrInvalidRefreshToken
	}

	var user models.User
	if err := db.First(&user, stored.UserID).Error; err != nil {
		return TokenPair{}, ErrUserNotFound
	}

	return GenerateTokens(db, user)
}

// Logout deletes the matching refresh token row. Idempotent: a token that
// is already gone is not an error.
func Logout(db *gorm.DB, refreshToken string) error {
	hash := tools.EncryptTextSHA512(refreshToken)
	return db.Where("token_hash = ?", hash).Delete(&models.RefreshToken{}).Error
}

// RevokeAllUserRefreshTokens forces re-login on every device.
func RevokeAllUserRefreshTokens(db *gorm.DB, userID int64) error {
	return db.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}

// CleanupExpiredTokens removes expired refresh and reset rows. Storage
// hygiene only: expired rows are already rejected at lookup time, so this
// is safe to run concurrently with in-flight requests.
func CleanupExpiredTokens(db *gorm.DB) error {
	now := time.Now()
	if err := db.Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&models.RefreshToken{}).Error; err != nil {
		return err
	}
	return db.Where("expires_at IS NOT NULL AND expires_at <= ?", now).
		Delete(&models.PasswordReset{}).Error
}
