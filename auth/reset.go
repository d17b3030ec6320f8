package auth

import (
	"math/rand"
	"strings"
	"time"

	"wordnest/models"
	"wordnest/tools"

	"github.com/jinzhu/gorm"
	"golang.org/x/crypto/bcrypt"
)

// Selector/validator scheme: the selector is a random plaintext lookup
// key, the validator a random secret that is bcrypt-hashed before storage.
// At rest: "selector:validatorHash". On the wire: "selector.validator".
const resetSelectorBytes = 16
const resetValidatorBytes = 32

// At most this many reset tokens per user inside the window. Over the cap
// the request silently no-ops — surfacing an error here would confirm the
// email exists.
const resetRateLimit = 3
const resetRateWindow = 15 * time.Minute

// RequestPasswordReset starts the forgot-password flow. It is
// success-shaped for every input: unknown emails only cost the caller an
// artificial 150-250 ms delay that equalizes timing with the real path.
// The only surfaced failure is the reset email itself not going out, so
// the user isn't told "check your email" when nothing was sent.
func RequestPasswordReset(db *gorm.DB, mailer tools.Mailer, email string) error {
	email = strings.TrimSpace(email)

	var user models.User
	if email == "" || db.Where("email = ?", email).First(&user).Error != nil {
		sleepEnumerationDelay()
		return nil
	}

	windowStart := time.Now().Add(-resetRateWindow)
	var recent int64
	if err := db.Model(&models.PasswordReset{}).
		Where("user_id = ? AND created_at > ?", user.ID, windowStart).
		Count(&recent).Error; err != nil || recent >= resetRateLimit {
		return nil
	}

	selector, err := tools.RandomHex(resetSelectorBytes)
	if err != nil {
		return nil
	}
	validator, err := tools.RandomHex(resetValidatorBytes)
	if err != nil {
		return nil
	}
	validatorHash, err := bcrypt.GenerateFromPassword([]byte(validator), bcryptCost())
	if err != nil {
		return nil
	}

	exp := time.Now().Add(resetTokenTTL())
	reset := models.PasswordReset{
		UserID:    user.ID,
		TokenHash: selector + ":" + string(validatorHash),
		ExpiresAt: &exp,
	}
	if err := db.Create(&reset).Error; err != nil {
		return nil
	}

	return mailer.SendPasswordReset(user.Email, selector+"."+validator, resetTokenTTL())
}

// ValidateResetToken is the read-only half of ResetPassword: same parse,
// lookup and compare, no state change. The frontend calls it to decide
// whether to show the reset form at all.
func ValidateResetToken(db *gorm.DB, rawToken string) bool {
	_, _, err := lookupResetToken(db, rawToken)
	return err == nil
}

// ResetPassword consumes a reset token. Malformed shape, lookup miss and
// validator mismatch all answer the same ErrInvalidOrExpiredToken. On
// success, in one transaction: the new hash is stored, every reset token
// for the user is removed, and every refresh token is removed so all
// devices must log in again. Outstanding access tokens stay valid until
// their own expiry — they are stateless by design.
func ResetPassword(db *gorm.DB, mailer tools.Mailer, rawToken, newPassword string) error {
	if tools.CheckPassword(newPassword) != "" {
		return ErrWeakPassword
	}

	user, _, err := lookupResetToken(db, rawToken)
	if err != nil {
		return err
	}

	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	tx := db.Begin()
	if err := tx.Model(&user).Update("password", hash).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.PasswordReset{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Create(&models.Notification{
		UserID:  user.ID,
		Kind:    models.NOTIFICATION_KIND_PASSWORD_CHANGED,
		Message: "Your password was reset by email.",
	}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return err
	}

	// Best-effort notice; a send failure never fails the reset itself.
	if user.Email != "" {
		go func(email string) {
			_ = mailer.SendPasswordChanged(email)
		}(user.Email)
	}

	return nil
}

// lookupResetToken parses "selector.validator", finds the usable row by
// selector prefix and compares the validator against the stored bcrypt
// hash. Every failure is ErrInvalidOrExpiredToken.
func lookupResetToken(db *gorm.DB, rawToken string) (models.User, models.PasswordReset, error) {
	parts := strings.Split(rawToken, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return models.User{}, models.PasswordReset{}, ErrInvalidOrExpiredToken
	}
	selector, validator := parts[0], parts[1]

	// Selectors are hex, so the LIKE pattern carries no wildcards.
	var reset models.PasswordReset
	err := db.
		Where("token_hash LIKE ? AND used_at IS NULL AND expires_at > ?", selector+":%", time.Now()).
		Order("id desc").
		First(&reset).Error
	if err != nil {
		return models.User{}, models.PasswordReset{}, ErrInvalidOrExpiredToken
	}

	storedHash := strings.TrimPrefix(reset.TokenHash, selector+":")
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(validator)) != nil {
		return models.User{}, models.PasswordReset{}, ErrInvalidOrExpiredToken
	}

	var user models.User
	if err := db.First(&user, reset.UserID).Error; err != nil {
		return models.User{}, models.PasswordReset{}, ErrInvalidOrExpiredToken
	}
	return user, reset, nil
}

func sleepEnumerationDelay() {
	time.Sleep(time.Duration(150+rand.Intn(100)) * time.Millisecond)
}
