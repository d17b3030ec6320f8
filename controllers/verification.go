package controllers

import (
	"net/http"
	"time"

	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

// VerifyEmailByCode redeems a verification code and marks the account's
// email verified.
// Route: POST /api/verify-email/:code
func VerifyEmailByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		RespondError(c, "code is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var verification models.EmailVerification
	if err := db.Where("code = ?", code).First(&verification).Error; err != nil {
		RespondError(c, "invalid code", http.StatusNotFound)
		return
	}

	if verification.ExpiresAt != nil && time.Now().After(*verification.ExpiresAt) {
		_ = db.Model(&verification).Update("status", models.VERIFICATION_STATUS_EXPIRED).Error
		RespondError(c, "code expired", http.StatusForbidden)
		return
	}
	if verification.Status == models.VERIFICATION_STATUS_VALIDATED {
		RespondSuccess(c, gin.H{"status": "already_validated"})
		return
	}

	var user models.User
	if err := db.First(&user, verification.UserID).Error; err != nil {
		RespondError(c, "user not found", http.StatusNotFound)
		return
	}

	tx := db.Begin()
	if err := tx.Model(&verification).Update("status", models.VERIFICATION_STATUS_VALIDATED).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Model(&user).Update("email_verified", true).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "verified", "user": user.Sanitized()})
}

// ResendVerificationCode voids pending codes and mails a fresh one.
func ResendVerificationCode(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	if user.Email == "" {
		RespondError(c, "account has no email", http.StatusBadRequest)
		return
	}
	if user.EmailVerified {
		RespondSuccess(c, gin.H{"status": "already_validated"})
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	_ = db.Where("user_id = ? AND status = ?", user.ID, models.VERIFICATION_STATUS_PENDING).
		Delete(&models.EmailVerification{}).Error
	sendVerificationCode(db, user)

	RespondSuccess(c, true)
}
