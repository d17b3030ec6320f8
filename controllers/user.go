package controllers

import (
	"net/http"
	"time"

	"wordnest/auth"
	dbpkg "wordnest/db"
	"wordnest/models"
	"wordnest/tools"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
)

type RegisterRequest struct {
	Username    string `json:"username" form:"username"`
	Password    string `json:"password" form:"password"`
	DisplayName string `json:"display_name" form:"display_name"`
	Email       string `json:"email" form:"email"`
}

// RegisterStudent creates a student account. Email is optional for
// students; without one the account simply can't use the email reset flow.
func RegisterStudent(c *gin.Context) {
	registerWithRole(c, models.ROLE_STUDENT)
}

// RegisterParent creates a parent account. Email is mandatory (reset links
// and link notifications go there) and a verification code is mailed out.
func RegisterParent(c *gin.Context) {
	registerWithRole(c, models.ROLE_PARENT)
}

func registerWithRole(c *gin.Context, role string) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		RespondError(c, "username and password are required", http.StatusBadRequest)
		return
	}
	if role == models.ROLE_PARENT && req.Email == "" {
		RespondError(c, "email is required for parent accounts", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	user, pair, err := auth.Register(db, auth.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Role:        role,
	})
	if err != nil {
		RespondAuthError(c, err)
		return
	}

	if role == models.ROLE_PARENT {
		sendVerificationCode(db, user)
	}

	c.JSON(http.StatusCreated, LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Sanitized(),
	})
}

// sendVerificationCode issues a verification code row and mails it.
// Best-effort: registration already succeeded, a mail failure only means
// the user has to ask for a resend.
func sendVerificationCode(db *gorm.DB, user models.User) {
	code := tools.RandomString(conf.Security.VerificationCodeLen)
	exp := time.Now().Add(48 * time.Hour)
	verification := models.EmailVerification{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: &exp,
	}
	if err := db.Create(&verification).Error; err != nil {
		return
	}
	go func(email, code string) {
		_ = mailer.SendVerificationCode(email, code)
	}(user.Email, code)
}
