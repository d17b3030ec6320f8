package controllers

import (
	"net/http"

	"wordnest/auth"
	dbpkg "wordnest/db"

	"github.com/gin-gonic/gin"
)

// ForgotPassword starts the email reset flow.
// Always answers success-shaped (anti enumeration); the only error that
// surfaces is the reset mail itself failing to send.
// Route: POST /api/password/forgot
func ForgotPassword(c *gin.Context) {
	type Request struct {
		Email string `json:"email" form:"email"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondSuccess(c, true)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondSuccess(c, true)
		return
	}

	if err := auth.RequestPasswordReset(db, mailer, req.Email); err != nil {
		RespondError(c, "could not send reset email", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, true)
}

// CheckResetToken answers whether a reset token would be accepted, without
// consuming it. The frontend uses it to decide whether to show the form.
// Route: POST /api/password/check-token
func CheckResetToken(c *gin.Context) {
	type Request struct {
		Token string `json:"token" form:"token"`
	}

	var req Request
	if err := c.Bind(&req); err != nil || req.Token == "" {
		RespondSuccess(c, false)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondSuccess(c, false)
		return
	}

	RespondSuccess(c, auth.ValidateResetToken(db, req.Token))
}

// ResetPassword consumes a "selector.validator" token and sets the new
// password. All of the user's refresh tokens are revoked in the same
// transaction.
// Route: POST /api/password/reset
func ResetPassword(c *gin.Context) {
	type Request struct {
		Token       string `json:"token" form:"token"`
		NewPassword string `json:"new_password" form:"new_password"`
	}

	var req Request
	if err := c.Bind(&req); err != nil {
		RespondError(c, "token and new_password are required", http.StatusBadRequest)
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		RespondError(c, "token and new_password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := auth.ResetPassword(db, mailer, req.Token, req.NewPassword); err != nil {
		RespondAuthError(c, err)
		return
	}
	RespondSuccess(c, true)
}

// ResetUserPassword is the assisted reset for admins and parents.
// Route: POST /api/users/:id/password
func ResetUserPassword(c *gin.Context) {
	requester, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	targetID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	type Request struct {
		NewPassword string `json:"new_password" form:"new_password"`
	}
	var req Request
	if err := c.Bind(&req); err != nil || req.NewPassword == "" {
		RespondError(c, "new_password is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := auth.ResetUserPassword(db, requester, targetID, req.NewPassword); err != nil {
		RespondAuthError(c, err)
		return
	}
	RespondSuccess(c, true)
}
