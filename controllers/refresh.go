package controllers

import (
	"net/http"

	"wordnest/auth"
	dbpkg "wordnest/db"

	"github.com/gin-gonic/gin"
)

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

// Refresh trades a valid refresh token for a new access+refresh pair.
// The presented token is rotated out: a second call with it fails.
func Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.RefreshToken == "" {
		RespondError(c, "refresh_token is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	pair, err := auth.Refresh(db, req.RefreshToken)
	if err != nil {
		RespondAuthError(c, err)
		return
	}

	RespondSuccess(c, pair)
}

// Logout deletes the refresh token row if it exists. Calling it twice with
// the same token is fine.
func Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.RefreshToken == "" {
		RespondError(c, "refresh_token is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if err := auth.Logout(db, req.RefreshToken); err != nil {
		RespondError(c, "logout failed", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, true)
}
