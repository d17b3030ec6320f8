package controllers

import (
	"net/http"

	"wordnest/auth"
	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         models.User `json:"user"`
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		RespondError(c, "username and password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	user, pair, err := auth.Login(db, req.Username, req.Password)
	if err != nil {
		RespondAuthError(c, err)
		return
	}

	RespondSuccess(c, LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Sanitized(),
	})
}
