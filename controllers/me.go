package controllers

import (
	"net/http"

	"wordnest/auth"
	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

func Me(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var stats models.UserStats
	_ = db.Where("user_id = ?", user.ID).First(&stats).Error

	c.JSON(http.StatusOK, gin.H{"user": user.Sanitized(), "stats": stats})
}

type UpdateMeRequest struct {
	DisplayName     string `json:"display_name" form:"display_name"`
	CurrentPassword string `json:"current_password" form:"current_password"`
	NewPassword     string `json:"new_password" form:"new_password"`
}

// UpdateMe changes the caller's display name and/or password. A password
// change needs the current password and logs every other device out. Roles
// and parent links are managed elsewhere.
func UpdateMe(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateMeRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DisplayName == "" && req.NewPassword == "" {
		RespondError(c, "nothing to update", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	if req.DisplayName != "" {
		if err := db.Model(&user).Update("display_name", req.DisplayName).Error; err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		user.DisplayName = req.DisplayName
	}

	if req.NewPassword != "" {
		if !auth.CheckPasswordHash(req.CurrentPassword, user.Password) {
			RespondError(c, "current password is wrong", http.StatusForbidden)
			return
		}
		if err := auth.ChangeOwnPassword(db, user, req.NewPassword); err != nil {
			RespondAuthError(c, err)
			return
		}
	}

	RespondSuccess(c, user.Sanitized())
}
