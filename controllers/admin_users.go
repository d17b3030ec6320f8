package controllers

import (
	"net/http"

	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

// GetUsers lists all accounts (admin).
func GetUsers(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var users []models.User
	if err := db.Order("id asc").Find(&users).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	for i := range users {
		users[i] = users[i].Sanitized()
	}
	RespondSuccess(c, users)
}

type UpdateRoleRequest struct {
	Role string `json:"role" form:"role"`
}

// UpdateUserRole is the only way a role ever changes (admin). Demoting a
// parent clears the parent_id of its linked students in the same
// transaction so no student ends up pointing at a non-parent.
func UpdateUserRole(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil || !models.IsValidRole(req.Role) {
		RespondError(c, "role must be student, parent or admin", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, "user not found", http.StatusNotFound)
		return
	}

	tx := db.Begin()
	if user.Role == models.ROLE_PARENT && req.Role != models.ROLE_PARENT {
		if err := tx.Model(&models.User{}).
			Where("parent_id = ?", user.ID).
			Update("parent_id", nil).Error; err != nil {
			tx.Rollback()
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := tx.Model(&user).Update("role", req.Role).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user.Role = req.Role
	RespondSuccess(c, user.Sanitized())
}

// DeleteUser removes an account and everything it owns (admin). Tokens,
// stats, challenges, notifications, link requests and verification codes
// go in the same transaction; sqlite has no FK cascade here so the app
// does it.
func DeleteUser(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var user models.User
	if err := db.First(&user, id).Error; err != nil {
		RespondError(c, "user not found", http.StatusNotFound)
		return
	}

	tx := db.Begin()
	for _, del := range []error{
		tx.Where("user_id = ?", user.ID).Delete(&models.RefreshToken{}).Error,
		tx.Where("user_id = ?", user.ID).Delete(&models.PasswordReset{}).Error,
		tx.Where("user_id = ?", user.ID).Delete(&models.UserStats{}).Error,
		tx.Where("user_id = ?", user.ID).Delete(&models.DailyChallenge{}).Error,
		tx.Where("user_id = ?", user.ID).Delete(&models.Notification{}).Error,
		tx.Where("user_id = ?", user.ID).Delete(&models.EmailVerification{}).Error,
		tx.Where("parent_id = ? OR student_id = ?", user.ID, user.ID).Delete(&models.LinkRequest{}).Error,
		tx.Model(&models.User{}).Where("parent_id = ?", user.ID).Update("parent_id", nil).Error,
		tx.Delete(&user).Error,
	} {
		if del != nil {
			tx.Rollback()
			RespondError(c, del.Error(), http.StatusBadRequest)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, true)
}
