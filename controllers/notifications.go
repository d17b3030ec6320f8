package controllers

import (
	"net/http"
	"time"

	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

// GET /api/notifications
func GetNotifications(c *gin.Context) {
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

	var notifications []models.Notification
	if err := db.Where("user_id = ?", user.ID).
		Order("id desc").
		Limit(100).
		Find(&notifications).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"notifications": notifications})
}

// POST /api/notifications/:id/read
func MarkNotificationRead(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var notification models.Notification
	if err := db.Where("id = ? AND user_id = ?", id, user.ID).First(&notification).Error; err != nil {
		RespondError(c, "notification not found", http.StatusNotFound)
		return
	}

	if notification.ReadAt == nil {
		now := time.Now()
		if err := db.Model(&notification).Update("read_at", &now).Error; err != nil {
			RespondError(c, err.Error(), http.StatusBadRequest)
			return
		}
		notification.ReadAt = &now
	}
	RespondSuccess(c, gin.H{"notification": notification})
}
