package controllers

import (
	"net/http"
	"time"

	dbpkg "wordnest/db"
	"wordnest/models"
	"wordnest/tools"

	"github.com/gin-gonic/gin"
)

type LinkRequestInput struct {
	StudentUsername string `json:"student_username" form:"student_username"`
}

// CreateLinkRequest lets a parent ask to be linked to a student account.
// The student sees an in-app notification and confirms with the code, so a
// parent can never silently attach themselves to an arbitrary account.
// Route: POST /api/link-requests (parent)
func CreateLinkRequest(c *gin.Context) {
	parent, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req LinkRequestInput
	if err := c.Bind(&req); err != nil || req.StudentUsername == "" {
		RespondError(c, "student_username is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var student models.User
	if err := db.Where("username = ? AND role = ?", req.StudentUsername, models.ROLE_STUDENT).
		First(&student).Error; err != nil {
		RespondError(c, "student not found", http.StatusNotFound)
		return
	}
	if student.ParentID != nil && *student.ParentID == parent.ID {
		RespondError(c, "student is already linked to you", http.StatusConflict)
		return
	}

	code := tools.RandomString(conf.Security.VerificationCodeLen)
	exp := time.Now().AddDate(0, 0, conf.Security.LinkRequestValidDays)
	request := models.LinkRequest{
		ParentID:  parent.ID,
		StudentID: student.ID,
		Code:      code,
		ExpiresAt: &exp,
	}

	tx := db.Begin()
	if err := tx.Create(&request).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Create(&models.Notification{
		UserID:  student.ID,
		Kind:    models.NOTIFICATION_KIND_LINK_REQUEST,
		Message: parent.DisplayName + " wants to link to your account. Code: " + code,
	}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"link_request": request})
}

// AcceptLinkRequest redeems a link code. Only the student named by the
// request can accept it; the parent_id update, status flip and parent
// notification happen in one transaction.
// Route: POST /api/link-requests/:code/accept (student)
func AcceptLinkRequest(c *gin.Context) {
	student, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

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

	var request models.LinkRequest
	if err := db.Where("code = ?", code).First(&request).Error; err != nil {
		RespondError(c, "invalid code", http.StatusNotFound)
		return
	}

	if request.StudentID != student.ID {
		RespondError(c, "this code is not for your account", http.StatusForbidden)
		return
	}
	if request.ExpiresAt != nil && time.Now().After(*request.ExpiresAt) {
		_ = db.Model(&request).Update("status", models.LINK_STATUS_EXPIRED).Error
		RespondError(c, "code expired", http.StatusForbidden)
		return
	}
	if request.Status == models.LINK_STATUS_VALIDATED {
		RespondSuccess(c, gin.H{"status": "already_validated"})
		return
	}

	// The requesting account must still be a parent when the student
	// accepts; a student's parent reference may only point at one.
	var parent models.User
	if err := db.First(&parent, request.ParentID).Error; err != nil || !parent.IsParent() {
		RespondError(c, "requesting account is no longer a parent", http.StatusConflict)
		return
	}

	tx := db.Begin()
	if err := tx.Model(&request).Update("status", models.LINK_STATUS_VALIDATED).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Model(&student).Update("parent_id", parent.ID).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Create(&models.Notification{
		UserID:  parent.ID,
		Kind:    models.NOTIFICATION_KIND_LINK_ACCEPTED,
		Message: student.DisplayName + " accepted your link request.",
	}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "linked", "parent": parent.Sanitized()})
}

// GetLinkedStudents lists the students linked to the calling parent.
// Route: GET /api/students (parent)
func GetLinkedStudents(c *gin.Context) {
	parent, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var students []models.User
	if err := db.Where("parent_id = ?", parent.ID).Order("id asc").Find(&students).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	for i := range students {
		students[i] = students[i].Sanitized()
	}
	RespondSuccess(c, gin.H{"students": students})
}
