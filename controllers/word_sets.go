package controllers

import (
	"net/http"

	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

// GET /api/word-sets
func GetWordSets(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	var sets []models.WordSet
	if err := db.Order("level asc, id asc").Find(&sets).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"word_sets": sets})
}

// GET /api/word-sets/:id
func GetWordSetByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	var set models.WordSet
	if err := db.First(&set, id).Error; err != nil {
		RespondError(c, "word set not found", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"word_set": set})
}

// GET /api/word-sets/:id/words
func GetWordsBySetID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	var words []models.Word
	if err := db.Where("word_set_id = ?", id).Order("id asc").Find(&words).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"words": words})
}

// POST /api/word-sets (admin)
func CreateWordSet(c *gin.Context) {
	var set models.WordSet
	if err := c.Bind(&set); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := set.MissingFields(); missing != "" {
		RespondError(c, missing+" is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	if err := db.Create(&set).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"word_set": set})
}

// PUT /api/word-sets/:id (admin)
func UpdateWordSet(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var body models.WordSet
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var set models.WordSet
	if err := db.First(&set, id).Error; err != nil {
		RespondError(c, "word set not found", http.StatusNotFound)
		return
	}

	if body.Key != "" {
		set.Key = body.Key
	}
	if body.Name != "" {
		set.Name = body.Name
	}
	if body.Level > 0 {
		set.Level = body.Level
	}
	set.Description = body.Description

	if err := db.Save(&set).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"word_set": set})
}

// DELETE /api/word-sets/:id (admin) - removes the set and its words.
func DeleteWordSet(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var set models.WordSet
	if err := db.First(&set, id).Error; err != nil {
		RespondError(c, "word set not found", http.StatusNotFound)
		return
	}

	tx := db.Begin()
	if err := tx.Where("word_set_id = ?", set.ID).Delete(&models.Word{}).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Delete(&set).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, true)
}
