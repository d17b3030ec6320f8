package controllers

import (
	"net/http"

	dbpkg "wordnest/db"
	"wordnest/models"

	"github.com/gin-gonic/gin"
)

// GET /api/words/:id
func GetWordByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}
	var word models.Word
	if err := db.First(&word, id).Error; err != nil {
		RespondError(c, "word not found", http.StatusNotFound)
		return
	}
	RespondSuccess(c, gin.H{"word": word})
}

// POST /api/words (admin)
func CreateWord(c *gin.Context) {
	var word models.Word
	if err := c.Bind(&word); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := word.MissingFields(); missing != "" {
		RespondError(c, missing+" is required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var set models.WordSet
	if err := db.First(&set, word.WordSetID).Error; err != nil {
		RespondError(c, "word set not found", http.StatusNotFound)
		return
	}

	if err := db.Create(&word).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"word": word})
}

// PUT /api/words/:id (admin)
func UpdateWord(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	var body models.Word
	if err := c.Bind(&body); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var word models.Word
	if err := db.First(&word, id).Error; err != nil {
		RespondError(c, "word not found", http.StatusNotFound)
		return
	}

	if body.Text != "" {
		word.Text = body.Text
	}
	if body.Definition != "" {
		word.Definition = body.Definition
	}
	word.Example = body.Example

	if err := db.Save(&word).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"word": word})
}

// DELETE /api/words/:id (admin)
func DeleteWord(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var word models.Word
	if err := db.First(&word, id).Error; err != nil {
		RespondError(c, "word not found", http.StatusNotFound)
		return
	}

	if err := db.Delete(&word).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, true)
}
