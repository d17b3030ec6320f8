package models

import "time"

// Word is a single vocabulary entry inside a WordSet.
type Word struct {
	ID         int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	WordSetID  int64      `gorm:"not null;index" json:"word_set_id" form:"word_set_id"`
	Text       string     `gorm:"not null" json:"text" form:"text"`
	Definition string     `gorm:"type:text" json:"definition" form:"definition"`
	Example    string     `gorm:"type:text" json:"example" form:"example"`
	CreatedAt  *time.Time `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

func (w Word) MissingFields() string {
	if w.WordSetID == 0 {
		return "word_set_id"
	} else if w.Text == "" {
		return "text"
	} else if w.Definition == "" {
		return "definition"
	}
	return ""
}
