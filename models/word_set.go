package models

import "time"

// WordSet groups vocabulary words into a study unit (e.g. "Animals",
// "School", "Grade 3 - Week 2").
type WordSet struct {
	ID          int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Key         string     `gorm:"not null;unique" json:"key" form:"key"` // ex: animals, school, g3-week2
	Name        string     `gorm:"not null" json:"name" form:"name"`
	Description string     `gorm:"type:text" json:"description" form:"description"`
	Level       int        `gorm:"default:1" json:"level" form:"level"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (ws WordSet) MissingFields() string {
	if ws.Key == "" {
		return "key"
	} else if ws.Name == "" {
		return "name"
	}
	return ""
}
