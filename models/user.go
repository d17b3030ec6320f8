package models

import (
	"time"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const ROLE_STUDENT = "student"
const ROLE_PARENT = "parent"
const ROLE_ADMIN = "admin"

// User represents an account in the system. Students may have a ParentID
// pointing at a user whose role is parent; parents and admins never do.
type User struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Username      string     `gorm:"not null;unique" json:"username" form:"username"`
	Password      string     `gorm:"not null" json:"password,omitempty" form:"password"`
	DisplayName   string     `gorm:"not null" json:"display_name" form:"display_name"`
	Email         string     `json:"email" form:"email"`
	EmailVerified bool       `gorm:"not null;default:false" json:"email_verified"`
	Role          string     `gorm:"not null;default:'student'" json:"role"`
	ParentID      *int64     `gorm:"index" json:"parent_id"`
	CreatedAt     *time.Time `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

func IsValidRole(role string) bool {
	switch role {
	case ROLE_STUDENT, ROLE_PARENT, ROLE_ADMIN:
		return true
	}
	return false
}

func (user User) IsStudent() bool { return user.Role == ROLE_STUDENT }
func (user User) IsParent() bool  { return user.Role == ROLE_PARENT }
func (user User) IsAdmin() bool   { return user.Role == ROLE_ADMIN }

// Sanitized strips the password hash before the record is serialized.
func (user User) Sanitized() User {
	user.Password = ""
	return user
}

func (user User) MissingFields() string {
	if user.Username == "" {
		return "username"
	} else if user.Password == "" {
		return "password"
	}
	return ""
}

// UserStats keeps one aggregate row per user, created zero-valued at
// registration time.
type UserStats struct {
	ID               int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID           int64      `gorm:"not null;unique_index" json:"user_id"`
	ChallengesPlayed int64      `gorm:"not null;default:0" json:"challenges_played"`
	TotalPoints      int64      `gorm:"not null;default:0" json:"total_points"`
	BestScore        int64      `gorm:"not null;default:0" json:"best_score"`
	WordsSeen        int64      `gorm:"not null;default:0" json:"words_seen"`
	WordsCorrect     int64      `gorm:"not null;default:0" json:"words_correct"`
	CreatedAt        *time.Time `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
}
