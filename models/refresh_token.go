package models

import "time"

// RefreshToken is one long-lived credential row. Only the SHA-512 hash of
// the opaque token is stored, never the token itself.
//
// Rows are never updated in place: rotation deletes the used row and
// inserts a fresh one, logout and password reset delete, the cleanup
// worker deletes expired rows.
type RefreshToken struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	TokenHash string     `gorm:"not null;unique_index" json:"-"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt *time.Time `json:"created_at"`
}

func (rt RefreshToken) IsExpired(now time.Time) bool {
	if rt.ExpiresAt == nil {
		return false
	}
	return now.After(*rt.ExpiresAt)
}
