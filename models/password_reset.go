package models

import "time"

// PasswordReset is a temporary token for the "forgot my password" flow.
//
// TokenHash holds "selector:validatorHash": the selector is a random
// plaintext lookup key, the validator is bcrypt-hashed before storage, so
// the row never contains a directly reusable secret. The link mailed to
// the user carries "selector.validator".
type PasswordReset struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	TokenHash string     `gorm:"not null;index" json:"-"`
	ExpiresAt *time.Time `json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
	CreatedAt *time.Time `json:"created_at"`
}
