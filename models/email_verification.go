package models

import "time"

/************************************************
/**** MARK: EMAIL VERIFICATION STATUS ****/
/************************************************/
const VERIFICATION_STATUS_PENDING = 0
const VERIFICATION_STATUS_VALIDATED = 1
const VERIFICATION_STATUS_EXPIRED = 2

// EmailVerification holds the short code mailed to parents at
// registration. Redeeming it flips User.EmailVerified.
type EmailVerification struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Code      string     `gorm:"not null;unique" json:"code"`
	Status    int64      `gorm:"default:0" json:"status"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
