package models

import "time"

const NOTIFICATION_KIND_LINK_REQUEST = "link_request"
const NOTIFICATION_KIND_LINK_ACCEPTED = "link_accepted"
const NOTIFICATION_KIND_PASSWORD_CHANGED = "password_changed"

// Notification is an in-app message shown on the dashboards (link
// requests, password changes). Delivery by email is handled separately and
// best-effort.
type Notification struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64      `gorm:"not null;index" json:"user_id"`
	Kind      string     `gorm:"not null" json:"kind"`
	Message   string     `gorm:"type:text" json:"message"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt *time.Time `json:"created_at"`
}
