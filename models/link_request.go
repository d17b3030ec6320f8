package models

import "time"

/************************************************
/**** MARK: LINK REQUEST STATUS ****/
/************************************************/
const LINK_STATUS_PENDING = 0
const LINK_STATUS_VALIDATED = 1
const LINK_STATUS_EXPIRED = 2

// LinkRequest lets a parent claim a student account. The parent creates a
// request carrying a short code; the student redeems the code and the
// student's parent_id is set in the same transaction.
type LinkRequest struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	ParentID  int64      `gorm:"not null;index" json:"parent_id"`
	StudentID int64      `gorm:"not null;index" json:"student_id"`
	Code      string     `gorm:"not null;unique" json:"code"`
	Status    int64      `gorm:"default:0" json:"status"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (lr LinkRequest) MissingFields() string {
	if lr.ParentID == 0 {
		return "parent_id"
	} else if lr.StudentID == 0 {
		return "student_id"
	}
	return ""
}
