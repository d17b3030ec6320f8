package models

import "time"

// DailyChallenge records one finished timed challenge. At most one row per
// user per calendar day (unique index on user_id + challenge_date).
// ChallengeDate is stored as "YYYY-MM-DD" in the server's local day so the
// streak walk can compare calendar days directly.
type DailyChallenge struct {
	ID            int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID        int64      `gorm:"not null;unique_index:idx_user_challenge_date" json:"user_id"`
	ChallengeDate string     `gorm:"not null;unique_index:idx_user_challenge_date" json:"challenge_date"`
	Score         int64      `gorm:"not null;default:0" json:"score"`
	Questions     int64      `gorm:"not null;default:0" json:"questions"`
	Correct       int64      `gorm:"not null;default:0" json:"correct"`
	CreatedAt     *time.Time `json:"created_at"`
}

const ChallengeDateLayout = "2006-01-02"

// ChallengeDay normalizes a timestamp to its local calendar day string.
func ChallengeDay(t time.Time) string {
	return t.Local().Format(ChallengeDateLayout)
}
