package scoring

import (
	"time"

	"wordnest/models"

	"github.com/jinzhu/gorm"
)

// How far back the streak walk looks. A year of consecutive days is the
// cap, matching what the history endpoints expose.
const streakLookbackDays = 365

// CalculateStreak counts consecutive calendar days with a completed daily
// challenge, walking backward over the user's most recent rows.
//
// Today gets a one-day grace window: if the user hasn't played yet today
// the count anchors at yesterday instead of breaking. Two consecutive
// missed days break the streak (result 0).
func CalculateStreak(db *gorm.DB, userID int64) (int, error) {
	return calculateStreakAt(db, userID, time.Now())
}

func calculateStreakAt(db *gorm.DB, userID int64, now time.Time) (int, error) {
	var rows []models.DailyChallenge
	if err := db.
		Where("user_id = ?", userID).
		Order("challenge_date desc").
		Limit(streakLookbackDays).
		Find(&rows).Error; err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	played := make(map[string]bool, len(rows))
	for _, row := range rows {
		played[row.ChallengeDate] = true
	}

	day := now
	if !played[models.ChallengeDay(day)] {
		day = day.AddDate(0, 0, -1)
		if !played[models.ChallengeDay(day)] {
			return 0, nil
		}
	}

	streak := 0
	for streak < len(rows) && played[models.ChallengeDay(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}
