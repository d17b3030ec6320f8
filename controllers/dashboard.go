package controllers

import (
	"net/http"
	"time"

	dbpkg "wordnest/db"
	"wordnest/models"
	"wordnest/scoring"

	"github.com/gin-gonic/gin"
)

type dailyScoreRow struct {
	Day   string `json:"day"`
	Score int64  `json:"score"`
}

// GetStudentDashboard returns a student's daily challenge series plus
// stats and streak. Parents see only their linked students; admins see
// anyone.
// Route: GET /api/students/:id/dashboard?from=YYYY-MM-DD&to=YYYY-MM-DD
func GetStudentDashboard(c *gin.Context) {
	viewer, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	studentID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var student models.User
	if err := db.First(&student, studentID).Error; err != nil {
		RespondError(c, "student not found", http.StatusNotFound)
		return
	}

	switch viewer.Role {
	case models.ROLE_ADMIN:
		// sees everyone
	case models.ROLE_PARENT:
		if student.ParentID == nil || *student.ParentID != viewer.ID {
			RespondError(c, "you can only view your linked students", http.StatusForbidden)
			return
		}
	default:
		if viewer.ID != student.ID {
			RespondError(c, "forbidden", http.StatusForbidden)
			return
		}
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return
	}

	var rows []models.DailyChallenge
	if err := db.
		Where("user_id = ? AND challenge_date >= ? AND challenge_date <= ?",
			student.ID, from.Format(models.ChallengeDateLayout), to.Format(models.ChallengeDateLayout)).
		Order("challenge_date asc").
		Find(&rows).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var stats models.UserStats
	_ = db.Where("user_id = ?", student.ID).First(&stats).Error

	streak, err := scoring.CalculateStreak(db, student.ID)
	if err != nil {
		streak = 0
	}

	RespondSuccess(c, gin.H{
		"student": student.Sanitized(),
		"from":    from.Format(models.ChallengeDateLayout),
		"to":      to.Format(models.ChallengeDateLayout),
		"series":  fillDailySeries(from, to, rows),
		"stats":   stats,
		"streak":  streak,
	})
}

// parseDateRange reads from/to query params, defaulting to the last 7
// days.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -6)
	to := now

	if v := c.Query("from"); v != "" {
		t, err := time.ParseInLocation(models.ChallengeDateLayout, v, time.Local)
		if err != nil {
			RespondError(c, "from must be YYYY-MM-DD", http.StatusBadRequest)
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.ParseInLocation(models.ChallengeDateLayout, v, time.Local)
		if err != nil {
			RespondError(c, "to must be YYYY-MM-DD", http.StatusBadRequest)
			return time.Time{}, time.Time{}, false
		}
		to = t
	}
	if to.Before(from) {
		RespondError(c, "to must not be before from", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// fillDailySeries expands the sparse challenge rows into one entry per
// day, with 0 for days without a challenge.
func fillDailySeries(from, to time.Time, rows []models.DailyChallenge) []dailyScoreRow {
	byDay := make(map[string]int64, len(rows))
	for _, row := range rows {
		byDay[row.ChallengeDate] = row.Score
	}

	var series []dailyScoreRow
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := day.Format(models.ChallengeDateLayout)
		series = append(series, dailyScoreRow{Day: key, Score: byDay[key]})
	}
	return series
}
