package controllers

import (
	"net/http"
	"time"

	dbpkg "wordnest/db"
	"wordnest/models"
	"wordnest/scoring"

	"github.com/gin-gonic/gin"
)

type ChallengeAnswer struct {
	WordID    int64   `json:"word_id" form:"word_id"`
	Correct   bool    `json:"correct" form:"correct"`
	TimeSpent float64 `json:"time_spent" form:"time_spent"`
}

type SubmitChallengeRequest struct {
	// Seconds allowed per question.
	TotalTime float64           `json:"total_time" form:"total_time"`
	Answers   []ChallengeAnswer `json:"answers" form:"answers"`
}

type SubmitChallengeResponse struct {
	Score     int64               `json:"score"`
	Questions int64               `json:"questions"`
	Correct   int64               `json:"correct"`
	Accuracy  float64             `json:"accuracy"`
	Grade     scoring.GradeResult `json:"grade"`
	Streak    int                 `json:"streak"`
}

// SubmitDailyChallenge scores a finished timed challenge and records it.
// One challenge per user per calendar day; a second submission answers 409.
//
// Points are computed server-side. The in-quiz streak feeds the
// multiplier: it counts consecutive correct answers before the current
// one and resets on every miss. TimeRemaining is clamped here, as
// CalculatePoints expects.
func SubmitDailyChallenge(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req SubmitChallengeRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Answers) == 0 {
		RespondError(c, "answers are required", http.StatusBadRequest)
		return
	}
	if req.TotalTime <= 0 {
		RespondError(c, "total_time must be positive", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	today := models.ChallengeDay(time.Now())

	var existing models.DailyChallenge
	if err := db.Where("user_id = ? AND challenge_date = ?", user.ID, today).
		First(&existing).Error; err == nil {
		RespondError(c, "daily challenge already played today", http.StatusConflict)
		return
	}

	var score, correct int64
	quizStreak := 0
	for _, answer := range req.Answers {
		remaining := req.TotalTime - answer.TimeSpent
		if remaining < 0 {
			remaining = 0
		}
		if remaining > req.TotalTime {
			remaining = req.TotalTime
		}

		score += int64(scoring.CalculatePoints(scoring.PointsInput{
			IsCorrect:     answer.Correct,
			TimeRemaining: remaining,
			TotalTime:     req.TotalTime,
			Streak:        quizStreak,
		}))

		if answer.Correct {
			correct++
			quizStreak++
		} else {
			quizStreak = 0
		}
	}

	questions := int64(len(req.Answers))
	challenge := models.DailyChallenge{
		UserID:        user.ID,
		ChallengeDate: today,
		Score:         score,
		Questions:     questions,
		Correct:       correct,
	}

	tx := db.Begin()
	if err := tx.Create(&challenge).Error; err != nil {
		tx.Rollback()
		// Unique (user_id, challenge_date) lost a race with a concurrent submit.
		RespondError(c, "daily challenge already played today", http.StatusConflict)
		return
	}

	var stats models.UserStats
	if err := tx.Where("user_id = ?", user.ID).First(&stats).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	updates := map[string]any{
		"challenges_played": stats.ChallengesPlayed + 1,
		"total_points":      stats.TotalPoints + score,
		"words_seen":        stats.WordsSeen + questions,
		"words_correct":     stats.WordsCorrect + correct,
	}
	if score > stats.BestScore {
		updates["best_score"] = score
	}
	if err := tx.Model(&stats).Updates(updates).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	streak, err := scoring.CalculateStreak(db, user.ID)
	if err != nil {
		streak = 0
	}

	accuracy := float64(correct) / float64(questions) * 100
	RespondSuccess(c, SubmitChallengeResponse{
		Score:     score,
		Questions: questions,
		Correct:   correct,
		Accuracy:  accuracy,
		Grade:     scoring.Grade(accuracy),
		Streak:    streak,
	})
}

// GetTodayChallenge tells the frontend whether today's challenge was
// already played, and with which result.
func GetTodayChallenge(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var challenge models.DailyChallenge
	err := db.Where("user_id = ? AND challenge_date = ?", user.ID, models.ChallengeDay(time.Now())).
		First(&challenge).Error
	if err != nil {
		RespondSuccess(c, gin.H{"played": false})
		return
	}
	RespondSuccess(c, gin.H{"played": true, "challenge": challenge})
}

func GetStreak(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	streak, err := scoring.CalculateStreak(db, user.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"streak": streak})
}

// GetChallengeHistory returns the caller's rows, newest first, capped at a
// year.
func GetChallengeHistory(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var rows []models.DailyChallenge
	if err := db.Where("user_id = ?", user.ID).
		Order("challenge_date desc").
		Limit(365).
		Find(&rows).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, rows)
}
