// Package scoring holds the point formula and streak logic for the timed
// daily challenge.
package scoring

import "math"

const basePoints = 100
const maxSpeedBonus = 50
const streakStep = 0.1
const maxMultiplier = 2.0

// PointsInput describes one answered question. Streak is the running
// streak of correct answers *before* this one. TimeRemaining must already
// be clamped to [0, TotalTime] by the caller; CalculatePoints does not
// clamp.
type PointsInput struct {
	IsCorrect     bool
	TimeRemaining float64
	TotalTime     float64
	Streak        int
}

// CalculatePoints computes the score for a single answer:
//
//	0 when incorrect, otherwise
//	round((100 + round(timeRemaining/totalTime*50)) * min(1+streak*0.1, 2.0))
//
// A streak of 0 gives multiplier 1.0; a streak of 10 or more saturates at
// 2.0.
func CalculatePoints(in PointsInput) int {
	if !in.IsCorrect {
		return 0
	}

	speedBonus := 0.0
	if in.TotalTime > 0 {
		speedBonus = math.Round(in.TimeRemaining / in.TotalTime * maxSpeedBonus)
	}

	multiplier := 1 + float64(in.Streak)*streakStep
	if multiplier > maxMultiplier {
		multiplier = maxMultiplier
	}

	return int(math.Round((basePoints + speedBonus) * multiplier))
}

// GradeResult pairs the letter grade with the tag the frontend uses to
// color it.
type GradeResult struct {
	Grade string `json:"grade"`
	Color string `json:"color"`
}

// Grade maps an accuracy percentage to a letter grade. Total function, no
// error cases.
func Grade(percentage float64) GradeResult {
	switch {
	case percentage >= 90:
		return GradeResult{Grade: "A+", Color: "green"}
	case percentage >= 80:
		return GradeResult{Grade: "A", Color: "green"}
	case percentage >= 70:
		return GradeResult{Grade: "B", Color: "lime"}
	case percentage >= 60:
		return GradeResult{Grade: "C", Color: "yellow"}
	case percentage >= 50:
		return GradeResult{Grade: "D", Color: "orange"}
	default:
		return GradeResult{Grade: "F", Color: "red"}
	}
}
