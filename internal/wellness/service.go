package wellness

import (
	"context"
	"encoding/json"
	"time"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/db"
	"github.com/maheshh3003/SAFE/internal/stream"

	"github.com/google/uuid"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
	now func() time.Time
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub, now: time.Now}
}

// riskFromScores maps a check-in to a risk band. Low mood and high
// stress both pull the band down.
func riskFromScores(mood, stress int) string {
	score := mood - stress/2
	switch {
	case score >= 7:
		return "low"
	case score >= 5:
		return "medium"
	case score >= 3:
		return "high"
	default:
		return "critical"
	}
}

// RecordCheckin stores a wellness check, refreshes the student profile's
// score and risk band, and broadcasts the check-in on the user's topic.
func (s *Service) RecordCheckin(ctx context.Context, input Checkin) (Checkin, error) {
	if input.UserID == "" {
		return Checkin{}, apperr.Validation("user id is required")
	}
	if input.MoodScore < 1 || input.MoodScore > 10 || input.StressLevel < 1 || input.StressLevel > 10 {
		return Checkin{}, apperr.Validation("mood and stress scores must be between 1 and 10")
	}

	input.ID = uuid.NewString()
	input.RiskLevel = riskFromScores(input.MoodScore, input.StressLevel)

	row := s.db.QueryRow(ctx, `
		INSERT INTO wellness_checks (id, user_id, mood_score, stress_level, notes, risk_level)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),$6)
		RETURNING created_at
	`, input.ID, input.UserID, input.MoodScore, input.StressLevel, input.Notes, input.RiskLevel)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Checkin{}, apperr.Persistence("failed to record check-in", err)
	}

	_, err := s.db.Exec(ctx, `
		UPDATE profiles
		SET wellness_score=$2, last_wellness_check=$3, risk_level=$4
		WHERE id=$1
	`, input.UserID, float64(input.MoodScore), input.CreatedAt, input.RiskLevel)
	if err != nil {
		return Checkin{}, apperr.Persistence("failed to update profile", err)
	}

	if s.hub != nil {
		payload, _ := json.Marshal(input)
		s.hub.Broadcast("wellness:"+input.UserID, payload)
	}

	return input, nil
}

// Summary aggregates the user's check-ins from the last 30 days.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	if userID == "" {
		return Summary{}, apperr.Validation("user id is required")
	}

	since := s.now().AddDate(0, 0, -30)
	rows, err := s.db.Query(ctx, `
		SELECT mood_score, stress_level, risk_level, created_at
		FROM wellness_checks
		WHERE user_id=$1 AND created_at >= $2
		ORDER BY created_at DESC
	`, userID, since)
	if err != nil {
		return Summary{}, apperr.Persistence("failed to fetch check-ins", err)
	}
	defer rows.Close()

	summary := Summary{UserID: userID, DaysSinceCheck: -1}
	var moodTotal, stressTotal int
	for rows.Next() {
		var mood, stress int
		var risk string
		var createdAt time.Time
		if err := rows.Scan(&mood, &stress, &risk, &createdAt); err != nil {
			return Summary{}, apperr.Persistence("failed to scan check-in", err)
		}
		if summary.CheckinCount == 0 {
			summary.LatestRisk = risk
			summary.DaysSinceCheck = int(s.now().Sub(createdAt).Hours() / 24)
		}
		summary.CheckinCount++
		moodTotal += mood
		stressTotal += stress
	}

	if summary.CheckinCount > 0 {
		summary.AverageMood = float64(moodTotal) / float64(summary.CheckinCount)
		summary.AverageStress = float64(stressTotal) / float64(summary.CheckinCount)
	}
	return summary, nil
}
