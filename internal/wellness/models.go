package wellness

import "time"

type Checkin struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	MoodScore   int       `json:"mood_score"`
	StressLevel int       `json:"stress_level"`
	Notes       string    `json:"notes,omitempty"`
	RiskLevel   string    `json:"risk_level"`
	CreatedAt   time.Time `json:"created_at"`
}

type Summary struct {
	UserID         string  `json:"user_id"`
	CheckinCount   int     `json:"checkin_count"`
	AverageMood    float64 `json:"average_mood"`
	AverageStress  float64 `json:"average_stress"`
	LatestRisk     string  `json:"latest_risk"`
	DaysSinceCheck int     `json:"days_since_check"`
}
