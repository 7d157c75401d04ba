package therapist

import "time"

type Therapist struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Specialization  []string   `json:"specialization"`
	ExperienceYears int        `json:"experience_years"`
	Bio             string     `json:"bio"`
	ProfileImageURL string     `json:"profile_image_url"`
	Languages       []string   `json:"languages"`
	Rating          float64    `json:"rating"`
	TotalReviews    int        `json:"total_reviews"`
	ConsultationFee float64    `json:"consultation_fee"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	AvailableSlots  []TimeSlot `json:"available_slots,omitempty"`
}

type TimeSlot struct {
	ID          string `json:"id"`
	TherapistID string `json:"-"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}
