package booking

import "time"

type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	TherapistID   string    `json:"therapist_id"`
	SessionTypeID string    `json:"session_type_id"`
	TimeSlotID    string    `json:"time_slot_id"`
	SessionDate   string    `json:"session_date,omitempty"`
	SessionTime   string    `json:"session_time,omitempty"`
	SessionType   string    `json:"session_type,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	Notes         string    `json:"notes,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`

	// joined display fields, populated on list
	TherapistName     string   `json:"therapist_name,omitempty"`
	Specialization    []string `json:"therapist_specialization,omitempty"`
	TherapistImageURL string   `json:"therapist_image_url,omitempty"`
	SessionTypeName   string   `json:"session_type_name,omitempty"`
	DurationMinutes   int      `json:"duration_minutes,omitempty"`
}

type CreateInput struct {
	UserID        string  `json:"user_id"`
	TherapistID   string  `json:"therapist_id"`
	SessionTypeID string  `json:"session_type_id"`
	TimeSlotID    string  `json:"time_slot_id"`
	SessionDate   string  `json:"session_date"`
	SessionTime   string  `json:"session_time"`
	SessionType   string  `json:"session_type"`
	TotalAmount   float64 `json:"total_amount"`
	Notes         string  `json:"notes"`
}

type SessionType struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
}
