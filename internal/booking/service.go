package booking

import (
	"context"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Create gates booking creation on the slot's availability flag. The
// check and the insert are two separate statements: the slot itself is
// flipped by a database trigger after the insert, so two concurrent
// requests can both pass the check. That race belongs to the storage
// layer's trigger design and is not resolved here.
func (s *Service) Create(ctx context.Context, input CreateInput) (Booking, error) {
	if input.UserID == "" || input.TherapistID == "" || input.SessionTypeID == "" || input.TimeSlotID == "" {
		return Booking{}, apperr.Validation("user_id, therapist_id, session_type_id and time_slot_id are required")
	}

	var available bool
	row := s.db.QueryRow(ctx, `
		SELECT is_available FROM time_slots WHERE id=$1
	`, input.TimeSlotID)
	if err := row.Scan(&available); err != nil || !available {
		return Booking{}, apperr.Conflict("time slot is no longer available")
	}

	booking := Booking{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		TherapistID:   input.TherapistID,
		SessionTypeID: input.SessionTypeID,
		TimeSlotID:    input.TimeSlotID,
		SessionDate:   input.SessionDate,
		SessionTime:   input.SessionTime,
		SessionType:   input.SessionType,
		TotalAmount:   input.TotalAmount,
		Notes:         input.Notes,
		Status:        "confirmed",
		PaymentStatus: "pending",
	}

	insertRow := s.db.QueryRow(ctx, `
		INSERT INTO bookings (id, user_id, therapist_id, session_type_id, time_slot_id, session_date, session_time, session_type, total_amount, notes, status, payment_status)
		VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),NULLIF($7,''),NULLIF($8,''),$9,NULLIF($10,''),$11,$12)
		RETURNING created_at
	`, booking.ID, booking.UserID, booking.TherapistID, booking.SessionTypeID, booking.TimeSlotID,
		booking.SessionDate, booking.SessionTime, booking.SessionType, booking.TotalAmount, booking.Notes,
		booking.Status, booking.PaymentStatus)
	if err := insertRow.Scan(&booking.CreatedAt); err != nil {
		return Booking{}, apperr.Persistence("failed to create booking", err)
	}

	return booking, nil
}

// ListForUser returns the user's bookings newest-first with therapist and
// session-type display fields joined in.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Booking, error) {
	if userID == "" {
		return nil, apperr.Validation("user_id is required")
	}

	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.user_id, b.therapist_id, b.session_type_id, b.time_slot_id,
		       COALESCE(b.session_date::text,''), COALESCE(b.session_time::text,''), COALESCE(b.session_type,''),
		       COALESCE(b.total_amount,0), COALESCE(b.notes,''), b.status, b.payment_status, b.created_at,
		       t.full_name, COALESCE(t.specialization,'{}'), COALESCE(t.profile_image_url,''),
		       st.name, st.duration_minutes
		FROM bookings b
		JOIN therapists t ON t.id = b.therapist_id
		JOIN session_types st ON st.id = b.session_type_id
		WHERE b.user_id=$1
		ORDER BY b.created_at DESC
	`, userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch bookings", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.TherapistID, &b.SessionTypeID, &b.TimeSlotID,
			&b.SessionDate, &b.SessionTime, &b.SessionType,
			&b.TotalAmount, &b.Notes, &b.Status, &b.PaymentStatus, &b.CreatedAt,
			&b.TherapistName, &b.Specialization, &b.TherapistImageURL,
			&b.SessionTypeName, &b.DurationMinutes); err != nil {
			return nil, apperr.Persistence("failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (s *Service) SessionTypes(ctx context.Context) ([]SessionType, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, COALESCE(description,''), duration_minutes, price
		FROM session_types
		ORDER BY name
	`)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch session types", err)
	}
	defer rows.Close()

	var types []SessionType
	for rows.Next() {
		var st SessionType
		if err := rows.Scan(&st.ID, &st.Name, &st.Description, &st.DurationMinutes, &st.Price); err != nil {
			return nil, apperr.Persistence("failed to scan session type", err)
		}
		types = append(types, st)
	}
	return types, nil
}
