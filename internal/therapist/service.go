package therapist

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

// List returns active therapists best-rated first, each carrying its
// upcoming available slots so the booking page renders from one call.
func (s *Service) List(ctx context.Context) ([]Therapist, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, full_name, email, COALESCE(specialization,'{}'), COALESCE(experience_years,0),
		       COALESCE(bio,''), COALESCE(profile_image_url,''), COALESCE(languages,'{}'),
		       COALESCE(rating,0), COALESCE(total_reviews,0), COALESCE(consultation_fee,0),
		       is_active, created_at
		FROM therapists
		WHERE is_active = true
		ORDER BY rating DESC
	`)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch therapists", err)
	}
	defer rows.Close()

	var therapists []Therapist
	var ids []string
	for rows.Next() {
		var t Therapist
		if err := rows.Scan(&t.ID, &t.FullName, &t.Email, &t.Specialization, &t.ExperienceYears,
			&t.Bio, &t.ProfileImageURL, &t.Languages,
			&t.Rating, &t.TotalReviews, &t.ConsultationFee,
			&t.IsActive, &t.CreatedAt); err != nil {
			return nil, apperr.Persistence("failed to scan therapist", err)
		}
		ids = append(ids, t.ID)
		therapists = append(therapists, t)
	}

	slots, err := s.loadAvailableSlots(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range therapists {
		therapists[i].AvailableSlots = slots[therapists[i].ID]
	}
	return therapists, nil
}

func (s *Service) Get(ctx context.Context, id string) (Therapist, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, full_name, email, COALESCE(specialization,'{}'), COALESCE(experience_years,0),
		       COALESCE(bio,''), COALESCE(profile_image_url,''), COALESCE(languages,'{}'),
		       COALESCE(rating,0), COALESCE(total_reviews,0), COALESCE(consultation_fee,0),
		       is_active, created_at
		FROM therapists WHERE id=$1
	`, id)
	var t Therapist
	if err := row.Scan(&t.ID, &t.FullName, &t.Email, &t.Specialization, &t.ExperienceYears,
		&t.Bio, &t.ProfileImageURL, &t.Languages,
		&t.Rating, &t.TotalReviews, &t.ConsultationFee,
		&t.IsActive, &t.CreatedAt); err != nil {
		return Therapist{}, apperr.NotFound("therapist not found")
	}
	return t, nil
}

func (s *Service) Create(ctx context.Context, input Therapist) (Therapist, error) {
	if input.FullName == "" || input.Email == "" {
		return Therapist{}, apperr.Validation("full_name and email are required")
	}
	input.ID = uuid.NewString()
	input.IsActive = true

	row := s.db.QueryRow(ctx, `
		INSERT INTO therapists (id, full_name, email, specialization, experience_years, bio, profile_image_url, languages, consultation_fee, is_active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING created_at
	`, input.ID, input.FullName, input.Email, input.Specialization, input.ExperienceYears,
		input.Bio, input.ProfileImageURL, input.Languages, input.ConsultationFee, input.IsActive)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Therapist{}, apperr.Persistence("failed to create therapist", err)
	}
	return input, nil
}

func (s *Service) Update(ctx context.Context, id string, patch Therapist) (Therapist, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return Therapist{}, err
	}
	if patch.FullName != "" {
		t.FullName = patch.FullName
	}
	if patch.Bio != "" {
		t.Bio = patch.Bio
	}
	if patch.ProfileImageURL != "" {
		t.ProfileImageURL = patch.ProfileImageURL
	}
	if len(patch.Specialization) > 0 {
		t.Specialization = patch.Specialization
	}
	if len(patch.Languages) > 0 {
		t.Languages = patch.Languages
	}
	if patch.ExperienceYears != 0 {
		t.ExperienceYears = patch.ExperienceYears
	}
	if patch.ConsultationFee != 0 {
		t.ConsultationFee = patch.ConsultationFee
	}

	_, err = s.db.Exec(ctx, `
		UPDATE therapists
		SET full_name=$2, bio=$3, profile_image_url=$4, specialization=$5, languages=$6, experience_years=$7, consultation_fee=$8
		WHERE id=$1
	`, t.ID, t.FullName, t.Bio, t.ProfileImageURL, t.Specialization, t.Languages, t.ExperienceYears, t.ConsultationFee)
	if err != nil {
		return Therapist{}, apperr.Persistence("failed to update therapist", err)
	}
	return t, nil
}

func (s *Service) loadAvailableSlots(ctx context.Context, therapistIDs []string) (map[string][]TimeSlot, error) {
	if len(therapistIDs) == 0 {
		return map[string][]TimeSlot{}, nil
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, therapist_id, date::text, start_time::text, end_time::text, is_available
		FROM time_slots
		WHERE therapist_id = ANY($1) AND is_available = true AND date >= CURRENT_DATE
		ORDER BY date, start_time
	`, therapistIDs)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch time slots", err)
	}
	defer rows.Close()

	slots := map[string][]TimeSlot{}
	for rows.Next() {
		var ts TimeSlot
		if err := rows.Scan(&ts.ID, &ts.TherapistID, &ts.Date, &ts.StartTime, &ts.EndTime, &ts.IsAvailable); err != nil {
			return nil, apperr.Persistence("failed to scan time slot", err)
		}
		slots[ts.TherapistID] = append(slots[ts.TherapistID], ts)
	}
	return slots, nil
}
