package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maheshh3003/SAFE/internal/apperr"

	"github.com/pashagolub/pgxmock/v3"
)

func TestCreateBooking(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT is_available FROM time_slots`).
		WithArgs("slot-1").
		WillReturnRows(pgxmock.NewRows([]string{"is_available"}).AddRow(true))

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(pgxmock.AnyArg(), "user-1", "ther-1", "type-1", "slot-1", "2026-09-10", "10:00", "video", 80.0, "first session", "confirmed", "pending").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	svc := NewService(mock)
	booking, err := svc.Create(context.Background(), CreateInput{
		UserID:        "user-1",
		TherapistID:   "ther-1",
		SessionTypeID: "type-1",
		TimeSlotID:    "slot-1",
		SessionDate:   "2026-09-10",
		SessionTime:   "10:00",
		SessionType:   "video",
		TotalAmount:   80,
		Notes:         "first session",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.Status != "confirmed" || booking.PaymentStatus != "pending" {
		t.Fatalf("unexpected booking state: %+v", booking)
	}
	if booking.ID == "" || booking.CreatedAt.IsZero() {
		t.Fatalf("expected id and created_at")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	// validation must fail before any database call; nil querier proves it
	svc := NewService(nil)
	_, err := svc.Create(context.Background(), CreateInput{})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{UserID: "user-1", TherapistID: "ther-1", SessionTypeID: "type-1"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for missing slot, got %v", err)
	}
}

func TestCreateBookingSlotUnavailable(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT is_available FROM time_slots`).
		WithArgs("slot-1").
		WillReturnRows(pgxmock.NewRows([]string{"is_available"}).AddRow(false))

	svc := NewService(mock)
	_, err = svc.Create(context.Background(), CreateInput{
		UserID: "user-1", TherapistID: "ther-1", SessionTypeID: "type-1", TimeSlotID: "slot-1",
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}

	// no insert may happen after a failed availability check
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingSlotMissing(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT is_available FROM time_slots`).
		WithArgs("slot-gone").
		WillReturnError(errors.New("no rows in result set"))

	svc := NewService(mock)
	_, err = svc.Create(context.Background(), CreateInput{
		UserID: "user-1", TherapistID: "ther-1", SessionTypeID: "type-1", TimeSlotID: "slot-gone",
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Fatalf("expected conflict for missing slot, got %v", err)
	}
}

func TestCreateBookingInsertFailure(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT is_available FROM time_slots`).
		WithArgs("slot-1").
		WillReturnRows(pgxmock.NewRows([]string{"is_available"}).AddRow(true))
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(errors.New("insert failed"))

	svc := NewService(mock)
	_, err = svc.Create(context.Background(), CreateInput{
		UserID: "user-1", TherapistID: "ther-1", SessionTypeID: "type-1", TimeSlotID: "slot-1",
	})
	if !apperr.IsKind(err, apperr.KindPersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if apperr.Message(err) != "internal server error" {
		t.Fatalf("persistence detail leaked: %q", apperr.Message(err))
	}
}

func TestListForUser(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`SELECT b.id, b.user_id, b.therapist_id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "therapist_id", "session_type_id", "time_slot_id",
			"session_date", "session_time", "session_type",
			"total_amount", "notes", "status", "payment_status", "created_at",
			"full_name", "specialization", "profile_image_url",
			"name", "duration_minutes",
		}).AddRow(
			"book-1", "user-1", "ther-1", "type-1", "slot-1",
			"2026-09-10", "10:00", "video",
			80.0, "", "confirmed", "pending", createdAt,
			"Dr. Maya Kapoor", []string{"anxiety", "depression"}, "",
			"Individual Therapy", 50,
		))

	svc := NewService(mock)
	bookings, err := svc.ListForUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list bookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking")
	}
	b := bookings[0]
	if b.TherapistName != "Dr. Maya Kapoor" || b.SessionTypeName != "Individual Therapy" || b.DurationMinutes != 50 {
		t.Fatalf("joined fields missing: %+v", b)
	}
}

func TestListForUserMissingID(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.ListForUser(context.Background(), ""); !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSessionTypes(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, name, COALESCE\(description,''\), duration_minutes, price`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "description", "duration_minutes", "price"}).
			AddRow("type-1", "Couples Therapy", "", 80, 120.0).
			AddRow("type-2", "Individual Therapy", "One on one", 50, 80.0))

	svc := NewService(mock)
	types, err := svc.SessionTypes(context.Background())
	if err != nil {
		t.Fatalf("session types: %v", err)
	}
	if len(types) != 2 || types[0].Name != "Couples Therapy" {
		t.Fatalf("unexpected session types: %+v", types)
	}
}
