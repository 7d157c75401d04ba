package auth

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func TestRegisterAndLogin(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now().Add(-time.Minute)
	updatedAt := time.Now().Add(-time.Minute)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(pgxmock.AnyArg(), "jane@example.com", pgxmock.AnyArg(), "Jane Doe", "student", "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(createdAt, updatedAt))

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	user, tokens, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "jane@example.com",
		Password: "password123",
		FullName: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected user and tokens")
	}

	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, user_type`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "full_name", "user_type", "university_id", "created_at", "updated_at"}).
			AddRow(user.ID, user.Email, user.PasswordHash, user.FullName, user.UserType, "", createdAt, updatedAt))

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), user.ID, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	_, loginTokens, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginTokens.AccessToken == "" {
		t.Fatalf("expected access token")
	}

	who, err := svc.ValidateAccessToken(loginTokens.AccessToken)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if who.Name != "Jane Doe" || who.Email != "jane@example.com" {
		t.Fatalf("expected identity claims in token, got %+v", who)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewService("test-secret", nil)
	if _, _, err := svc.Register(context.Background(), RegisterRequest{Email: "x@example.com"}); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`SELECT id, email, password_hash, full_name, user_type`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "password_hash", "full_name", "user_type", "university_id", "created_at", "updated_at"}).
			AddRow("user-1", "jane@example.com", "$2a$10$invalidhashinvalidhashinvalidhashinvalidhashinvalid", "Jane Doe", "student", "", createdAt, createdAt))

	svc := NewService("test-secret", mock)
	if _, _, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrong"}); err == nil {
		t.Fatalf("expected invalid credentials")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), Identity{UserID: "user-1", Name: "Jane Doe", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("user-1", time.Now().Add(time.Hour)))

	who, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if who.UserID != "user-1" {
		t.Fatalf("unexpected identity: %+v", who)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestValidateRefreshTokenMismatch(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO refresh_tokens`).
		WithArgs(pgxmock.AnyArg(), "user-1", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService("test-secret", mock)
	tokens, err := svc.GenerateTokens(context.Background(), Identity{UserID: "user-1"})
	if err != nil {
		t.Fatalf("generate tokens: %v", err)
	}

	mock.ExpectQuery(`SELECT user_id, expires_at`).
		WithArgs(tokens.RefreshToken).
		WillReturnRows(pgxmock.NewRows([]string{"user_id", "expires_at"}).
			AddRow("someone-else", time.Now().Add(time.Hour)))

	if _, err := svc.ValidateRefreshToken(context.Background(), tokens.RefreshToken); err == nil {
		t.Fatalf("expected mismatch error")
	}
}

func TestValidateAccessTokenGarbage(t *testing.T) {
	svc := NewService("test-secret", nil)
	if _, err := svc.ValidateAccessToken("not-a-token"); err == nil {
		t.Fatalf("expected parse error")
	}
}
