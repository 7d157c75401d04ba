package student

import (
	"context"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/db"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// List returns a university's students newest-first, optionally narrowed
// by a free-text search over name/email/student id and by risk level.
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Student, error) {
	if filter.UniversityID == "" {
		return nil, apperr.Validation("university id is required")
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, email, full_name, COALESCE(student_id,''), COALESCE(program,''), COALESCE(academic_year,''),
		       university_id, COALESCE(wellness_score,0), COALESCE(risk_level,'low'), last_wellness_check, created_at
		FROM profiles
		WHERE university_id=$1 AND user_type='student'
		  AND ($2 = '' OR full_name ILIKE '%'||$2||'%' OR email ILIKE '%'||$2||'%' OR student_id ILIKE '%'||$2||'%')
		  AND ($3 = '' OR risk_level = $3)
		ORDER BY created_at DESC
	`, filter.UniversityID, filter.Search, filter.RiskLevel)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch students", err)
	}
	defer rows.Close()

	var students []Student
	for rows.Next() {
		var st Student
		if err := rows.Scan(&st.ID, &st.Email, &st.FullName, &st.StudentID, &st.Program, &st.AcademicYear,
			&st.UniversityID, &st.WellnessScore, &st.RiskLevel, &st.LastWellnessCheck, &st.CreatedAt); err != nil {
			return nil, apperr.Persistence("failed to scan student", err)
		}
		students = append(students, st)
	}
	return students, nil
}

// Create provisions a student account: a user row for login, then the
// student profile. If the profile insert fails the user row is removed
// again so no half-created account is left behind.
func (s *Service) Create(ctx context.Context, input CreateInput) (Student, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" || input.StudentID == "" || input.UniversityID == "" {
		return Student{}, apperr.Validation("fullName, email, password, studentId and universityId are required")
	}

	var existingID string
	err := s.db.QueryRow(ctx, `
		SELECT id FROM profiles WHERE email=$1 OR student_id=$2
	`, input.Email, input.StudentID).Scan(&existingID)
	if err == nil {
		return Student{}, apperr.Conflict("student with this email or student ID already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return Student{}, apperr.Persistence("failed to hash password", err)
	}

	userID := uuid.NewString()
	_, err = s.db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, full_name, user_type, university_id)
		VALUES ($1,$2,$3,$4,'student',$5)
	`, userID, input.Email, string(hash), input.FullName, input.UniversityID)
	if err != nil {
		return Student{}, apperr.Persistence("failed to create user account", err)
	}

	st := Student{
		ID:           userID,
		Email:        input.Email,
		FullName:     input.FullName,
		StudentID:    input.StudentID,
		Program:      input.Program,
		AcademicYear: input.AcademicYear,
		UniversityID: input.UniversityID,
		RiskLevel:    "low",
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO profiles (id, email, full_name, user_type, university_id, student_id, program, academic_year, wellness_score, risk_level)
		VALUES ($1,$2,$3,'student',$4,$5,NULLIF($6,''),NULLIF($7,''),0.0,'low')
		RETURNING created_at
	`, st.ID, st.Email, st.FullName, st.UniversityID, st.StudentID, st.Program, st.AcademicYear)
	if err := row.Scan(&st.CreatedAt); err != nil {
		_, _ = s.db.Exec(ctx, `DELETE FROM users WHERE id=$1`, userID)
		return Student{}, apperr.Persistence("failed to create student profile", err)
	}

	return st, nil
}
