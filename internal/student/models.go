package student

import "time"

type Student struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"full_name"`
	StudentID         string     `json:"student_id"`
	Program           string     `json:"program,omitempty"`
	AcademicYear      string     `json:"academic_year,omitempty"`
	UniversityID      string     `json:"university_id"`
	WellnessScore     float64    `json:"wellness_score"`
	RiskLevel         string     `json:"risk_level"`
	LastWellnessCheck *time.Time `json:"last_wellness_check,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type CreateInput struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	StudentID    string `json:"studentId"`
	Program      string `json:"program"`
	AcademicYear string `json:"academicYear"`
	UniversityID string `json:"universityId"`
}

type ListFilter struct {
	UniversityID string
	Search       string
	RiskLevel    string
}
