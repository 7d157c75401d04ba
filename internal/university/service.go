package university

import (
	"context"
	"math"
	"time"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db  db.Querier
	now func() time.Time
}

func NewService(db db.Querier) *Service {
	return &Service{db: db, now: time.Now}
}

const universityColumns = `id, name, domain, COALESCE(address,''), COALESCE(contact_email,''), COALESCE(contact_phone,''),
	       COALESCE(admin_user_id::text,''), COALESCE(admin_name,''), COALESCE(admin_title,''),
	       student_limit, current_student_count, is_verified, subscription_status, created_at`

// List returns universities, optionally filtered by domain or admin user.
func (s *Service) List(ctx context.Context, domain, adminID string) ([]University, error) {
	query := `SELECT ` + universityColumns + ` FROM universities WHERE ($1 = '' OR domain = $1) AND ($2 = '' OR admin_user_id::text = $2)`
	rows, err := s.db.Query(ctx, query, domain, adminID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch universities", err)
	}
	defer rows.Close()

	var universities []University
	for rows.Next() {
		u, err := scanUniversity(rows)
		if err != nil {
			return nil, err
		}
		universities = append(universities, u)
	}
	return universities, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (University, error) {
	if input.Name == "" || input.Domain == "" || input.Address == "" || input.ContactEmail == "" || input.AdminUserID == "" || input.AdminName == "" {
		return University{}, apperr.Validation("name, domain, address, contactEmail, adminUserId and adminName are required")
	}

	var existingID string
	if err := s.db.QueryRow(ctx, `SELECT id FROM universities WHERE domain=$1`, input.Domain).Scan(&existingID); err == nil {
		return University{}, apperr.Conflict("university with this domain already exists")
	}

	if input.StudentLimit == 0 {
		input.StudentLimit = 1000
	}

	u := University{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Domain:             input.Domain,
		Address:            input.Address,
		ContactEmail:       input.ContactEmail,
		ContactPhone:       input.ContactPhone,
		AdminUserID:        input.AdminUserID,
		AdminName:          input.AdminName,
		AdminTitle:         input.AdminTitle,
		StudentLimit:       input.StudentLimit,
		SubscriptionStatus: "active",
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO universities (id, name, domain, address, contact_email, contact_phone, admin_user_id, admin_name, admin_title, student_limit, current_student_count, is_verified, subscription_status)
		VALUES ($1,$2,$3,$4,$5,NULLIF($6,''),$7,$8,NULLIF($9,''),$10,0,false,$11)
		RETURNING created_at
	`, u.ID, u.Name, u.Domain, u.Address, u.ContactEmail, u.ContactPhone, u.AdminUserID, u.AdminName, u.AdminTitle, u.StudentLimit, u.SubscriptionStatus)
	if err := row.Scan(&u.CreatedAt); err != nil {
		return University{}, apperr.Persistence("failed to create university", err)
	}
	return u, nil
}

func (s *Service) Update(ctx context.Context, id string, patch UpdateInput) (University, error) {
	if id == "" {
		return University{}, apperr.Validation("university id is required")
	}

	u, err := s.Get(ctx, id)
	if err != nil {
		return University{}, err
	}
	if patch.Name != "" {
		u.Name = patch.Name
	}
	if patch.Address != "" {
		u.Address = patch.Address
	}
	if patch.ContactEmail != "" {
		u.ContactEmail = patch.ContactEmail
	}
	if patch.ContactPhone != "" {
		u.ContactPhone = patch.ContactPhone
	}
	if patch.AdminName != "" {
		u.AdminName = patch.AdminName
	}
	if patch.AdminTitle != "" {
		u.AdminTitle = patch.AdminTitle
	}
	if patch.StudentLimit != 0 {
		u.StudentLimit = patch.StudentLimit
	}

	_, err = s.db.Exec(ctx, `
		UPDATE universities
		SET name=$2, address=$3, contact_email=$4, contact_phone=$5, admin_name=$6, admin_title=$7, student_limit=$8
		WHERE id=$1
	`, u.ID, u.Name, u.Address, u.ContactEmail, u.ContactPhone, u.AdminName, u.AdminTitle, u.StudentLimit)
	if err != nil {
		return University{}, apperr.Persistence("failed to update university", err)
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id string) (University, error) {
	row := s.db.QueryRow(ctx, `SELECT `+universityColumns+` FROM universities WHERE id=$1`, id)
	u, err := scanUniversity(row)
	if err != nil {
		return University{}, apperr.NotFound("university not found")
	}
	return u, nil
}

// Dashboard computes the admin statistics from the university's student
// profiles and their completed bookings.
func (s *Service) Dashboard(ctx context.Context, universityID string) (Dashboard, error) {
	if universityID == "" {
		return Dashboard{}, apperr.Validation("university id is required")
	}

	u, err := s.Get(ctx, universityID)
	if err != nil {
		return Dashboard{}, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT id, COALESCE(wellness_score,0), COALESCE(risk_level,'low'), last_wellness_check, created_at
		FROM profiles
		WHERE university_id=$1 AND user_type='student'
	`, universityID)
	if err != nil {
		return Dashboard{}, apperr.Persistence("failed to fetch student data", err)
	}
	defer rows.Close()

	type studentRow struct {
		id        string
		wellness  float64
		riskLevel string
		lastCheck *time.Time
		createdAt time.Time
	}
	var students []studentRow
	for rows.Next() {
		var st studentRow
		if err := rows.Scan(&st.id, &st.wellness, &st.riskLevel, &st.lastCheck, &st.createdAt); err != nil {
			return Dashboard{}, apperr.Persistence("failed to scan student row", err)
		}
		students = append(students, st)
	}

	var completedSessions int
	if len(students) > 0 {
		ids := make([]string, 0, len(students))
		for _, st := range students {
			ids = append(ids, st.id)
		}
		row := s.db.QueryRow(ctx, `
			SELECT COUNT(*) FROM bookings WHERE user_id = ANY($1) AND status='completed'
		`, ids)
		if err := row.Scan(&completedSessions); err != nil {
			completedSessions = 0
		}
	}

	now := s.now()
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	sevenDaysAgo := now.AddDate(0, 0, -7)

	risk := map[string]int{"low": 0, "medium": 0, "high": 0, "critical": 0}
	var activeUsers, recentRegistrations int
	var wellnessSum float64
	for _, st := range students {
		risk[st.riskLevel]++
		wellnessSum += st.wellness
		if st.lastCheck != nil && st.lastCheck.After(thirtyDaysAgo) {
			activeUsers++
		}
		if st.createdAt.After(sevenDaysAgo) {
			recentRegistrations++
		}
	}

	total := len(students)
	var avgWellness float64
	var utilization int
	if total > 0 {
		avgWellness = math.Round(wellnessSum/float64(total)*10) / 10
		utilization = int(math.Round(float64(activeUsers) / float64(total) * 100))
	}

	return Dashboard{
		University: u,
		Statistics: DashboardStats{
			TotalStudents:        total,
			ActiveUsers:          activeUsers,
			CompletedSessions:    completedSessions,
			AverageWellnessScore: avgWellness,
			CriticalAlerts:       risk["critical"] + risk["high"],
			RecentRegistrations:  recentRegistrations,
			RiskDistribution:     risk,
			UtilizationRate:      utilization,
		},
		Activity: DashboardActivity{
			NewStudentsThisWeek:      recentRegistrations,
			StudentsNeedingAttention: risk["high"] + risk["critical"],
		},
	}, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUniversity(row rowScanner) (University, error) {
	var u University
	err := row.Scan(&u.ID, &u.Name, &u.Domain, &u.Address, &u.ContactEmail, &u.ContactPhone,
		&u.AdminUserID, &u.AdminName, &u.AdminTitle,
		&u.StudentLimit, &u.CurrentStudentCount, &u.IsVerified, &u.SubscriptionStatus, &u.CreatedAt)
	if err != nil {
		return University{}, apperr.Persistence("failed to scan university", err)
	}
	return u, nil
}
