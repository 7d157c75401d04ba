package university

import "time"

type University struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Domain              string    `json:"domain"`
	Address             string    `json:"address"`
	ContactEmail        string    `json:"contact_email"`
	ContactPhone        string    `json:"contact_phone,omitempty"`
	AdminUserID         string    `json:"admin_user_id"`
	AdminName           string    `json:"admin_name"`
	AdminTitle          string    `json:"admin_title,omitempty"`
	StudentLimit        int       `json:"student_limit"`
	CurrentStudentCount int       `json:"current_student_count"`
	IsVerified          bool      `json:"is_verified"`
	SubscriptionStatus  string    `json:"subscription_status"`
	CreatedAt           time.Time `json:"created_at"`
}

type CreateInput struct {
	Name         string `json:"name"`
	Domain       string `json:"domain"`
	Address      string `json:"address"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	AdminUserID  string `json:"adminUserId"`
	AdminName    string `json:"adminName"`
	AdminTitle   string `json:"adminTitle"`
	StudentLimit int    `json:"studentLimit"`
}

type UpdateInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	AdminName    string `json:"admin_name"`
	AdminTitle   string `json:"admin_title"`
	StudentLimit int    `json:"student_limit"`
}

// Dashboard aggregates student wellbeing figures for a university's
// admin view. All numbers are computed from current rows at call time.
type Dashboard struct {
	University University        `json:"university"`
	Statistics DashboardStats    `json:"statistics"`
	Activity   DashboardActivity `json:"recentActivity"`
}

type DashboardStats struct {
	TotalStudents        int            `json:"totalStudents"`
	ActiveUsers          int            `json:"activeUsers"`
	CompletedSessions    int            `json:"completedSessions"`
	AverageWellnessScore float64        `json:"averageWellnessScore"`
	CriticalAlerts       int            `json:"criticalAlerts"`
	RecentRegistrations  int            `json:"recentRegistrations"`
	RiskDistribution     map[string]int `json:"riskDistribution"`
	UtilizationRate      int            `json:"utilizationRate"`
}

type DashboardActivity struct {
	NewStudentsThisWeek      int `json:"newStudentsThisWeek"`
	StudentsNeedingAttention int `json:"studentsNeedingAttention"`
}
