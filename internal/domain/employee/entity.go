package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Name         string
	Username     string
	PasswordHash *string
	Role         Role
	HourRate     decimal.Decimal
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin       Role = "admin"
	RoleFuncionario Role = "funcionario"
)

// IsAdmin checks if the employee has administrator access
func (e *Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}

// MonthlyOverview is the admin listing row: employee joined with the
// current month's cached totals.
type MonthlyOverview struct {
	EmployeeID    string
	EmployeeName  string
	TotalHours    float64
	OvertimeHours float64
	HourRate      decimal.Decimal
}
