package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// GetByUsername retrieves an active employee by login username
	GetByUsername(ctx context.Context, username string) (Employee, error)

	// GetByID retrieves an employee by id
	GetByID(ctx context.Context, id string) (Employee, error)

	// UpdateHourRate sets the hourly pay rate for an employee
	UpdateHourRate(ctx context.Context, id string, hourRate decimal.Decimal) error

	// ListWithMonthlyStats retrieves all employees joined with the cached
	// totals for the month starting at monthStart; employees without a
	// stat row come back with zero hours.
	ListWithMonthlyStats(ctx context.Context, monthStart time.Time) ([]MonthlyOverview, error)
}
