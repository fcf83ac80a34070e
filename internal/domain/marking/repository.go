package marking

import (
	"context"
	"time"
)

// MarkingRepository defines data access methods for clock events.
type MarkingRepository interface {
	// Create inserts a new marking
	Create(ctx context.Context, m Marking) (Marking, error)

	// ListByEmployeeBetween retrieves markings for one employee with
	// from <= timestamp < to, ordered by timestamp ascending
	ListByEmployeeBetween(ctx context.Context, employeeID string, from time.Time, to time.Time) ([]Marking, error)

	// ListAll retrieves markings across employees with their names,
	// newest first, for the admin browser
	ListAll(ctx context.Context, filter ListMarkingsFilter) ([]Marking, error)
}

// MonthlyStatRepository defines data access for the cached month aggregates.
type MonthlyStatRepository interface {
	// Upsert writes the stat row for (employee, month) in one statement
	Upsert(ctx context.Context, stat MonthlyStat) error

	// GetByEmployeeAndMonth returns nil when no row exists yet
	GetByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart time.Time) (*MonthlyStat, error)
}
