package employee

import (
	"context"
)

// EmployeeService defines business logic for employee administration
type EmployeeService interface {
	// ListOverview retrieves all employees with current-month hours and pay (admin)
	ListOverview(ctx context.Context) (ListOverviewResponse, error)

	// UpdateHourRate changes an employee's hourly pay rate (admin)
	UpdateHourRate(ctx context.Context, req UpdateRateRequest) error
}
