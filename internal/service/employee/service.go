package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepository employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
	}
}

// ListOverview implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListOverview(ctx context.Context) (employee.ListOverviewResponse, error) {
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	overviews, err := s.EmployeeRepository.ListWithMonthlyStats(ctx, monthStart)
	if err != nil {
		return employee.ListOverviewResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.OverviewResponse, 0, len(overviews))
	for _, o := range overviews {
		totalPay := o.HourRate.Mul(decimal.NewFromFloat(o.TotalHours)).Round(2)

		responses = append(responses, employee.OverviewResponse{
			EmployeeID:    o.EmployeeID,
			EmployeeName:  o.EmployeeName,
			TotalHours:    o.TotalHours,
			OvertimeHours: o.OvertimeHours,
			HourRate:      o.HourRate.StringFixed(2),
			TotalPay:      totalPay.StringFixed(2),
		})
	}

	return employee.ListOverviewResponse{Employees: responses}, nil
}

// UpdateHourRate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateHourRate(ctx context.Context, req employee.UpdateRateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.EmployeeRepository.UpdateHourRate(ctx, req.EmployeeID, req.HourRate); err != nil {
		return fmt.Errorf("failed to update hour rate: %w", err)
	}

	return nil
}
