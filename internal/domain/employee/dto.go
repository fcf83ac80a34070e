package employee

import (
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type UpdateRateRequest struct {
	EmployeeID string          `json:"employee_id"`
	HourRate   decimal.Decimal `json:"hour_rate"`
}

func (r *UpdateRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if r.HourRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "hour_rate",
			Message: "hour_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OverviewResponse struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	TotalHours    float64 `json:"total_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	HourRate      string  `json:"hour_rate"`
	TotalPay      string  `json:"total_pay"`
}

type ListOverviewResponse struct {
	Employees []OverviewResponse `json:"employees"`
}
