package marking

import (
	"github.com/pontocerto/ponto-backend-go/internal/pkg/validator"
)

// ========================================
// MARKING DTOs
// ========================================

type MarkTimeRequest struct {
	Type      string   `json:"type"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   *string  `json:"address"`
}

func (r *MarkTimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, []string{string(TypeEntrada), string(TypeSaida)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be either 'entrada' or 'saida'",
		})
	}

	// Coordinates are mandatory; the resolved address is not.
	if r.Latitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude is required",
		})
	} else if !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude is required",
		})
	} else if !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type MonthTotals struct {
	Total    float64 `json:"total"`
	Overtime float64 `json:"overtime"`
}

type MarkTimeResponse struct {
	Message string      `json:"message"`
	Month   MonthTotals `json:"month"`
}

type MonthlyStatsResponse struct {
	TotalHours    float64  `json:"total_hours"`
	OvertimeHours *float64 `json:"overtime_hours,omitempty"`
}

type MarkingResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Timestamp string  `json:"timestamp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Location  *string `json:"location,omitempty"`
}

type TodayMarkingsResponse struct {
	Markings []MarkingResponse `json:"markings"`
}

// SummaryResponse carries the employee dashboard numbers. Hour figures use
// the "HH:MM" clock format the dashboard renders directly.
type SummaryResponse struct {
	TodayHours      string `json:"todayHours"`
	WeekHours       string `json:"weekHours"`
	MonthHours      string `json:"monthHours"`
	Overtime        string `json:"overtime"`
	DaysUntilPayday int    `json:"daysUntilPayday"`
}

// ========================================
// ADMIN LISTING
// ========================================

type ListMarkingsFilter struct {
	EmployeeID   *string
	EmployeeName *string
	Type         *string
	StartDate    *string
	EndDate      *string
	Limit        int
}

func (f *ListMarkingsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && !validator.IsValidUUID(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if f.Type != nil && !validator.IsInSlice(*f.Type, []string{string(TypeEntrada), string(TypeSaida)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be either 'entrada' or 'saida'",
		})
	}

	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AdminMarkingResponse struct {
	MarkingID    string  `json:"marking_id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	Timestamp    string  `json:"timestamp"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Location     *string `json:"location,omitempty"`
}

// ListMarkingsResponse groups markings by calendar day (YYYY-MM-DD),
// newest first within each day.
type ListMarkingsResponse struct {
	Markings map[string][]AdminMarkingResponse `json:"markings"`
}
