package marking

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/config"
	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/geocode"
	"github.com/pontocerto/ponto-backend-go/internal/repository/postgresql"
)

const timestampFormat = "2006-01-02 15:04:05"

type MarkingServiceImpl struct {
	db *database.DB
	marking.MarkingRepository
	marking.MonthlyStatRepository
	geocoder geocode.ReverseGeocoder
	cfg      config.MarkingConfig
}

func NewMarkingService(
	db *database.DB,
	markingRepository marking.MarkingRepository,
	monthlyStatRepository marking.MonthlyStatRepository,
	geocoder geocode.ReverseGeocoder,
	cfg config.MarkingConfig,
) marking.MarkingService {
	return &MarkingServiceImpl{
		db:                    db,
		MarkingRepository:     markingRepository,
		MonthlyStatRepository: monthlyStatRepository,
		geocoder:              geocoder,
		cfg:                   cfg,
	}
}

// employeeIDFromContext extracts the acting employee from the JWT claims.
func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// dayBounds returns the local calendar day containing t as [start, end).
func dayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// monthBounds returns the local calendar month containing t as [start, end).
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}

// MarkTime implements marking.MarkingService.
//
// Sequencing check, insert and month aggregate refresh run in one
// transaction: either the marking and its recomputed stat both commit, or
// neither does.
func (s *MarkingServiceImpl) MarkTime(ctx context.Context, req marking.MarkTimeRequest) (marking.MarkTimeResponse, error) {
	if err := req.Validate(); err != nil {
		return marking.MarkTimeResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return marking.MarkTimeResponse{}, err
	}

	now := time.Now()
	dayStart, dayEnd := dayBounds(now)
	monthStart, monthEnd := monthBounds(now)

	// Best effort: a failed address lookup never blocks the marking.
	location := req.Address
	if location == nil || *location == "" {
		if resolved, geoErr := s.geocoder.Resolve(ctx, *req.Latitude, *req.Longitude); geoErr == nil {
			location = &resolved
		} else {
			slog.Warn("reverse geocoding failed, storing marking without address",
				"employee_id", employeeID, "error", geoErr)
			location = nil
		}
	}

	var totals Totals
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		todayMarkings, err := s.MarkingRepository.ListByEmployeeBetween(txCtx, employeeID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("failed to list today's markings: %w", err)
		}

		var hasEntrada, hasSaida bool
		for _, m := range todayMarkings {
			switch m.Type {
			case marking.TypeEntrada:
				hasEntrada = true
			case marking.TypeSaida:
				hasSaida = true
			}
		}

		markType := marking.Type(req.Type)
		if markType == marking.TypeEntrada && hasEntrada {
			return marking.ErrEntradaAlreadyMarked
		}
		if markType == marking.TypeSaida && !hasEntrada {
			return marking.ErrEntradaNotMarked
		}
		if markType == marking.TypeSaida && hasSaida {
			return marking.ErrSaidaAlreadyMarked
		}

		if _, err := s.MarkingRepository.Create(txCtx, marking.Marking{
			EmployeeID: employeeID,
			Type:       markType,
			Latitude:   *req.Latitude,
			Longitude:  *req.Longitude,
			Location:   location,
		}); err != nil {
			return fmt.Errorf("failed to create marking: %w", err)
		}

		monthMarkings, err := s.MarkingRepository.ListByEmployeeBetween(txCtx, employeeID, monthStart, monthEnd)
		if err != nil {
			return fmt.Errorf("failed to list month's markings: %w", err)
		}

		totals = ComputeTotals(monthMarkings, s.cfg.OvertimeThresholdHours)

		if err := s.MonthlyStatRepository.Upsert(txCtx, marking.MonthlyStat{
			EmployeeID:    employeeID,
			MonthStart:    monthStart,
			MonthEnd:      monthEnd.AddDate(0, 0, -1),
			TotalHours:    totals.TotalHours,
			OvertimeHours: totals.OvertimeHours,
		}); err != nil {
			return fmt.Errorf("failed to upsert monthly stat: %w", err)
		}

		return nil
	})

	if err != nil {
		return marking.MarkTimeResponse{}, err
	}

	return marking.MarkTimeResponse{
		Message: fmt.Sprintf("Marking of %s recorded successfully", req.Type),
		Month: marking.MonthTotals{
			Total:    totals.TotalHours,
			Overtime: totals.OvertimeHours,
		},
	}, nil
}

// GetMonthlyStats implements marking.MarkingService.
func (s *MarkingServiceImpl) GetMonthlyStats(ctx context.Context) (marking.MonthlyStatsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return marking.MonthlyStatsResponse{}, err
	}

	monthStart, _ := monthBounds(time.Now())

	stat, err := s.MonthlyStatRepository.GetByEmployeeAndMonth(ctx, employeeID, monthStart)
	if err != nil {
		return marking.MonthlyStatsResponse{}, fmt.Errorf("failed to get monthly stat: %w", err)
	}

	if stat == nil {
		return marking.MonthlyStatsResponse{TotalHours: 0}, nil
	}

	overtime := stat.OvertimeHours
	return marking.MonthlyStatsResponse{
		TotalHours:    stat.TotalHours,
		OvertimeHours: &overtime,
	}, nil
}

// GetTodayMarkings implements marking.MarkingService.
func (s *MarkingServiceImpl) GetTodayMarkings(ctx context.Context) (marking.TodayMarkingsResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return marking.TodayMarkingsResponse{}, err
	}

	dayStart, dayEnd := dayBounds(time.Now())

	markings, err := s.MarkingRepository.ListByEmployeeBetween(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return marking.TodayMarkingsResponse{}, fmt.Errorf("failed to list today's markings: %w", err)
	}

	// Newest first for the dashboard.
	responses := make([]marking.MarkingResponse, 0, len(markings))
	for i := len(markings) - 1; i >= 0; i-- {
		m := markings[i]
		responses = append(responses, marking.MarkingResponse{
			ID:        m.ID,
			Type:      string(m.Type),
			Timestamp: m.Timestamp.Format(timestampFormat),
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
			Location:  m.Location,
		})
	}

	return marking.TodayMarkingsResponse{Markings: responses}, nil
}

// GetSummary implements marking.MarkingService.
func (s *MarkingServiceImpl) GetSummary(ctx context.Context) (marking.SummaryResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return marking.SummaryResponse{}, err
	}

	now := time.Now()
	dayStart, dayEnd := dayBounds(now)
	monthStart, _ := monthBounds(now)

	// ISO week: Monday is the first day.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := dayStart.AddDate(0, 0, -(weekday - 1))

	todayMarkings, err := s.MarkingRepository.ListByEmployeeBetween(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return marking.SummaryResponse{}, fmt.Errorf("failed to list today's markings: %w", err)
	}

	weekMarkings, err := s.MarkingRepository.ListByEmployeeBetween(ctx, employeeID, weekStart, dayEnd)
	if err != nil {
		return marking.SummaryResponse{}, fmt.Errorf("failed to list week's markings: %w", err)
	}

	stat, err := s.MonthlyStatRepository.GetByEmployeeAndMonth(ctx, employeeID, monthStart)
	if err != nil {
		return marking.SummaryResponse{}, fmt.Errorf("failed to get monthly stat: %w", err)
	}

	monthHours := "00:00"
	overtime := "00:00"
	if stat != nil {
		monthHours = FormatHours(stat.TotalHours)
		overtime = FormatHours(stat.OvertimeHours)
	}

	// Payday is the 30th; once past it, count to next month's.
	payday := time.Date(now.Year(), now.Month(), 30, 0, 0, 0, 0, now.Location())
	if now.After(payday) {
		payday = payday.AddDate(0, 1, 0)
	}
	daysUntilPayday := int(math.Ceil(payday.Sub(now).Hours() / 24))

	return marking.SummaryResponse{
		TodayHours:      FormatClock(SumWorked(todayMarkings)),
		WeekHours:       FormatClock(SumWorked(weekMarkings)),
		MonthHours:      monthHours,
		Overtime:        overtime,
		DaysUntilPayday: daysUntilPayday,
	}, nil
}

// ListAllMarkings implements marking.MarkingService.
func (s *MarkingServiceImpl) ListAllMarkings(ctx context.Context, filter marking.ListMarkingsFilter) (marking.ListMarkingsResponse, error) {
	if err := filter.Validate(); err != nil {
		return marking.ListMarkingsResponse{}, err
	}

	markings, err := s.MarkingRepository.ListAll(ctx, filter)
	if err != nil {
		return marking.ListMarkingsResponse{}, fmt.Errorf("failed to list markings: %w", err)
	}

	grouped := make(map[string][]marking.AdminMarkingResponse)
	for _, m := range markings {
		name := ""
		if m.EmployeeName != nil {
			name = *m.EmployeeName
		}

		day := m.Timestamp.Format("2006-01-02")
		grouped[day] = append(grouped[day], marking.AdminMarkingResponse{
			MarkingID:    m.ID,
			EmployeeID:   m.EmployeeID,
			EmployeeName: name,
			Type:         string(m.Type),
			Timestamp:    m.Timestamp.Format(timestampFormat),
			Latitude:     m.Latitude,
			Longitude:    m.Longitude,
			Location:     m.Location,
		})
	}

	return marking.ListMarkingsResponse{Markings: grouped}, nil
}
