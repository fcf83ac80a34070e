package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type monthlyStatRepository struct {
	db *database.DB
}

func NewMonthlyStatRepository(db *database.DB) marking.MonthlyStatRepository {
	return &monthlyStatRepository{db: db}
}

// Upsert implements marking.MonthlyStatRepository.
//
// A single ON CONFLICT statement so concurrent writers for the same
// employee and month cannot interleave a read-check-then-write; last
// writer wins on the recomputed values.
func (r *monthlyStatRepository) Upsert(ctx context.Context, stat marking.MonthlyStat) error {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate stat id: %w", err)
	}

	query := `
		INSERT INTO employee_monthly_stats
			(id, employee_id, month_start, month_end, total_hours, overtime_hours, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (employee_id, month_start) DO UPDATE
		SET total_hours = EXCLUDED.total_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			last_updated = NOW()
	`

	_, err = q.Exec(ctx, query,
		id.String(),
		stat.EmployeeID,
		stat.MonthStart,
		stat.MonthEnd,
		stat.TotalHours,
		stat.OvertimeHours,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert monthly stat: %w", err)
	}

	return nil
}

// GetByEmployeeAndMonth implements marking.MonthlyStatRepository.
func (r *monthlyStatRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID string, monthStart time.Time) (*marking.MonthlyStat, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month_start, month_end, total_hours, overtime_hours, last_updated
		FROM employee_monthly_stats
		WHERE employee_id = $1
		  AND month_start = $2
	`

	var stat marking.MonthlyStat
	err := q.QueryRow(ctx, query, employeeID, monthStart).Scan(
		&stat.ID, &stat.EmployeeID, &stat.MonthStart, &stat.MonthEnd,
		&stat.TotalHours, &stat.OvertimeHours, &stat.LastUpdated,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // no stat row yet for this month
		}
		return nil, fmt.Errorf("failed to get monthly stat: %w", err)
	}

	return &stat, nil
}
