package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pontocerto/ponto-backend-go/internal/domain/employee"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByUsername implements employee.EmployeeRepository.
func (r *employeeRepository) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, password_hash, role, hour_rate, active, created_at, updated_at
		FROM employees
		WHERE username = $1
		  AND active = true
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, username).Scan(
		&emp.ID, &emp.Name, &emp.Username, &emp.PasswordHash, &emp.Role,
		&emp.HourRate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by username: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, username, password_hash, role, hour_rate, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.Name, &emp.Username, &emp.PasswordHash, &emp.Role,
		&emp.HourRate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// UpdateHourRate implements employee.EmployeeRepository.
func (r *employeeRepository) UpdateHourRate(ctx context.Context, id string, hourRate decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET hour_rate = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, hourRate, id)
	if err != nil {
		return fmt.Errorf("failed to update hour rate: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListWithMonthlyStats implements employee.EmployeeRepository.
func (r *employeeRepository) ListWithMonthlyStats(ctx context.Context, monthStart time.Time) ([]employee.MonthlyOverview, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			e.id AS employee_id,
			e.name AS employee_name,
			COALESCE(s.total_hours, 0) AS total_hours,
			COALESCE(s.overtime_hours, 0) AS overtime_hours,
			COALESCE(e.hour_rate, 0) AS hour_rate
		FROM employees e
		LEFT JOIN employee_monthly_stats s
			ON e.id = s.employee_id
			AND s.month_start = $1
		WHERE e.active = true
		ORDER BY e.name ASC
	`

	rows, err := q.Query(ctx, query, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with monthly stats: %w", err)
	}
	defer rows.Close()

	var overviews []employee.MonthlyOverview
	for rows.Next() {
		var o employee.MonthlyOverview
		if err := rows.Scan(&o.EmployeeID, &o.EmployeeName, &o.TotalHours, &o.OvertimeHours, &o.HourRate); err != nil {
			return nil, fmt.Errorf("failed to scan employee overview row: %w", err)
		}
		overviews = append(overviews, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employee overview rows: %w", err)
	}

	return overviews, nil
}
