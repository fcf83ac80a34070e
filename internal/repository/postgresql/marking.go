package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
	"github.com/pontocerto/ponto-backend-go/internal/pkg/database"
)

type markingRepository struct {
	db *database.DB
}

func NewMarkingRepository(db *database.DB) marking.MarkingRepository {
	return &markingRepository{db: db}
}

// Create implements marking.MarkingRepository.
func (r *markingRepository) Create(ctx context.Context, m marking.Marking) (marking.Marking, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return marking.Marking{}, fmt.Errorf("failed to generate marking id: %w", err)
	}
	m.ID = id.String()

	query := `
		INSERT INTO markings (id, employee_id, type, timestamp, latitude, longitude, location)
		VALUES ($1, $2, $3, NOW(), $4, $5, $6)
		RETURNING timestamp, created_at
	`

	err = q.QueryRow(ctx, query,
		m.ID,
		m.EmployeeID,
		m.Type,
		m.Latitude,
		m.Longitude,
		m.Location,
	).Scan(&m.Timestamp, &m.CreatedAt)

	if err != nil {
		return marking.Marking{}, fmt.Errorf("failed to create marking: %w", err)
	}

	return m, nil
}

// ListByEmployeeBetween implements marking.MarkingRepository.
func (r *markingRepository) ListByEmployeeBetween(ctx context.Context, employeeID string, from time.Time, to time.Time) ([]marking.Marking, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, timestamp, latitude, longitude, location, created_at
		FROM markings
		WHERE employee_id = $1
		  AND timestamp >= $2
		  AND timestamp < $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list markings: %w", err)
	}
	defer rows.Close()

	var markings []marking.Marking
	for rows.Next() {
		var m marking.Marking
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.Type, &m.Timestamp,
			&m.Latitude, &m.Longitude, &m.Location, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan marking row: %w", err)
		}
		markings = append(markings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate marking rows: %w", err)
	}

	return markings, nil
}

// ListAll implements marking.MarkingRepository.
func (r *markingRepository) ListAll(ctx context.Context, filter marking.ListMarkingsFilter) ([]marking.Marking, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	addCondition := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.EmployeeID != nil {
		addCondition("m.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.EmployeeName != nil {
		addCondition("e.name ILIKE $%d", "%"+*filter.EmployeeName+"%")
	}
	if filter.Type != nil {
		addCondition("m.type = $%d", *filter.Type)
	}
	if filter.StartDate != nil {
		addCondition("m.timestamp >= $%d::date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		addCondition("m.timestamp < $%d::date + INTERVAL '1 day'", *filter.EndDate)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limit := filter.Limit
	if limit <= 0 || limit > 1000 {
		limit = 1000
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT m.id, m.employee_id, m.type, m.timestamp, m.latitude, m.longitude, m.location, m.created_at,
			   e.name AS employee_name
		FROM markings m
		JOIN employees e ON e.id = m.employee_id
		%s
		ORDER BY m.timestamp DESC
		LIMIT $%d
	`, whereClause, argPos)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list all markings: %w", err)
	}
	defer rows.Close()

	var markings []marking.Marking
	for rows.Next() {
		var m marking.Marking
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.Type, &m.Timestamp,
			&m.Latitude, &m.Longitude, &m.Location, &m.CreatedAt, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan marking row: %w", err)
		}
		markings = append(markings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate marking rows: %w", err)
	}

	return markings, nil
}
