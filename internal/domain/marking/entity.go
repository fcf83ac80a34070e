package marking

import (
	"time"
)

// Type is the direction of a clock event.
type Type string

const (
	TypeEntrada Type = "entrada"
	TypeSaida   Type = "saida"
)

// Marking is a single clock event. Rows are immutable once written; the
// timestamp is assigned by the server at insert time.
type Marking struct {
	ID         string
	EmployeeID string
	Type       Type
	Timestamp  time.Time
	Latitude   float64
	Longitude  float64
	Location   *string
	CreatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}

// MonthlyStat caches the aggregated hours for one employee in one month.
// Fully recomputable from the markings table; refreshed on every write.
type MonthlyStat struct {
	ID            string
	EmployeeID    string
	MonthStart    time.Time
	MonthEnd      time.Time
	TotalHours    float64
	OvertimeHours float64
	LastUpdated   time.Time
}
