package marking

import (
	"fmt"
	"math"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
)

// Totals is the aggregate for one employee over one month.
type Totals struct {
	TotalHours    float64
	OvertimeHours float64
}

// SumWorked walks markings in timestamp order and pairs each entrada with
// the next saida, summing the worked intervals.
//
// An entrada followed by another entrada is overwritten and its interval
// dropped; a saida without a pending entrada is ignored. Neither case can
// be produced through the write path, which enforces sequencing per day,
// but the walk must tolerate whatever is in the table.
func SumWorked(markings []marking.Marking) time.Duration {
	var total time.Duration
	var pending *time.Time

	for i := range markings {
		m := &markings[i]
		switch m.Type {
		case marking.TypeEntrada:
			ts := m.Timestamp
			pending = &ts
		case marking.TypeSaida:
			if pending != nil {
				total += m.Timestamp.Sub(*pending)
				pending = nil
			}
		}
	}

	// A trailing unpaired entrada contributes nothing.
	return total
}

// ComputeTotals aggregates a month of markings into worked and overtime
// hours, both rounded to two decimals. Recomputing over the same rows
// always yields the same result.
func ComputeTotals(markings []marking.Marking, overtimeThresholdHours float64) Totals {
	totalHours := roundHours(SumWorked(markings).Hours())
	overtimeHours := roundHours(math.Max(0, totalHours-overtimeThresholdHours))

	return Totals{
		TotalHours:    totalHours,
		OvertimeHours: overtimeHours,
	}
}

func roundHours(hours float64) float64 {
	return math.Round(hours*100) / 100
}

// FormatClock renders a duration as "HH:MM", flooring to whole minutes.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatHours renders decimal hours as "HH:MM" (8.5 -> "08:30").
func FormatHours(hours float64) string {
	whole := int(math.Floor(hours))
	minutes := int(math.Round((hours - float64(whole)) * 60))
	return fmt.Sprintf("%02d:%02d", whole, minutes)
}
