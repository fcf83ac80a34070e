package marking

import (
	"testing"
	"time"

	"github.com/pontocerto/ponto-backend-go/internal/domain/marking"
	"github.com/stretchr/testify/assert"
)

const testOvertimeThreshold = 160.0

func markingAt(markType marking.Type, day int, hour int, minute int) marking.Marking {
	return marking.Marking{
		Type:      markType,
		Timestamp: time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC),
	}
}

func TestComputeTotals_EmptyMonth(t *testing.T) {
	totals := ComputeTotals(nil, testOvertimeThreshold)

	assert.Equal(t, 0.0, totals.TotalHours)
	assert.Equal(t, 0.0, totals.OvertimeHours)
}

func TestComputeTotals_SingleFullDay(t *testing.T) {
	markings := []marking.Marking{
		markingAt(marking.TypeEntrada, 3, 9, 0),
		markingAt(marking.TypeSaida, 3, 17, 0),
	}

	totals := ComputeTotals(markings, testOvertimeThreshold)

	assert.Equal(t, 8.0, totals.TotalHours)
	assert.Equal(t, 0.0, totals.OvertimeHours)
}

func TestComputeTotals_FractionalHoursRounded(t *testing.T) {
	markings := []marking.Marking{
		markingAt(marking.TypeEntrada, 3, 9, 0),
		markingAt(marking.TypeSaida, 3, 17, 20),
	}

	totals := ComputeTotals(markings, testOvertimeThreshold)

	// 8h20m = 8.3333... hours
	assert.Equal(t, 8.33, totals.TotalHours)
}

func TestComputeTotals_OvertimeAboveThreshold(t *testing.T) {
	// 17 days of 10 worked hours each: 170 total, 10 above the baseline.
	var markings []marking.Marking
	for day := 1; day <= 17; day++ {
		markings = append(markings,
			markingAt(marking.TypeEntrada, day, 8, 0),
			markingAt(marking.TypeSaida, day, 18, 0),
		)
	}

	totals := ComputeTotals(markings, testOvertimeThreshold)

	assert.Equal(t, 170.0, totals.TotalHours)
	assert.Equal(t, 10.0, totals.OvertimeHours)
}

func TestComputeTotals_TrailingEntradaDropped(t *testing.T) {
	markings := []marking.Marking{
		markingAt(marking.TypeEntrada, 3, 9, 0),
		markingAt(marking.TypeSaida, 3, 17, 0),
		markingAt(marking.TypeEntrada, 4, 9, 0),
	}

	totals := ComputeTotals(markings, testOvertimeThreshold)

	// The open interval on day 4 contributes nothing.
	assert.Equal(t, 8.0, totals.TotalHours)
}

func TestComputeTotals_DoubleEntradaOverwritesPending(t *testing.T) {
	markings := []marking.Marking{
		markingAt(marking.TypeEntrada, 3, 8, 0),
		markingAt(marking.TypeEntrada, 3, 10, 0),
		markingAt(marking.TypeSaida, 3, 12, 0),
	}

	totals := ComputeTotals(markings, testOvertimeThreshold)

	// The later entrada wins; the 08:00 one is silently dropped.
	assert.Equal(t, 2.0, totals.TotalHours)
}

func TestComputeTotals_SaidaWithoutEntradaIgnored(t *testing.T) {
	markings := []marking.Marking{
		markingAt(marking.TypeSaida, 3, 12, 0),
		markingAt(marking.TypeEntrada, 4, 9, 0),
		markingAt(marking.TypeSaida, 4, 13, 0),
	}

	totals := ComputeTotals(markings, testOvertimeThreshold)

	assert.Equal(t, 4.0, totals.TotalHours)
}

func TestComputeTotals_Idempotent(t *testing.T) {
	markings := []marking.Marking{
		markingAt(marking.TypeEntrada, 3, 9, 0),
		markingAt(marking.TypeSaida, 3, 17, 30),
		markingAt(marking.TypeEntrada, 4, 9, 0),
		markingAt(marking.TypeSaida, 4, 18, 0),
	}

	first := ComputeTotals(markings, testOvertimeThreshold)
	second := ComputeTotals(markings, testOvertimeThreshold)

	assert.Equal(t, first, second)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "02:05", FormatClock(2*time.Hour+5*time.Minute))
	assert.Equal(t, "00:59", FormatClock(59*time.Minute+59*time.Second))
	assert.Equal(t, "00:00", FormatClock(-time.Hour))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "00:00", FormatHours(0))
	assert.Equal(t, "08:30", FormatHours(8.5))
	assert.Equal(t, "160:00", FormatHours(160))
	assert.Equal(t, "01:20", FormatHours(1.33))
}
