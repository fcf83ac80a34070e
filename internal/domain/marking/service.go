package marking

import (
	"context"
)

// MarkingService defines business logic for clock events. The acting
// employee is always taken from the request's JWT claims.
type MarkingService interface {
	// MarkTime validates the once-per-day sequencing rule, records the
	// event and refreshes the month aggregate
	MarkTime(ctx context.Context, req MarkTimeRequest) (MarkTimeResponse, error)

	// GetMonthlyStats returns the cached current-month totals
	GetMonthlyStats(ctx context.Context) (MonthlyStatsResponse, error)

	// GetTodayMarkings returns today's markings, newest first
	GetTodayMarkings(ctx context.Context) (TodayMarkingsResponse, error)

	// GetSummary returns today/week/month worked hours and payday countdown
	GetSummary(ctx context.Context) (SummaryResponse, error)

	// ListAllMarkings returns recent markings across employees grouped by
	// day (admin)
	ListAllMarkings(ctx context.Context, filter ListMarkingsFilter) (ListMarkingsResponse, error)
}
