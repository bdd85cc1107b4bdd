package port

import (
	"context"

	"relief-hub/app/domain"
)

// ReportUsecase defines the reports business logic interface
type ReportUsecase interface {
	// GetRollups returns status/urgency rollups over the entire public view
	// plus a dense daily series for the window. Read failures degrade to a
	// zeroed rollup set rather than an error.
	GetRollups(ctx context.Context, windowDays int) (*domain.Rollups, error)
}

// ReportRepository defines aggregate data access for the reports view
type ReportRepository interface {
	CountByStatus(ctx context.Context) (map[domain.Status]int, error)
	CountByUrgency(ctx context.Context) (map[domain.Urgency]int, error)

	// DailyCounts returns per-day per-status creation counts for the last
	// windowDays calendar days. Days with no rows may be absent; the usecase
	// densifies the series.
	DailyCounts(ctx context.Context, windowDays int) (map[string]domain.DailyCount, error)
}
