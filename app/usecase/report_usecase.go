package usecase

import (
	"context"
	"log/slog"
	"time"

	"relief-hub/app/domain"
	"relief-hub/app/port"
)

// ReportUsecase produces the rollup aggregates for the reports view.
type ReportUsecase struct {
	reports port.ReportRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewReportUsecase creates a new report usecase
func NewReportUsecase(reports port.ReportRepository, logger *slog.Logger) *ReportUsecase {
	return &ReportUsecase{
		reports: reports,
		logger:  logger.With("component", "report_usecase"),
		now:     time.Now,
	}
}

// GetRollups assembles the status/urgency rollups and the dense daily
// series. A failed read logs a warning and falls back to zeroed rollups
// so the reports page always renders.
func (u *ReportUsecase) GetRollups(ctx context.Context, windowDays int) (*domain.Rollups, error) {
	if windowDays < 1 {
		windowDays = domain.DefaultReportWindowDays
	}
	now := u.now()

	rollups := domain.EmptyRollups(windowDays, now)

	byStatus, err := u.reports.CountByStatus(ctx)
	if err != nil {
		u.logger.Warn("status rollup failed, serving zeros", "error", err)
		return &rollups, nil
	}
	byUrgency, err := u.reports.CountByUrgency(ctx)
	if err != nil {
		u.logger.Warn("urgency rollup failed, serving zeros", "error", err)
		return &rollups, nil
	}
	daily, err := u.reports.DailyCounts(ctx, windowDays)
	if err != nil {
		u.logger.Warn("daily series failed, serving zeros", "error", err)
		return &rollups, nil
	}

	total := 0
	for status, count := range byStatus {
		rollups.ByStatus[status] = count
		total += count
	}
	rollups.Total = total

	for urgency, count := range byUrgency {
		rollups.ByUrgency[urgency] = count
	}

	// Densify: the empty series already carries every day of the window in
	// order; fill in the days that had rows.
	for i, day := range rollups.DailySeries {
		if dc, ok := daily[day.Date]; ok {
			rollups.DailySeries[i].Active = dc.Active
			rollups.DailySeries[i].Withdrawn = dc.Withdrawn
			rollups.DailySeries[i].Resolved = dc.Resolved
		}
	}

	return &rollups, nil
}
