package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"relief-hub/app/domain"
	"relief-hub/app/port"
)

// ReportRepository implements port.ReportRepository for PostgreSQL
type ReportRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewReportRepository creates a new PostgreSQL report repository
func NewReportRepository(db DatabaseIface, logger *slog.Logger) port.ReportRepository {
	return &ReportRepository{
		db:     db,
		logger: logger.With("component", "report_repository"),
	}
}

// CountByStatus counts the entire public view grouped by status
func (r *ReportRepository) CountByStatus(ctx context.Context) (map[domain.Status]int, error) {
	query := `SELECT status, COUNT(*) FROM v_public_help_requests GROUP BY status`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Status]int)
	for rows.Next() {
		var status domain.Status
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read status counts: %w", err)
	}

	return counts, nil
}

// CountByUrgency counts the entire public view grouped by urgency
func (r *ReportRepository) CountByUrgency(ctx context.Context) (map[domain.Urgency]int, error) {
	query := `SELECT urgency, COUNT(*) FROM v_public_help_requests GROUP BY urgency`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count by urgency: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.Urgency]int)
	for rows.Next() {
		var urgency domain.Urgency
		var count int
		if err := rows.Scan(&urgency, &count); err != nil {
			return nil, fmt.Errorf("failed to scan urgency count: %w", err)
		}
		counts[urgency] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read urgency counts: %w", err)
	}

	return counts, nil
}

// DailyCounts returns per-day per-status creation counts keyed by the
// calendar day in YYYY-MM-DD form. Days with no rows are absent.
func (r *ReportRepository) DailyCounts(ctx context.Context, windowDays int) (map[string]domain.DailyCount, error) {
	query := `
		SELECT
			to_char(created_at::date, 'YYYY-MM-DD') AS day,
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'withdrawn'),
			COUNT(*) FILTER (WHERE status = 'resolved')
		FROM v_public_help_requests
		WHERE created_at >= CURRENT_DATE - ($1 - 1) * INTERVAL '1 day'
		GROUP BY day`

	rows, err := r.db.Query(ctx, query, windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]domain.DailyCount)
	for rows.Next() {
		var dc domain.DailyCount
		if err := rows.Scan(&dc.Date, &dc.Active, &dc.Withdrawn, &dc.Resolved); err != nil {
			return nil, fmt.Errorf("failed to scan daily count: %w", err)
		}
		counts[dc.Date] = dc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read daily counts: %w", err)
	}

	return counts, nil
}
