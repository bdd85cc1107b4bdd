package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	apperrors "relief-hub/app/utils/errors"
)

// selectColumns are the public-safe columns of the help requests view,
// in scan order.
const selectColumns = `public_id, title, description, request_type, urgency,
		people_affected, latitude, longitude, status, created_at, updated_at`

// RequestRepository implements port.RequestRepository for PostgreSQL.
// All reads go through the public view, which excludes contact details
// and token digests.
type RequestRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewRequestRepository creates a new PostgreSQL help request repository
func NewRequestRepository(db DatabaseIface, logger *slog.Logger) port.RequestRepository {
	return &RequestRepository{
		db:     db,
		logger: logger.With("component", "request_repository"),
	}
}

// buildWhere assembles the WHERE clause from the present filters only.
// Every value travels as a bound parameter; nothing from the caller is
// interpolated into the SQL text.
func buildWhere(criteria domain.FilterCriteria) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if criteria.Urgency != "" {
		args = append(args, criteria.Urgency)
		conds = append(conds, fmt.Sprintf("urgency = $%d", len(args)))
	}

	if criteria.FreeText != "" {
		args = append(args, "%"+criteria.FreeText+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}

	if criteria.Box != nil {
		args = append(args, criteria.Box.MinLon, criteria.Box.MaxLon)
		conds = append(conds, fmt.Sprintf("longitude BETWEEN $%d AND $%d", len(args)-1, len(args)))
		args = append(args, criteria.Box.MinLat, criteria.Box.MaxLat)
		conds = append(conds, fmt.Sprintf("latitude BETWEEN $%d AND $%d", len(args)-1, len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Query returns one page of the filtered feed plus the total count of the
// full filtered set. Both statements share the same predicates so the count
// always describes the set the page was cut from.
func (r *RequestRepository) Query(ctx context.Context, criteria domain.FilterCriteria) ([]domain.HelpRequest, int, error) {
	criteria = criteria.Normalize()
	where, args := buildWhere(criteria)

	pageQuery := fmt.Sprintf(
		`SELECT %s FROM v_public_help_requests%s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`,
		selectColumns, where, len(args)+1, len(args)+2)

	pageArgs := append(append([]interface{}{}, args...), criteria.PageSize, criteria.Offset())

	rows, err := r.db.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		r.logger.Error("feed query failed", "error", err)
		return nil, 0, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to query help requests", err)
	}
	defer rows.Close()

	requests := make([]domain.HelpRequest, 0, criteria.PageSize)
	for rows.Next() {
		var req domain.HelpRequest
		if err := rows.Scan(
			&req.PublicID,
			&req.Title,
			&req.Description,
			&req.RequestType,
			&req.Urgency,
			&req.PeopleAffected,
			&req.Latitude,
			&req.Longitude,
			&req.Status,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, 0, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to scan help request", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to read help requests", err)
	}

	countQuery := "SELECT COUNT(*) FROM v_public_help_requests" + where

	var total int
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		r.logger.Error("feed count failed", "error", err)
		return nil, 0, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to count help requests", err)
	}

	return requests, total, nil
}

// GetByPublicID returns a single request from the public view
func (r *RequestRepository) GetByPublicID(ctx context.Context, publicID string) (*domain.HelpRequest, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM v_public_help_requests WHERE public_id = $1`,
		selectColumns)

	var req domain.HelpRequest
	err := r.db.QueryRow(ctx, query, publicID).Scan(
		&req.PublicID,
		&req.Title,
		&req.Description,
		&req.RequestType,
		&req.Urgency,
		&req.PeopleAffected,
		&req.Latitude,
		&req.Longitude,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRequestNotFound
		}
		r.logger.Error("request lookup failed", "public_id", publicID, "error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to get help request", err)
	}

	return &req, nil
}
