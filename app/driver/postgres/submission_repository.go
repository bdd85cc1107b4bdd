package postgres

import (
	"context"
	"log/slog"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	apperrors "relief-hub/app/utils/errors"
)

// SubmissionRepository implements port.SubmissionRepository for PostgreSQL
type SubmissionRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db DatabaseIface, logger *slog.Logger) port.SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger.With("component", "submission_repository"),
	}
}

// Create inserts the help request and its creation audit event in one
// transaction. A failure on either statement rolls back both.
func (r *SubmissionRepository) Create(ctx context.Context, record *domain.NewHelpRequest) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.logger.Error("failed to begin transaction", "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	insertRequest := `
		INSERT INTO help_requests (
			public_id, title, description, request_type, urgency,
			people_affected, latitude, longitude, status,
			contact_number, contact_last4, edit_token_digest, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13
		)`

	if _, err := tx.Exec(ctx, insertRequest,
		record.PublicID,
		record.Title,
		record.Description,
		record.RequestType,
		record.Urgency,
		record.PeopleAffected,
		record.Latitude,
		record.Longitude,
		record.Status,
		record.ContactNumber,
		record.ContactLast4,
		record.EditTokenDigest,
		record.CreatedAt,
	); err != nil {
		r.logger.Error("failed to insert help request", "public_id", record.PublicID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to insert help request", err)
	}

	insertEvent := `
		INSERT INTO events (request_public_id, event_type, created_at)
		VALUES ($1, $2, $3)`

	if _, err := tx.Exec(ctx, insertEvent, record.PublicID, "created", record.CreatedAt); err != nil {
		r.logger.Error("failed to insert audit event", "public_id", record.PublicID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to insert audit event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error("failed to commit submission", "public_id", record.PublicID, "error", err)
		return apperrors.Wrap(apperrors.ErrCodeDatabaseError, "failed to commit submission", err)
	}

	r.logger.Info("help request stored", "public_id", record.PublicID, "urgency", record.Urgency)
	return nil
}
