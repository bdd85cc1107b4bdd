package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	"relief-hub/app/utils/security"
	"relief-hub/app/utils/validator"
)

// SubmissionUsecase handles intake of new help requests.
type SubmissionUsecase struct {
	submissions port.SubmissionRepository
	validator   *validator.Validator
	logger      *slog.Logger
	now         func() time.Time
}

// NewSubmissionUsecase creates a new submission usecase
func NewSubmissionUsecase(submissions port.SubmissionRepository, v *validator.Validator, logger *slog.Logger) *SubmissionUsecase {
	return &SubmissionUsecase{
		submissions: submissions,
		validator:   v,
		logger:      logger.With("component", "submission_usecase"),
		now:         time.Now,
	}
}

// Submit validates the input, mints identifiers, and persists the request
// with its creation audit event. The clear edit token exists only in the
// returned receipt; storage holds its digest.
func (u *SubmissionUsecase) Submit(ctx context.Context, input *domain.SubmissionInput) (*domain.SubmissionReceipt, error) {
	if err := u.validator.Validate(input); err != nil {
		return nil, err
	}

	publicID := uuid.New().String()

	editToken, err := security.GenerateEditToken()
	if err != nil {
		u.logger.Error("edit token generation failed", "error", err)
		return nil, fmt.Errorf("failed to generate edit token: %w", err)
	}

	record := &domain.NewHelpRequest{
		PublicID:        publicID,
		Title:           input.Title,
		Description:     input.Description,
		RequestType:     domain.RequestType(input.RequestType),
		Urgency:         domain.Urgency(input.Urgency),
		PeopleAffected:  input.PeopleAffected,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Status:          domain.StatusActive,
		ContactNumber:   input.ContactNumber,
		ContactLast4:    security.ContactLast4(input.ContactNumber),
		EditTokenDigest: security.DigestToken(editToken),
		CreatedAt:       u.now().UTC(),
	}

	if err := u.submissions.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store submission: %w", err)
	}

	u.logger.Info("help request submitted",
		"public_id", publicID,
		"request_type", record.RequestType,
		"urgency", record.Urgency)

	return &domain.SubmissionReceipt{
		PublicID:  publicID,
		EditToken: editToken,
	}, nil
}
