package port

import (
	"context"

	"relief-hub/app/domain"
)

// SubmissionUsecase defines the help request intake business logic interface
type SubmissionUsecase interface {
	// Submit validates the input, mints the public id and edit token, and
	// persists the request together with its creation audit event.
	Submit(ctx context.Context, input *domain.SubmissionInput) (*domain.SubmissionReceipt, error)
}

// SubmissionRepository defines write access for new help requests
type SubmissionRepository interface {
	// Create inserts the request row and its "created" audit event in one
	// transaction. Either both are persisted or neither is.
	Create(ctx context.Context, record *domain.NewHelpRequest) error
}
