package port

//go:generate mockgen -destination=../mocks/mock_ports.go -package=mocks relief-hub/app/port RequestRepository,ReportRepository,SubmissionRepository

import (
	"context"

	"relief-hub/app/domain"
)

// FeedUsecase defines the public feed business logic interface
type FeedUsecase interface {
	// GetFeed returns one filtered, paginated page of the public feed with
	// its page-level KPIs and pagination metadata.
	GetFeed(ctx context.Context, criteria domain.FilterCriteria) (*domain.FeedResult, error)

	// GetRequest looks up a single request by its public id.
	GetRequest(ctx context.Context, publicID string) (*domain.HelpRequest, error)
}

// RequestRepository defines public-view data access for help requests
type RequestRepository interface {
	// Query returns one page matching the criteria plus the total count of
	// the full filtered set, evaluated against the same predicates.
	Query(ctx context.Context, criteria domain.FilterCriteria) ([]domain.HelpRequest, int, error)

	// GetByPublicID returns domain.ErrRequestNotFound when no row matches.
	GetByPublicID(ctx context.Context, publicID string) (*domain.HelpRequest, error)
}
