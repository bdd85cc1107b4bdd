package usecase

import (
	"context"
	"log/slog"
	"time"

	"relief-hub/app/domain"
	"relief-hub/app/port"
	apperrors "relief-hub/app/utils/errors"
)

// FeedUsecase serves the public dashboard feed: one filtered page of help
// requests with page-level KPIs and pagination metadata.
type FeedUsecase struct {
	requests port.RequestRepository
	logger   *slog.Logger
	now      func() time.Time
}

// NewFeedUsecase creates a new feed usecase
func NewFeedUsecase(requests port.RequestRepository, logger *slog.Logger) *FeedUsecase {
	return &FeedUsecase{
		requests: requests,
		logger:   logger.With("component", "feed_usecase"),
		now:      time.Now,
	}
}

// GetFeed runs one feed query. A full-page render and a partial poll with
// the same criteria go through this exact path, so both see the same rows
// and the same KPI numbers.
func (u *FeedUsecase) GetFeed(ctx context.Context, criteria domain.FilterCriteria) (*domain.FeedResult, error) {
	criteria = criteria.Normalize()

	rows, total, err := u.requests.Query(ctx, criteria)
	if err != nil {
		u.logger.Error("feed query failed",
			"urgency", criteria.Urgency,
			"page", criteria.Page,
			"error", err)
		return nil, apperrors.Wrap(apperrors.ErrCodeServiceUnavailable, "failed to load feed", err)
	}

	result := &domain.FeedResult{
		Rows:       rows,
		Total:      total,
		KPIs:       domain.ComputeKPIs(rows, u.now()),
		Pagination: domain.NewPagination(criteria.Page, criteria.PageSize, total),
	}

	u.logger.Debug("feed loaded",
		"rows", len(rows),
		"total", total,
		"page", criteria.Page)

	return result, nil
}

// GetRequest looks up a single help request by public id
func (u *FeedUsecase) GetRequest(ctx context.Context, publicID string) (*domain.HelpRequest, error) {
	req, err := u.requests.GetByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	return req, nil
}
