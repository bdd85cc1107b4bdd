package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"relief-hub/app/domain"
	"relief-hub/app/mocks"
	"relief-hub/app/utils/logger"
)

func newReportUsecase(t *testing.T, repo *mocks.MockReportRepository, now time.Time) *ReportUsecase {
	t.Helper()

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	uc := NewReportUsecase(repo, testLogger)
	uc.now = func() time.Time { return now }
	return uc
}

func TestReportUsecase_GetRollups(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("aggregates with dense series", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportRepository(ctrl)
		uc := newReportUsecase(t, repo, now)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.Status]int{
			domain.StatusActive:   8,
			domain.StatusResolved: 2,
		}, nil)
		repo.EXPECT().CountByUrgency(gomock.Any()).Return(map[domain.Urgency]int{
			domain.UrgencyCritical: 3,
			domain.UrgencyMedium:   7,
		}, nil)
		repo.EXPECT().DailyCounts(gomock.Any(), 14).Return(map[string]domain.DailyCount{
			"2026-08-30": {Date: "2026-08-30", Active: 2, Resolved: 1},
			"2026-08-25": {Date: "2026-08-25", Withdrawn: 1},
		}, nil)

		rollups, err := uc.GetRollups(context.Background(), 14)
		require.NoError(t, err)

		assert.Equal(t, 10, rollups.Total)
		assert.Equal(t, 8, rollups.ByStatus[domain.StatusActive])
		// Statuses with no rows still appear, zeroed
		assert.Equal(t, 0, rollups.ByStatus[domain.StatusWithdrawn])
		assert.Equal(t, 3, rollups.ByUrgency[domain.UrgencyCritical])
		assert.Equal(t, 0, rollups.ByUrgency[domain.UrgencyLow])

		require.Len(t, rollups.DailySeries, 14)
		assert.Equal(t, "2026-08-17", rollups.DailySeries[0].Date)
		assert.Equal(t, "2026-08-30", rollups.DailySeries[13].Date)
		assert.Equal(t, 2, rollups.DailySeries[13].Active)
		assert.Equal(t, 1, rollups.DailySeries[13].Resolved)
		assert.Equal(t, 1, rollups.DailySeries[8].Withdrawn)
		// A quiet day stays present with zeros
		assert.Equal(t, domain.DailyCount{Date: "2026-08-18"}, rollups.DailySeries[1])
	})

	t.Run("read failure degrades to zeros", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportRepository(ctrl)
		uc := newReportUsecase(t, repo, now)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(nil, errors.New("connection refused"))

		rollups, err := uc.GetRollups(context.Background(), 14)
		require.NoError(t, err)

		assert.Equal(t, 0, rollups.Total)
		for _, status := range domain.Statuses {
			assert.Equal(t, 0, rollups.ByStatus[status])
		}
		require.Len(t, rollups.DailySeries, 14)
		for _, day := range rollups.DailySeries {
			assert.Zero(t, day.Active)
			assert.Zero(t, day.Withdrawn)
			assert.Zero(t, day.Resolved)
		}
	})

	t.Run("daily series failure degrades after counts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportRepository(ctrl)
		uc := newReportUsecase(t, repo, now)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.Status]int{domain.StatusActive: 5}, nil)
		repo.EXPECT().CountByUrgency(gomock.Any()).Return(map[domain.Urgency]int{}, nil)
		repo.EXPECT().DailyCounts(gomock.Any(), 7).Return(nil, errors.New("timeout"))

		rollups, err := uc.GetRollups(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 0, rollups.Total)
		require.Len(t, rollups.DailySeries, 7)
	})

	t.Run("invalid window falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockReportRepository(ctrl)
		uc := newReportUsecase(t, repo, now)

		repo.EXPECT().CountByStatus(gomock.Any()).Return(map[domain.Status]int{}, nil)
		repo.EXPECT().CountByUrgency(gomock.Any()).Return(map[domain.Urgency]int{}, nil)
		repo.EXPECT().DailyCounts(gomock.Any(), domain.DefaultReportWindowDays).Return(map[string]domain.DailyCount{}, nil)

		rollups, err := uc.GetRollups(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, rollups.DailySeries, domain.DefaultReportWindowDays)
	})
}
