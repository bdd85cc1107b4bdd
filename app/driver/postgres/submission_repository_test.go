package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"relief-hub/app/domain"
	"relief-hub/app/utils/logger"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSubmissionRepository(t *testing.T) (*SubmissionRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewSubmissionRepository(mockDB, testLogger).(*SubmissionRepository)

	return repo, mockDB
}

func testNewHelpRequest() *domain.NewHelpRequest {
	return &domain.NewHelpRequest{
		PublicID:        "5f1c2a34-0000-4000-8000-000000000001",
		Title:           "Family stranded on roof",
		Description:     "Four people on the roof, water rising",
		RequestType:     domain.RequestTypeRescue,
		Urgency:         domain.UrgencyCritical,
		PeopleAffected:  4,
		Latitude:        14.5995,
		Longitude:       120.9842,
		Status:          domain.StatusActive,
		ContactNumber:   "+639171234567",
		ContactLast4:    "4567",
		EditTokenDigest: "deadbeef",
		CreatedAt:       time.Now().UTC(),
	}
}

func TestSubmissionRepository_Create(t *testing.T) {
	t.Run("insert and audit event committed together", func(t *testing.T) {
		repo, mockDB := createTestSubmissionRepository(t)
		defer mockDB.Close()

		record := testNewHelpRequest()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO help_requests").
			WithArgs(
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
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("INSERT INTO events").
			WithArgs(record.PublicID, "created", record.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectCommit()

		err := repo.Create(context.Background(), record)
		require.NoError(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("event insert failure rolls back the request", func(t *testing.T) {
		repo, mockDB := createTestSubmissionRepository(t)
		defer mockDB.Close()

		record := testNewHelpRequest()

		mockDB.ExpectBegin()
		mockDB.ExpectExec("INSERT INTO help_requests").
			WithArgs(
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
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mockDB.ExpectExec("INSERT INTO events").
			WithArgs(record.PublicID, "created", record.CreatedAt).
			WillReturnError(errors.New("constraint violation"))
		mockDB.ExpectRollback()

		err := repo.Create(context.Background(), record)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to insert audit event")
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mockDB := createTestSubmissionRepository(t)
		defer mockDB.Close()

		mockDB.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := repo.Create(context.Background(), testNewHelpRequest())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to begin transaction")
	})
}
