package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/domain/mocks"
	"github.com/tastebookhq/tastebook/internal/repository"
)

func TestRecordFillsEventIDAndTimestamp(t *testing.T) {
	repo := new(mocks.AuditRepository)
	recorder := repository.NewAuditRecorder(repo)

	var stored *domain.AuditEntry
	repo.On("Store", mock.Anything, mock.AnythingOfType("*domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.AuditEntry)
		}).Return(nil)

	recorder.Record(context.Background(), domain.AuditEntry{
		Action:     domain.AuditActionUpdate,
		EntityType: domain.AuditEntityComment,
		ActorID:    99,
	})

	require.NotNil(t, stored)
	_, err := uuid.Parse(stored.EventID)
	assert.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, int64(99), stored.ActorID)
}

func TestRecordPicksUpProvenance(t *testing.T) {
	repo := new(mocks.AuditRepository)
	recorder := repository.NewAuditRecorder(repo)

	var stored *domain.AuditEntry
	repo.On("Store", mock.Anything, mock.AnythingOfType("*domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*domain.AuditEntry)
		}).Return(nil)

	ctx := domain.WithProvenance(context.Background(), domain.Provenance{
		IP:        "203.0.113.9",
		UserAgent: "curl/8.5",
	})
	recorder.Record(ctx, domain.AuditEntry{Action: domain.AuditActionDelete, EntityType: domain.AuditEntityComment})

	require.NotNil(t, stored)
	assert.Equal(t, "203.0.113.9", stored.IP)
	assert.Equal(t, "curl/8.5", stored.UserAgent)
}

// A failed audit write is logged, never surfaced; Record has no error
// return at all.
func TestRecordSwallowsStoreFailure(t *testing.T) {
	repo := new(mocks.AuditRepository)
	recorder := repository.NewAuditRecorder(repo)

	repo.On("Store", mock.Anything, mock.AnythingOfType("*domain.AuditEntry")).
		Return(errors.New("audit table full"))

	assert.NotPanics(t, func() {
		recorder.Record(context.Background(), domain.AuditEntry{
			Action:     domain.AuditActionBulk,
			EntityType: domain.AuditEntityComment,
		})
	})
	repo.AssertExpectations(t)
}

func TestRecordGeneratesDistinctEventIDs(t *testing.T) {
	repo := new(mocks.AuditRepository)
	recorder := repository.NewAuditRecorder(repo)

	seen := map[string]bool{}
	repo.On("Store", mock.Anything, mock.AnythingOfType("*domain.AuditEntry")).
		Run(func(args mock.Arguments) {
			seen[args.Get(1).(*domain.AuditEntry).EventID] = true
		}).Return(nil)

	for i := 0; i < 5; i++ {
		recorder.Record(context.Background(), domain.AuditEntry{Action: domain.AuditActionCreate, EntityType: domain.AuditEntityReport})
	}
	assert.Len(t, seen, 5)
}
