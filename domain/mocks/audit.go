package mocks

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type AuditRepository struct {
	mock.Mock
}

func (m *AuditRepository) Store(ctx context.Context, e *domain.AuditEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// AuditRecorder captures recorded entries for assertions; Record never
// fails, matching the swallow-on-failure contract of the real recorder.
type AuditRecorder struct {
	mu      sync.Mutex
	Entries []domain.AuditEntry
}

func (m *AuditRecorder) Record(_ context.Context, e domain.AuditEntry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, e)
}

// Last returns the most recently recorded entry, or nil.
func (m *AuditRecorder) Last() *domain.AuditEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Entries) == 0 {
		return nil
	}
	return &m.Entries[len(m.Entries)-1]
}
