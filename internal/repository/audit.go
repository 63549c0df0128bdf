package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tastebookhq/tastebook/domain"
)

// auditRecorder appends audit entries, filling in the event id, request
// provenance and timestamp. Storage failures are logged and swallowed:
// the audit trail is best-effort logging, never a reason to fail the
// moderation action that already succeeded.
type auditRecorder struct {
	repo domain.AuditRepository
}

var _ domain.AuditRecorder = (*auditRecorder)(nil)

func NewAuditRecorder(repo domain.AuditRepository) *auditRecorder {
	return &auditRecorder{repo: repo}
}

func (r *auditRecorder) Record(ctx context.Context, e domain.AuditEntry) {
	e.EventID = uuid.NewString()
	e.CreatedAt = time.Now()

	prov := domain.ProvenanceFrom(ctx)
	if e.IP == "" {
		e.IP = prov.IP
	}
	if e.UserAgent == "" {
		e.UserAgent = prov.UserAgent
	}

	if err := r.repo.Store(ctx, &e); err != nil {
		logrus.WithFields(logrus.Fields{
			"event_id":    e.EventID,
			"action":      e.Action,
			"entity_type": e.EntityType,
		}).Errorf("failed to write audit entry: %v", err)
	}
}
