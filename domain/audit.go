package domain

import (
	"context"
	"time"
)

// Audit action verbs. bulk covers batch operations whose entity id is
// meaningless for a single row.
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionBulk   = "bulk"
)

// Audited entity types.
const (
	AuditEntityComment = "comment"
	AuditEntityRecipe  = "recipe"
	AuditEntityPost    = "post"
	AuditEntityReport  = "report"
)

// AuditEntry is an immutable record of one moderation or report mutation.
// It is always written last, after the primary mutation succeeded, and is
// best-effort: a failed audit write never undoes the mutation.
type AuditEntry struct {
	ID         int64          `json:"id"`
	EventID    string         `json:"event_id"` // uuid, for cross-log correlation
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *int64         `json:"entity_id,omitempty"` // nil for bulk/system-wide actions
	ActorID    int64          `json:"actor_id"`
	ActorEmail string         `json:"actor_email"`
	ActorRole  string         `json:"actor_role"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// AuditRepository is the append-only audit store.
type AuditRepository interface {
	Store(ctx context.Context, e *AuditEntry) error
}

// AuditRecorder appends an audit entry, swallowing storage failures so
// that a logging outage can never block moderation. Implementations log
// the failure instead of returning it.
type AuditRecorder interface {
	Record(ctx context.Context, e AuditEntry)
}

// Provenance carries the request origin recorded on audit entries.
type Provenance struct {
	IP        string
	UserAgent string
}

type provenanceKey struct{}

// WithProvenance attaches request provenance to the context. The REST
// middleware sets it once per request; the audit recorder reads it back.
func WithProvenance(ctx context.Context, p Provenance) context.Context {
	return context.WithValue(ctx, provenanceKey{}, p)
}

// ProvenanceFrom extracts request provenance, zero-valued when absent.
func ProvenanceFrom(ctx context.Context) Provenance {
	p, _ := ctx.Value(provenanceKey{}).(Provenance)
	return p
}
