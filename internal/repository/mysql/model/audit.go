package model

import (
	"encoding/json"
	"time"

	"github.com/tastebookhq/tastebook/domain"
)

// AuditEntry rows are append-only; there is no update or delete path.
type AuditEntry struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EventID    string    `gorm:"column:event_id;size:36;not null;uniqueIndex"`
	Action     string    `gorm:"size:20;not null;index"`
	EntityType string    `gorm:"column:entity_type;size:20;not null;index"`
	EntityID   *int64    `gorm:"column:entity_id;index"`
	ActorID    int64     `gorm:"column:actor_id;not null;index"`
	ActorEmail string    `gorm:"column:actor_email;size:200"`
	ActorRole  string    `gorm:"column:actor_role;size:20"`
	Metadata   string    `gorm:"type:text"` // JSON-encoded metadata bag
	IP         string    `gorm:"size:45"`
	UserAgent  string    `gorm:"column:user_agent;size:500"`
	CreatedAt  time.Time `gorm:"type:datetime;index"`
}

func (AuditEntry) TableName() string {
	return "audit_entry"
}

func NewAuditEntryFromDomain(e *domain.AuditEntry) *AuditEntry {
	var metadata string
	if len(e.Metadata) > 0 {
		if raw, err := json.Marshal(e.Metadata); err == nil {
			metadata = string(raw)
		}
	}
	return &AuditEntry{
		ID:         e.ID,
		EventID:    e.EventID,
		Action:     e.Action,
		EntityType: e.EntityType,
		EntityID:   e.EntityID,
		ActorID:    e.ActorID,
		ActorEmail: e.ActorEmail,
		ActorRole:  e.ActorRole,
		Metadata:   metadata,
		IP:         e.IP,
		UserAgent:  e.UserAgent,
		CreatedAt:  e.CreatedAt,
	}
}

func (m *AuditEntry) ToDomain() domain.AuditEntry {
	entry := domain.AuditEntry{
		ID:         m.ID,
		EventID:    m.EventID,
		Action:     m.Action,
		EntityType: m.EntityType,
		EntityID:   m.EntityID,
		ActorID:    m.ActorID,
		ActorEmail: m.ActorEmail,
		ActorRole:  m.ActorRole,
		IP:         m.IP,
		UserAgent:  m.UserAgent,
		CreatedAt:  m.CreatedAt,
	}
	if m.Metadata != "" {
		_ = json.Unmarshal([]byte(m.Metadata), &entry.Metadata)
	}
	return entry
}
