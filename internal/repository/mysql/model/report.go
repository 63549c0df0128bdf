package model

import (
	"time"

	"github.com/tastebookhq/tastebook/domain"
)

// Report rows carry a uniqueness constraint over (reporter_id,
// target_type, target_id); a second report by the same reporter against
// the same target must fail at the store, never silently overwrite.
type Report struct {
	ID               int64      `gorm:"primaryKey;autoIncrement"`
	ReporterID       int64      `gorm:"column:reporter_id;not null;uniqueIndex:uniq_reporter_target"`
	TargetType       string     `gorm:"column:target_type;size:20;not null;uniqueIndex:uniq_reporter_target"`
	TargetID         int64      `gorm:"column:target_id;not null;uniqueIndex:uniq_reporter_target"`
	Reason           string     `gorm:"size:200;not null"`
	Description      string     `gorm:"size:1000"`
	Status           string     `gorm:"size:20;not null;default:'pending';index"`
	ResolutionAction *string    `gorm:"column:resolution_action;size:20"`
	ResolutionNote   *string    `gorm:"column:resolution_note;size:1000"`
	ResolvedBy       *int64     `gorm:"column:resolved_by"`
	ResolvedAt       *time.Time `gorm:"column:resolved_at;type:datetime"`
	CreatedAt        time.Time  `gorm:"type:datetime"`
}

func (Report) TableName() string {
	return "report"
}

func NewReportFromDomain(r *domain.Report) *Report {
	m := &Report{
		ID:          r.ID,
		ReporterID:  r.ReporterID,
		TargetType:  string(r.Target.Type),
		TargetID:    r.Target.ID,
		Reason:      r.Reason,
		Description: r.Description,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
	}
	if r.Resolution != nil {
		action := string(r.Resolution.Action)
		m.ResolutionAction = &action
		m.ResolutionNote = &r.Resolution.Note
		m.ResolvedBy = &r.Resolution.ResolvedBy
		m.ResolvedAt = &r.Resolution.ResolvedAt
	}
	return m
}

func (m *Report) ToDomain() domain.Report {
	r := domain.Report{
		ID: m.ID,
		Target: domain.ReportTarget{
			Type: domain.ReportTargetType(m.TargetType),
			ID:   m.TargetID,
		},
		Reason:      m.Reason,
		Description: m.Description,
		ReporterID:  m.ReporterID,
		Status:      domain.ReportStatus(m.Status),
		CreatedAt:   m.CreatedAt,
	}
	if m.ResolutionAction != nil {
		r.Resolution = &domain.Resolution{
			Action: domain.ResolutionAction(*m.ResolutionAction),
		}
		if m.ResolutionNote != nil {
			r.Resolution.Note = *m.ResolutionNote
		}
		if m.ResolvedBy != nil {
			r.Resolution.ResolvedBy = *m.ResolvedBy
		}
		if m.ResolvedAt != nil {
			r.Resolution.ResolvedAt = *m.ResolvedAt
		}
	}
	return r
}
