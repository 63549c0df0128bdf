package domain

import (
	"context"
	"time"
)

// ReportTargetType tags the entity a report refers to. Every place a
// target is dereferenced switches on this tag explicitly.
type ReportTargetType string

const (
	TargetComment ReportTargetType = "comment"
	TargetRecipe  ReportTargetType = "recipe"
	TargetPost    ReportTargetType = "post"
)

// Valid reports whether the target type is in the allowed set.
func (t ReportTargetType) Valid() bool {
	switch t {
	case TargetComment, TargetRecipe, TargetPost:
		return true
	}
	return false
}

// ReportTarget identifies the reported entity.
type ReportTarget struct {
	Type ReportTargetType `json:"type"`
	ID   int64            `json:"id"`
}

// ReportStatus is the lifecycle state of a report.
//
// pending is the canonical "awaiting resolution" status; open is a legacy
// synonym still present in old rows and treated identically. reviewed
// marks a report an admin looked at without acting on; it is not
// resolvable. resolved and rejected are terminal.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportOpen     ReportStatus = "open"
	ReportReviewed ReportStatus = "reviewed"
	ReportResolved ReportStatus = "resolved"
	ReportRejected ReportStatus = "rejected"
)

// ResolutionAction is the effect chosen when resolving a report.
type ResolutionAction string

const (
	ResolutionNoAction ResolutionAction = "no_action"
	ResolutionHidden   ResolutionAction = "hidden"
	ResolutionRemoved  ResolutionAction = "removed"
)

// Valid reports whether the action is in the allowed resolution set.
func (a ResolutionAction) Valid() bool {
	switch a {
	case ResolutionNoAction, ResolutionHidden, ResolutionRemoved:
		return true
	}
	return false
}

// Resolution is the sub-record written when a report reaches a terminal
// status. Nil until then.
type Resolution struct {
	Action     ResolutionAction `json:"action"`
	Note       string           `json:"note"`
	ResolvedBy int64            `json:"resolved_by"`
	ResolvedAt time.Time        `json:"resolved_at"`
}

// Report is a user's complaint against a comment, recipe or post. At most
// one report may exist per (reporter, target type, target id); the store
// enforces this with a uniqueness constraint. Reports are mutated exactly
// once, by resolution, and never re-opened.
type Report struct {
	ID          int64         `json:"id"`
	Target      ReportTarget  `json:"target"`
	Reason      string        `json:"reason"`
	Description string        `json:"description,omitempty"`
	ReporterID  int64         `json:"reporter_id"`
	Status      ReportStatus  `json:"status"`
	Resolution  *Resolution   `json:"resolution,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// CanResolve reports whether the report is still awaiting resolution.
// Both pending and the legacy open status satisfy it.
func (r *Report) CanResolve() bool {
	return r.Status == ReportPending || r.Status == ReportOpen
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	Status     ReportStatus     // empty means any
	TargetType ReportTargetType // empty means any
	ReporterID int64            // zero means any
}

// ReportStats aggregates report counts for the admin dashboard.
type ReportStats struct {
	Total        int64                      `json:"total"`
	ByStatus     map[ReportStatus]int64     `json:"by_status"`
	ByTargetType map[ReportTargetType]int64 `json:"by_target_type"`
	ByReason     map[string]int64           `json:"by_reason"`
	Last7d       int64                      `json:"last_7d"`
}

// ResolutionRequest is the admin's resolution decision.
type ResolutionRequest struct {
	Action ResolutionAction
	Note   string
}

// SideEffect describes the outcome of the side effect a resolution
// implied. A failed delegated side effect is captured here instead of
// aborting the resolution; the report still transitions to resolved.
type SideEffect struct {
	Kind    string `json:"kind"` // none, comment_hidden, comment_removed, recipe_rejected, post_hidden, post_removed
	Applied bool   `json:"applied"`
	Error   string `json:"error,omitempty"`
}

// ReportRepository defines the contract for report persistence.
type ReportRepository interface {
	// Store creates a new report. Returns ErrAlreadyReported when the
	// (reporter, target) uniqueness constraint is violated.
	Store(ctx context.Context, r *Report) error

	// GetByID retrieves a report. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Report, error)

	// ExistsForTarget reports whether the reporter already filed a report
	// against the target.
	ExistsForTarget(ctx context.Context, reporterID int64, target ReportTarget) (bool, error)

	// Fetch returns a window of reports plus window metadata.
	Fetch(ctx context.Context, filter ReportFilter, window ListWindow) ([]Report, PageInfo, error)

	// UpdateResolution writes the terminal status and resolution
	// sub-record. Returns ErrNotFound if absent.
	UpdateResolution(ctx context.Context, id int64, status ReportStatus, res *Resolution) error

	// CountByStatus returns report counts grouped by status.
	CountByStatus(ctx context.Context) (map[ReportStatus]int64, error)

	// CountByTargetType returns report counts grouped by target type.
	CountByTargetType(ctx context.Context) (map[ReportTargetType]int64, error)

	// CountByReason returns report counts grouped by reason.
	CountByReason(ctx context.Context) (map[string]int64, error)

	// CountCreatedSince returns the number of reports created at or after
	// the given instant.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// ReportDedupFilter is a probabilistic fast path in front of the
// duplicate-report check. A negative answer is authoritative ("definitely
// never reported"); a positive one still requires the store lookup.
type ReportDedupFilter interface {
	Add(ctx context.Context, reporterID int64, target ReportTarget) error
	MightExist(ctx context.Context, reporterID int64, target ReportTarget) (bool, error)
}

// ReportUsecase is the report lifecycle and resolution surface.
type ReportUsecase interface {
	// Create files a new report. Returns ErrAlreadyReported for a
	// duplicate (reporter, target) tuple and ErrTargetNotFound when the
	// referenced entity does not exist.
	Create(ctx context.Context, r *Report) error

	// GetByID retrieves a report. Returns ErrNotFound if absent.
	GetByID(ctx context.Context, id int64) (*Report, error)

	// Fetch lists reports for the admin queue.
	Fetch(ctx context.Context, filter ReportFilter, window ListWindow) ([]Report, PageInfo, error)

	// Resolve executes the resolution decision: applies the implied side
	// effect, writes the resolution sub-record and transitions the report
	// to resolved. Returns ErrReportAlreadyResolved for terminal reports
	// and ErrInvalidResolutionAction for an unknown action.
	Resolve(ctx context.Context, id int64, actor Actor, req ResolutionRequest) (*Report, error)

	// Reject dismisses a report without side effects, transitioning it to
	// the terminal rejected status.
	Reject(ctx context.Context, id int64, actor Actor, note string) (*Report, error)

	// Stats returns aggregate report counts for the admin dashboard.
	Stats(ctx context.Context) (*ReportStats, error)
}
