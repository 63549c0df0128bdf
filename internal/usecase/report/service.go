package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tastebookhq/tastebook/domain"
)

// service manages the report lifecycle and dispatches resolution side
// effects. A report is mutated exactly once, by resolution or rejection;
// terminal reports are never re-opened.
type service struct {
	reportRepo  domain.ReportRepository
	commentRepo domain.CommentRepository
	recipeRepo  domain.RecipeRepository
	postRepo    domain.PostRepository
	moderation  domain.ModerationUsecase
	dedup       domain.ReportDedupFilter
	audit       domain.AuditRecorder
	stats       domain.StatsSource
}

var _ domain.ReportUsecase = (*service)(nil)

func NewService(
	reportRepo domain.ReportRepository,
	commentRepo domain.CommentRepository,
	recipeRepo domain.RecipeRepository,
	postRepo domain.PostRepository,
	moderation domain.ModerationUsecase,
	dedup domain.ReportDedupFilter,
	audit domain.AuditRecorder,
	stats domain.StatsSource,
) *service {
	return &service{
		reportRepo:  reportRepo,
		commentRepo: commentRepo,
		recipeRepo:  recipeRepo,
		postRepo:    postRepo,
		moderation:  moderation,
		dedup:       dedup,
		audit:       audit,
		stats:       stats,
	}
}

func (s *service) targetExists(ctx context.Context, target domain.ReportTarget) (bool, error) {
	switch target.Type {
	case domain.TargetComment:
		_, err := s.commentRepo.GetByID(ctx, target.ID)
		if err == domain.ErrNotFound {
			return false, nil
		}
		return err == nil, err
	case domain.TargetRecipe:
		return s.recipeRepo.Exists(ctx, target.ID)
	case domain.TargetPost:
		return s.postRepo.Exists(ctx, target.ID)
	default:
		return false, domain.ErrBadParamInput
	}
}

func (s *service) Create(ctx context.Context, r *domain.Report) error {
	if !r.Target.Type.Valid() || r.Target.ID <= 0 {
		return domain.ErrBadParamInput
	}
	if strings.TrimSpace(r.Reason) == "" {
		return domain.ErrBadParamInput
	}

	exists, err := s.targetExists(ctx, r.Target)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrTargetNotFound
	}

	// Bloom fast path: a negative answer means this tuple was definitely
	// never reported, so the store lookup can be skipped. The unique
	// index stays the authority either way.
	checkStore := true
	if s.dedup != nil {
		mightExist, err := s.dedup.MightExist(ctx, r.ReporterID, r.Target)
		if err != nil {
			logrus.Warnf("report dedup filter unavailable: %v", err)
		} else {
			checkStore = mightExist
		}
	}
	if checkStore {
		reported, err := s.reportRepo.ExistsForTarget(ctx, r.ReporterID, r.Target)
		if err != nil {
			return err
		}
		if reported {
			return domain.ErrAlreadyReported
		}
	}

	r.Status = domain.ReportPending
	r.CreatedAt = time.Now()
	if err := s.reportRepo.Store(ctx, r); err != nil {
		return err
	}

	if s.dedup != nil {
		if err := s.dedup.Add(ctx, r.ReporterID, r.Target); err != nil {
			logrus.Warnf("failed to add report tuple to dedup filter: %v", err)
		}
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionCreate,
		EntityType: domain.AuditEntityReport,
		EntityID:   &r.ID,
		ActorID:    r.ReporterID,
		ActorRole:  domain.RoleUser,
		Metadata: map[string]any{
			"target_type": r.Target.Type,
			"target_id":   r.Target.ID,
			"reason":      r.Reason,
		},
	})

	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

func (s *service) Fetch(ctx context.Context, filter domain.ReportFilter, window domain.ListWindow) ([]domain.Report, domain.PageInfo, error) {
	return s.reportRepo.Fetch(ctx, filter, window)
}

// targetSnapshot captures the target's identifying content at resolution
// time, so the audit trail stays meaningful after the target is hidden
// or removed.
func (s *service) targetSnapshot(ctx context.Context, target domain.ReportTarget) map[string]any {
	snapshot := map[string]any{
		"target_type": target.Type,
		"target_id":   target.ID,
	}
	switch target.Type {
	case domain.TargetComment:
		if comment, err := s.commentRepo.GetByID(ctx, target.ID); err == nil {
			snapshot["content"] = comment.Content
			snapshot["author_id"] = comment.UserID
			snapshot["status"] = comment.Status
		}
	case domain.TargetRecipe:
		if recipe, err := s.recipeRepo.GetByID(ctx, target.ID); err == nil {
			snapshot["title"] = recipe.Title
			snapshot["author_id"] = recipe.UserID
			snapshot["status"] = recipe.Status
		}
	case domain.TargetPost:
		if post, err := s.postRepo.GetByID(ctx, target.ID); err == nil {
			snapshot["title"] = post.Title
			snapshot["author_id"] = post.UserID
			snapshot["status"] = post.Status
		}
	}
	return snapshot
}

// applySideEffect executes the effect a resolution implies. A failure is
// captured in the returned SideEffect, never propagated: the resolution
// itself still goes through.
func (s *service) applySideEffect(ctx context.Context, report *domain.Report, actor domain.Actor, req domain.ResolutionRequest) domain.SideEffect {
	switch req.Action {
	case domain.ResolutionNoAction:
		return domain.SideEffect{Kind: "none", Applied: true}

	case domain.ResolutionHidden:
		note := fmt.Sprintf("[report #%d] %s", report.ID, req.Note)
		switch report.Target.Type {
		case domain.TargetComment:
			if _, err := s.moderation.Hide(ctx, report.Target.ID, actor, note); err != nil {
				return domain.SideEffect{Kind: "comment_hidden", Error: err.Error()}
			}
			return domain.SideEffect{Kind: "comment_hidden", Applied: true}
		case domain.TargetPost:
			if err := s.postRepo.UpdateStatus(ctx, report.Target.ID, domain.PostHidden); err != nil {
				return domain.SideEffect{Kind: "post_hidden", Error: err.Error()}
			}
			return domain.SideEffect{Kind: "post_hidden", Applied: true}
		case domain.TargetRecipe:
			// Recipes have no hidden state; hide resolutions on a recipe
			// target resolve the report without touching the recipe.
			return domain.SideEffect{Kind: "none", Error: "hide is not applicable to recipe targets"}
		}

	case domain.ResolutionRemoved:
		switch report.Target.Type {
		case domain.TargetComment:
			if err := s.moderation.Delete(ctx, report.Target.ID, &actor); err != nil {
				return domain.SideEffect{Kind: "comment_removed", Error: err.Error()}
			}
			return domain.SideEffect{Kind: "comment_removed", Applied: true}
		case domain.TargetRecipe:
			// Asymmetric with comments on purpose: a recipe is rejected
			// with a record, not destroyed by a single report.
			rejection := domain.RecipeRejection{
				Reason:     fmt.Sprintf("[report #%d] %s", report.ID, req.Note),
				RejectedBy: actor.ID,
				RejectedAt: time.Now(),
			}
			if err := s.recipeRepo.Reject(ctx, report.Target.ID, rejection); err != nil {
				return domain.SideEffect{Kind: "recipe_rejected", Error: err.Error()}
			}
			return domain.SideEffect{Kind: "recipe_rejected", Applied: true}
		case domain.TargetPost:
			if err := s.postRepo.Delete(ctx, report.Target.ID); err != nil {
				return domain.SideEffect{Kind: "post_removed", Error: err.Error()}
			}
			return domain.SideEffect{Kind: "post_removed", Applied: true}
		}
	}

	return domain.SideEffect{Kind: "none", Error: "unknown side effect"}
}

func (s *service) Resolve(ctx context.Context, id int64, actor domain.Actor, req domain.ResolutionRequest) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !report.CanResolve() {
		return nil, domain.ErrReportAlreadyResolved
	}
	if !req.Action.Valid() {
		return nil, domain.ErrInvalidResolutionAction
	}

	priorStatus := report.Status

	// Snapshot before the side effect: hidden or removed targets may not
	// be readable afterwards.
	snapshot := s.targetSnapshot(ctx, report.Target)
	sideEffect := s.applySideEffect(ctx, report, actor, req)

	resolution := &domain.Resolution{
		Action:     req.Action,
		Note:       req.Note,
		ResolvedBy: actor.ID,
		ResolvedAt: time.Now(),
	}
	if err := s.reportRepo.UpdateResolution(ctx, id, domain.ReportResolved, resolution); err != nil {
		return nil, err
	}
	report.Status = domain.ReportResolved
	report.Resolution = resolution

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionUpdate,
		EntityType: domain.AuditEntityReport,
		EntityID:   &report.ID,
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		ActorRole:  actor.Role,
		Metadata: map[string]any{
			"prior_status": priorStatus,
			"resolution":   req.Action,
			"note":         req.Note,
			"target":       snapshot,
			"side_effect":  sideEffect,
		},
	})

	return report, nil
}

func (s *service) Reject(ctx context.Context, id int64, actor domain.Actor, note string) (*domain.Report, error) {
	report, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !report.CanResolve() {
		return nil, domain.ErrReportAlreadyResolved
	}

	priorStatus := report.Status
	resolution := &domain.Resolution{
		Action:     domain.ResolutionNoAction,
		Note:       note,
		ResolvedBy: actor.ID,
		ResolvedAt: time.Now(),
	}
	if err := s.reportRepo.UpdateResolution(ctx, id, domain.ReportRejected, resolution); err != nil {
		return nil, err
	}
	report.Status = domain.ReportRejected
	report.Resolution = resolution

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionUpdate,
		EntityType: domain.AuditEntityReport,
		EntityID:   &report.ID,
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		ActorRole:  actor.Role,
		Metadata: map[string]any{
			"prior_status": priorStatus,
			"rejected":     true,
			"note":         note,
		},
	})

	return report, nil
}

func (s *service) Stats(ctx context.Context) (*domain.ReportStats, error) {
	return s.stats.ReportStats(ctx)
}
