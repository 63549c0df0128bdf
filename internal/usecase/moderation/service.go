package moderation

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tastebookhq/tastebook/domain"
)

// service is the comment moderation state machine and bulk operator.
//
// Every mutation follows the same strict per-request ordering: mutate the
// comment, recompute the recipe's rating aggregate when the set of
// counted comments may have changed, then append the audit entry. There
// is no rollback across those steps; the audit trail is best-effort
// logging, not a commit log.
type service struct {
	commentRepo domain.CommentRepository
	rating      domain.RatingUsecase
	audit       domain.AuditRecorder
	stats       domain.StatsSource
}

var _ domain.ModerationUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, rating domain.RatingUsecase, audit domain.AuditRecorder, stats domain.StatsSource) *service {
	return &service{
		commentRepo: commentRepo,
		rating:      rating,
		audit:       audit,
		stats:       stats,
	}
}

func (s *service) Fetch(ctx context.Context, filter domain.CommentFilter, window domain.ListWindow) ([]domain.Comment, domain.PageInfo, error) {
	return s.commentRepo.Fetch(ctx, filter, window)
}

func (s *service) Approve(ctx context.Context, id int64, actor domain.Actor) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.commentRepo.UpdateModeration(ctx, id, domain.CommentApproved, actor.ID, now, ""); err != nil {
		return nil, err
	}
	comment.Status = domain.CommentApproved
	comment.ModeratedBy = &actor.ID
	comment.ModeratedAt = &now
	comment.ModerationReason = ""

	metadata := map[string]any{
		"recipe_id":  comment.RecipeID,
		"had_rating": comment.HasRating(),
	}
	if comment.HasRating() {
		metadata["rating"] = *comment.Rating
	}

	// A just-approved rated comment always needs to be counted, so the
	// recompute is unconditional on prior status.
	var recomputeErr error
	if comment.HasRating() {
		stats, err := s.rating.Recompute(ctx, comment.RecipeID)
		if err != nil {
			recomputeErr = err
			metadata["aggregate_error"] = err.Error()
		} else {
			metadata["aggregate"] = stats
		}
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionUpdate,
		EntityType: domain.AuditEntityComment,
		EntityID:   &comment.ID,
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		ActorRole:  actor.Role,
		Metadata:   metadata,
	})

	if recomputeErr != nil {
		return comment, recomputeErr
	}
	return comment, nil
}

func (s *service) Hide(ctx context.Context, id int64, actor domain.Actor, reason string) (*domain.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Capture prior state before mutating: only a comment that was both
	// approved and rated can currently be counted in the aggregate.
	wasApproved := comment.Status == domain.CommentApproved
	hadRating := comment.HasRating()

	now := time.Now()
	if err := s.commentRepo.UpdateModeration(ctx, id, domain.CommentHidden, actor.ID, now, reason); err != nil {
		return nil, err
	}
	priorStatus := comment.Status
	comment.Status = domain.CommentHidden
	comment.ModeratedBy = &actor.ID
	comment.ModeratedAt = &now
	comment.ModerationReason = reason

	metadata := map[string]any{
		"recipe_id":    comment.RecipeID,
		"prior_status": priorStatus,
		"was_approved": wasApproved,
		"had_rating":   hadRating,
		"reason":       reason,
	}

	// Skipping the recompute for never-counted comments is purely an
	// optimization; recomputing anyway would land on the same stats.
	var recomputeErr error
	if wasApproved && hadRating {
		stats, err := s.rating.Recompute(ctx, comment.RecipeID)
		if err != nil {
			recomputeErr = err
			metadata["aggregate_error"] = err.Error()
		} else {
			metadata["aggregate"] = stats
		}
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionUpdate,
		EntityType: domain.AuditEntityComment,
		EntityID:   &comment.ID,
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		ActorRole:  actor.Role,
		Metadata:   metadata,
	})

	if recomputeErr != nil {
		return comment, recomputeErr
	}
	return comment, nil
}

func (s *service) Delete(ctx context.Context, id int64, actor *domain.Actor) error {
	act := domain.OrSystem(actor)

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return err
	}

	metadata := map[string]any{
		"recipe_id":  comment.RecipeID,
		"status":     comment.Status,
		"had_rating": comment.HasRating(),
	}

	var recomputeErr error
	if comment.HasRating() {
		stats, err := s.rating.Recompute(ctx, comment.RecipeID)
		if err != nil {
			recomputeErr = err
			metadata["aggregate_error"] = err.Error()
		} else {
			metadata["aggregate"] = stats
		}
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionDelete,
		EntityType: domain.AuditEntityComment,
		EntityID:   &comment.ID,
		ActorID:    act.ID,
		ActorEmail: act.Email,
		ActorRole:  act.Role,
		Metadata:   metadata,
	})

	return recomputeErr
}

func (s *service) BulkModerate(ctx context.Context, ids []int64, action domain.ModerationAction, actor domain.Actor, reason string) (*domain.BulkResult, error) {
	if !action.Valid() {
		return nil, domain.ErrInvalidAction
	}

	valid := make([]int64, 0, len(ids))
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if id > 0 && !seen[id] {
			seen[id] = true
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return nil, domain.ErrInvalidIDs
	}

	comments, err := s.commentRepo.GetByIDs(ctx, valid)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, domain.ErrNotFound
	}

	status := domain.CommentApproved
	if action == domain.ActionHide {
		status = domain.CommentHidden
	}

	result := &domain.BulkResult{
		Successful: []domain.BulkSuccess{},
		Failed:     []domain.BulkFailure{},
		Aggregates: map[int64]domain.RatingStats{},
	}

	// Sequential on purpose: partial-failure bookkeeping and the
	// per-recipe dedup below must stay deterministic.
	now := time.Now()
	for _, comment := range comments {
		wasApproved := comment.Status == domain.CommentApproved
		hadRating := comment.HasRating()

		if err := s.commentRepo.UpdateModeration(ctx, comment.ID, status, actor.ID, now, reason); err != nil {
			result.Failed = append(result.Failed, domain.BulkFailure{
				CommentID: comment.ID,
				Reason:    err.Error(),
			})
			continue
		}
		result.Successful = append(result.Successful, domain.BulkSuccess{
			CommentID:   comment.ID,
			RecipeID:    comment.RecipeID,
			HadRating:   hadRating,
			WasApproved: wasApproved,
		})
	}

	// Recompute once per distinct recipe, in first-seen order.
	var recipeOrder []int64
	needsRecompute := make(map[int64]bool)
	for _, success := range result.Successful {
		affects := false
		switch action {
		case domain.ActionApprove:
			affects = success.HadRating
		case domain.ActionHide:
			affects = success.WasApproved && success.HadRating
		}
		if affects && !needsRecompute[success.RecipeID] {
			needsRecompute[success.RecipeID] = true
			recipeOrder = append(recipeOrder, success.RecipeID)
		}
	}

	for _, recipeID := range recipeOrder {
		stats, err := s.rating.Recompute(ctx, recipeID)
		if err != nil {
			logrus.Errorf("bulk moderation: failed to recompute rating for recipe %d: %v", recipeID, err)
			continue
		}
		result.Aggregates[recipeID] = stats
	}

	s.audit.Record(ctx, domain.AuditEntry{
		Action:     domain.AuditActionBulk,
		EntityType: domain.AuditEntityComment,
		ActorID:    actor.ID,
		ActorEmail: actor.Email,
		ActorRole:  actor.Role,
		Metadata: map[string]any{
			"moderation_action": action,
			"reason":            reason,
			"requested":         len(valid),
			"successful":        len(result.Successful),
			"failed":            len(result.Failed),
			"aggregates":        result.Aggregates,
		},
	})

	return result, nil
}

func (s *service) Stats(ctx context.Context) (*domain.CommentStats, error) {
	return s.stats.CommentStats(ctx)
}
