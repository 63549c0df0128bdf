package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/rest/request"
	"github.com/tastebookhq/tastebook/internal/rest/response"
)

// ModerationHandler is the admin comment moderation surface.
type ModerationHandler struct {
	Service domain.ModerationUsecase
}

func NewModerationHandler(svc domain.ModerationUsecase) *ModerationHandler {
	return &ModerationHandler{
		Service: svc,
	}
}

// FetchComments lists comments of any status for the moderation queue.
func (h *ModerationHandler) FetchComments(c *gin.Context) {
	filter := domain.CommentFilter{
		Status: domain.CommentStatus(c.Query("status")),
	}
	filter.RecipeID = queryInt64(c, "recipe_id")
	if rated := c.Query("rated"); rated == "true" || rated == "false" {
		val := rated == "true"
		filter.Rated = &val
	}

	window := parseListWindow(c)

	ctx := c.Request.Context()
	comments, pageInfo, err := h.Service.Fetch(ctx, filter, window)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentListFromDomain(comments, pageInfo))
}

// ApproveComment transitions a comment to approved.
func (h *ModerationHandler) ApproveComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Approve(ctx, id, actor)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// HideComment transitions a comment to hidden with an optional reason.
func (h *ModerationHandler) HideComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.HideComment
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	comment, err := h.Service.Hide(ctx, id, actor, req.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentFromDomain(comment))
}

// DeleteComment hard-removes a comment. Unlike hide, this is
// irreversible.
func (h *ModerationHandler) DeleteComment(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	var actor *domain.Actor
	if a, ok := actorFrom(c); ok {
		actor = &a
	}

	ctx := c.Request.Context()
	if err := h.Service.Delete(ctx, id, actor); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// BulkModerate applies approve or hide to a set of comments.
func (h *ModerationHandler) BulkModerate(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.BulkModerate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	result, err := h.Service.BulkModerate(ctx, req.IDs, domain.ModerationAction(req.Action), actor, req.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CommentStats returns aggregate comment counts for the dashboard.
func (h *ModerationHandler) CommentStats(c *gin.Context) {
	ctx := c.Request.Context()
	stats, err := h.Service.Stats(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
