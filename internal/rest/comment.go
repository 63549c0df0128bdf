package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/internal/rest/request"
	"github.com/tastebookhq/tastebook/internal/rest/response"
)

// CommentHandler is the public comment surface: submission and the
// approved listing.
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

// CreateComment submits a new comment on a recipe. It always starts
// pending; readers will not see it until a moderator approves it.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	recipeID, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	actor, ok := actorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req request.CreateComment
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := req.ToDomain(recipeID, actor)

	ctx := c.Request.Context()
	if err := h.Service.Create(ctx, &comment); err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.NewCommentFromDomain(&comment))
}

// FetchCommentsByRecipe lists the approved comments of a recipe.
func (h *CommentHandler) FetchCommentsByRecipe(c *gin.Context) {
	recipeID, err := pathID(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	window := parseListWindow(c)

	ctx := c.Request.Context()
	comments, pageInfo, err := h.Service.FetchByRecipe(ctx, recipeID, window)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewCommentListFromDomain(comments, pageInfo))
}
