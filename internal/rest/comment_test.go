package rest_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/domain/mocks"
	"github.com/tastebookhq/tastebook/internal/rest"
)

func commentRouter(svc domain.CommentUsecase) *gin.Engine {
	handler := rest.NewCommentHandler(svc)
	router := gin.New()
	router.GET("/recipes/:id/comments", handler.FetchCommentsByRecipe)
	router.POST("/recipes/:id/comments", withActor(reporter), handler.CreateComment)
	return router
}

func TestCreateComment(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.RecipeID == 10 && c.UserID == reporter.ID &&
			c.Content == "perfect weeknight dinner" && c.Rating != nil && *c.Rating == 5
	})).Return(nil)

	rec := perform(commentRouter(svc), http.MethodPost, "/recipes/10/comments",
		map[string]any{"content": "perfect weeknight dinner", "rating": 5})
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateCommentWithoutRating(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.Rating == nil
	})).Return(nil)

	rec := perform(commentRouter(svc), http.MethodPost, "/recipes/10/comments",
		map[string]any{"content": "thanks for sharing"})
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCommentValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing content", map[string]any{"rating": 5}},
		{"rating too high", map[string]any{"content": "ok", "rating": 6}},
		{"rating too low", map[string]any{"content": "ok", "rating": 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(mocks.CommentUsecase)
			rec := perform(commentRouter(svc), http.MethodPost, "/recipes/10/comments", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCommentUnauthenticated(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	handler := rest.NewCommentHandler(svc)
	router := gin.New()
	router.POST("/recipes/:id/comments", handler.CreateComment)

	rec := perform(router, http.MethodPost, "/recipes/10/comments",
		map[string]any{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateCommentRecipeMissing(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).
		Return(domain.ErrNotFound)

	rec := perform(commentRouter(svc), http.MethodPost, "/recipes/404/comments",
		map[string]any{"content": "hello"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFetchCommentsByRecipe(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	svc.On("FetchByRecipe", mock.Anything, int64(10), mock.AnythingOfType("domain.ListWindow")).
		Return([]domain.Comment{
			{ID: 1, RecipeID: 10, Content: "so good", Status: domain.CommentApproved},
		}, domain.PageInfo{Total: 1, HasNext: false}, nil)

	rec := perform(commentRouter(svc), http.MethodGet, "/recipes/10/comments?limit=20", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	items := body["items"].([]any)
	assert.Len(t, items, 1)
	assert.Equal(t, float64(1), body["total"])
}

func TestFetchCommentsByRecipeBadID(t *testing.T) {
	svc := new(mocks.CommentUsecase)

	rec := perform(commentRouter(svc), http.MethodGet, "/recipes/0/comments", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "FetchByRecipe", mock.Anything, mock.Anything, mock.Anything)
}
