package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/domain/mocks"
	"github.com/tastebookhq/tastebook/internal/rest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var admin = domain.Actor{ID: 50, Email: "admin@tastebook.test", Role: domain.RoleAdmin}

// withActor mimics the auth middleware for handler tests.
func withActor(actor domain.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("actor", actor)
		c.Next()
	}
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func moderationRouter(svc domain.ModerationUsecase) *gin.Engine {
	handler := rest.NewModerationHandler(svc)
	router := gin.New()
	grp := router.Group("/admin", withActor(admin))
	grp.GET("/comments", handler.FetchComments)
	grp.GET("/comments/stats", handler.CommentStats)
	grp.POST("/comments/bulk", handler.BulkModerate)
	grp.POST("/comments/:id/approve", handler.ApproveComment)
	grp.POST("/comments/:id/hide", handler.HideComment)
	grp.DELETE("/comments/:id", handler.DeleteComment)
	return router
}

func TestFetchComments(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	rated := true
	wantFilter := domain.CommentFilter{RecipeID: 10, Status: domain.CommentPending, Rated: &rated}
	svc.On("Fetch", mock.Anything, wantFilter, mock.AnythingOfType("domain.ListWindow")).
		Return([]domain.Comment{{ID: 1, RecipeID: 10, Status: domain.CommentPending}},
			domain.PageInfo{Total: 1}, nil)

	rec := perform(moderationRouter(svc), http.MethodGet,
		"/admin/comments?status=pending&recipe_id=10&rated=true", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestFetchCommentsPageModeWins(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Fetch", mock.Anything, mock.AnythingOfType("domain.CommentFilter"),
		mock.MatchedBy(func(w domain.ListWindow) bool {
			return w.Page == 2 && w.Cursor == "abc" && w.PageMode()
		})).
		Return([]domain.Comment{}, domain.PageInfo{}, nil)

	rec := perform(moderationRouter(svc), http.MethodGet, "/admin/comments?page=2&cursor=abc", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestApproveComment(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Approve", mock.Anything, int64(1), admin).
		Return(&domain.Comment{ID: 1, RecipeID: 10, Status: domain.CommentApproved}, nil)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/1/approve", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "approved", body["status"])
}

func TestApproveCommentNotFound(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Approve", mock.Anything, int64(404), admin).Return(nil, domain.ErrNotFound)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/404/approve", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body rest.ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestApproveCommentBadPathID(t *testing.T) {
	svc := new(mocks.ModerationUsecase)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/banana/approve", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	svc.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveCommentUnauthenticated(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	handler := rest.NewModerationHandler(svc)
	router := gin.New()
	router.POST("/admin/comments/:id/approve", handler.ApproveComment)

	rec := perform(router, http.MethodPost, "/admin/comments/1/approve", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHideComment(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Hide", mock.Anything, int64(1), admin, "spam").
		Return(&domain.Comment{ID: 1, Status: domain.CommentHidden, ModerationReason: "spam"}, nil)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/1/hide",
		map[string]string{"reason": "spam"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

// An empty request body is a valid hide with no reason.
func TestHideCommentNoBody(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Hide", mock.Anything, int64(1), admin, "").
		Return(&domain.Comment{ID: 1, Status: domain.CommentHidden}, nil)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/1/hide", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestDeleteComment(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Delete", mock.Anything, int64(1), &admin).Return(nil)

	rec := perform(moderationRouter(svc), http.MethodDelete, "/admin/comments/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestBulkModerate(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	result := &domain.BulkResult{
		Successful: []domain.BulkSuccess{{CommentID: 1, RecipeID: 10}},
		Failed:     []domain.BulkFailure{{CommentID: 2, Reason: "not found"}},
		Aggregates: map[int64]domain.RatingStats{},
	}
	svc.On("BulkModerate", mock.Anything, []int64{1, 2}, domain.ActionApprove, admin, "").
		Return(result, nil)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/bulk",
		map[string]any{"ids": []int64{1, 2}, "action": "approve"})
	assert.Equal(t, http.StatusOK, rec.Code)

	var body domain.BulkResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Successful, 1)
	assert.Len(t, body.Failed, 1)
}

// An unknown action reaches the usecase and comes back as INVALID_ACTION
// instead of a generic binding error.
func TestBulkModerateInvalidAction(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("BulkModerate", mock.Anything, []int64{1}, domain.ModerationAction("promote"), admin, "").
		Return(nil, domain.ErrInvalidAction)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/bulk",
		map[string]any{"ids": []int64{1}, "action": "promote"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body rest.ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_ACTION", body.Code)
}

func TestBulkModerateMissingIDs(t *testing.T) {
	svc := new(mocks.ModerationUsecase)

	rec := perform(moderationRouter(svc), http.MethodPost, "/admin/comments/bulk",
		map[string]any{"action": "approve"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "BulkModerate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentStats(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Stats", mock.Anything).Return(&domain.CommentStats{
		Total:    20,
		ByStatus: map[domain.CommentStatus]int64{domain.CommentApproved: 15},
		Rated:    12,
		Last7d:   4,
	}, nil)

	rec := perform(moderationRouter(svc), http.MethodGet, "/admin/comments/stats", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body domain.CommentStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(20), body.Total)
}

// Raw store errors never leak through the wire error shape.
func TestStoreErrorsAreMasked(t *testing.T) {
	svc := new(mocks.ModerationUsecase)
	svc.On("Stats", mock.Anything).Return(nil, assert.AnError)

	rec := perform(moderationRouter(svc), http.MethodGet, "/admin/comments/stats", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body rest.ResponseError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.NotContains(t, body.Message, assert.AnError.Error())
}
