package rating_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tastebookhq/tastebook/domain"
	"github.com/tastebookhq/tastebook/domain/mocks"
	"github.com/tastebookhq/tastebook/internal/usecase/rating"
)

func TestRecompute(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	recipeRepo := new(mocks.RecipeRepository)
	svc := rating.NewService(commentRepo, recipeRepo)

	// Approved ratings {5, 4, 3} plus a freshly approved 2.
	want := domain.RatingStats{Avg: 3.5, Count: 4}
	commentRepo.On("AggregateRatings", mock.Anything, int64(10)).Return(want, nil)
	recipeRepo.On("UpdateRating", mock.Anything, int64(10), want).Return(nil)

	got, err := svc.Recompute(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	recipeRepo.AssertExpectations(t)
}

func TestRecomputeEmptyRecipe(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	recipeRepo := new(mocks.RecipeRepository)
	svc := rating.NewService(commentRepo, recipeRepo)

	// No countable comments yields a zero aggregate, still written out.
	zero := domain.RatingStats{}
	commentRepo.On("AggregateRatings", mock.Anything, int64(10)).Return(zero, nil)
	recipeRepo.On("UpdateRating", mock.Anything, int64(10), zero).Return(nil)

	got, err := svc.Recompute(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, zero, got)
}

// Recompute is a pure function of comment state; running it twice in a
// row writes the same aggregate both times.
func TestRecomputeIdempotent(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	recipeRepo := new(mocks.RecipeRepository)
	svc := rating.NewService(commentRepo, recipeRepo)

	want := domain.RatingStats{Avg: 4.25, Count: 8}
	commentRepo.On("AggregateRatings", mock.Anything, int64(10)).Return(want, nil).Twice()
	recipeRepo.On("UpdateRating", mock.Anything, int64(10), want).Return(nil).Twice()

	for i := 0; i < 2; i++ {
		got, err := svc.Recompute(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	commentRepo.AssertExpectations(t)
	recipeRepo.AssertExpectations(t)
}

func TestRecomputeAggregateFailure(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	recipeRepo := new(mocks.RecipeRepository)
	svc := rating.NewService(commentRepo, recipeRepo)

	boom := errors.New("query timeout")
	commentRepo.On("AggregateRatings", mock.Anything, int64(10)).Return(domain.RatingStats{}, boom)

	_, err := svc.Recompute(context.Background(), 10)
	assert.ErrorIs(t, err, boom)
	recipeRepo.AssertNotCalled(t, "UpdateRating", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecomputeWriteFailure(t *testing.T) {
	commentRepo := new(mocks.CommentRepository)
	recipeRepo := new(mocks.RecipeRepository)
	svc := rating.NewService(commentRepo, recipeRepo)

	stats := domain.RatingStats{Avg: 5, Count: 1}
	commentRepo.On("AggregateRatings", mock.Anything, int64(10)).Return(stats, nil)
	recipeRepo.On("UpdateRating", mock.Anything, int64(10), stats).Return(errors.New("deadlock"))

	_, err := svc.Recompute(context.Background(), 10)
	assert.Error(t, err)
}
