package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type RecipeRepository struct {
	mock.Mock
}

func (m *RecipeRepository) GetByID(ctx context.Context, id int64) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	var r *domain.Recipe
	if v := args.Get(0); v != nil {
		r = v.(*domain.Recipe)
	}
	return r, args.Error(1)
}

func (m *RecipeRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *RecipeRepository) UpdateRating(ctx context.Context, id int64, stats domain.RatingStats) error {
	args := m.Called(ctx, id, stats)
	return args.Error(0)
}

func (m *RecipeRepository) Reject(ctx context.Context, id int64, rejection domain.RecipeRejection) error {
	args := m.Called(ctx, id, rejection)
	return args.Error(0)
}
