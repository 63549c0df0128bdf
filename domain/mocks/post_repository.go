package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tastebookhq/tastebook/domain"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	var p *domain.Post
	if v := args.Get(0); v != nil {
		p = v.(*domain.Post)
	}
	return p, args.Error(1)
}

func (m *PostRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PostRepository) UpdateStatus(ctx context.Context, id int64, status domain.PostStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *PostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
