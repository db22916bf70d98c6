package service

import (
	"context"

	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/repository"
	"github.com/stretchr/testify/mock"
)

type mockQuestionRepository struct {
	mock.Mock
}

func (m *mockQuestionRepository) List(ctx context.Context, filter repository.QuestionFilter) ([]model.Question, error) {
	args := m.Called(ctx, filter)
	questions, _ := args.Get(0).([]model.Question)
	return questions, args.Error(1)
}

func (m *mockQuestionRepository) GetByID(ctx context.Context, id int) (*model.Question, error) {
	args := m.Called(ctx, id)
	q, _ := args.Get(0).(*model.Question)
	return q, args.Error(1)
}

func (m *mockQuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return m.Called(ctx, q).Error(0)
}

func (m *mockQuestionRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockQuestionRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
