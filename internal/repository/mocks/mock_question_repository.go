package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"quizapi/internal/model"
)

type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) Create(ctx context.Context, q *model.Question) (model.QuestionID, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(model.QuestionID), args.Error(1)
}

func (m *MockQuestionRepository) FindByID(ctx context.Context, id model.QuestionID) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionRepository) UpdateByID(ctx context.Context, id model.QuestionID, q *model.Question) (int64, error) {
	args := m.Called(ctx, id, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) DeleteByID(ctx context.Context, id model.QuestionID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]model.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}
