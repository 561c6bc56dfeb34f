package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"quizapi/internal/model"
	"quizapi/internal/repository"
	repoMocks "quizapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validID = "65f1c2a4e13b2c0a9d8e7f61"

func sampleQuestion() *model.Question {
	return &model.Question{
		Category:    "math",
		Text:        "2+2?",
		Response:    "4",
		Suggestions: []string{"3", "5"},
	}
}

func TestQuestionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path strips caller id", func(t *testing.T) {
		mRepo := new(repoMocks.MockQuestionRepository)
		svc := NewQuestionService(mRepo)

		in := sampleQuestion()
		in.ID = "client-id"
		mRepo.On("Create", ctx, mock.MatchedBy(func(q *model.Question) bool {
			return q.ID.IsZero() && q.Category == "math"
		})).Return(model.QuestionID(validID), nil).Once()

		out, err := svc.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, model.QuestionID(validID), out.ID)
		assert.Equal(t, in.Text, out.Text)
		assert.Equal(t, in.Suggestions, out.Suggestions)
		mRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockQuestionRepository)
		svc := NewQuestionService(mRepo)
		mRepo.On("Create", ctx, mock.Anything).Return(model.QuestionID(""), errors.New("insert question: db fail")).Once()

		out, err := svc.Create(ctx, sampleQuestion())

		assert.EqualError(t, err, "insert question: db fail")
		assert.Nil(t, out)
		mRepo.AssertExpectations(t)
	})

	t.Run("nil body", func(t *testing.T) {
		svc := NewQuestionService(new(repoMocks.MockQuestionRepository))

		_, err := svc.Create(ctx, nil)

		assert.ErrorIs(t, err, ErrBodyNil)
	})
}

func TestQuestionService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockQuestionRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("FindByID", ctx, model.QuestionID(validID)).Return(&model.Question{ID: validID}, nil)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "malformed id",
			id:   "not-an-id",
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("FindByID", ctx, model.QuestionID("not-an-id")).
					Return(nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, "not-an-id"))
			},
			wantErr: ErrInvalidID,
		},
		{
			name: "not found",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("FindByID", ctx, model.QuestionID(validID)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "generic repository error",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("FindByID", ctx, model.QuestionID(validID)).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockQuestionRepository)
			svc := NewQuestionService(mRepo)

			tt.setupMocks(mRepo)

			q, err := svc.Get(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) || errors.Is(tt.wantErr, ErrInvalidID) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Nil(t, q)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.QuestionID(tt.id), q.ID)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestQuestionService_Update(t *testing.T) {
	ctx := context.Background()
	in := sampleQuestion()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockQuestionRepository)
		wantErr    error
	}{
		{
			name: "matched then refreshed",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("UpdateByID", ctx, model.QuestionID(validID), in).Return(int64(1), nil)
				stored := *in
				stored.ID = validID
				mRepo.On("FindByID", ctx, model.QuestionID(validID)).Return(&stored, nil)
			},
		},
		{
			name: "no match",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("UpdateByID", ctx, model.QuestionID(validID), in).Return(int64(0), nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "deleted between update and refresh",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("UpdateByID", ctx, model.QuestionID(validID), in).Return(int64(1), nil)
				mRepo.On("FindByID", ctx, model.QuestionID(validID)).Return(nil, repository.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "malformed id",
			id:   "not-an-id",
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("UpdateByID", ctx, model.QuestionID("not-an-id"), in).Return(int64(0), repository.ErrInvalidID)
			},
			wantErr: ErrInvalidID,
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {},
			wantErr:    ErrIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockQuestionRepository)
			svc := NewQuestionService(mRepo)

			tt.setupMocks(mRepo)

			q, err := svc.Update(ctx, tt.id, in)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, q)
			} else {
				require.NoError(t, err)
				assert.Equal(t, model.QuestionID(tt.id), q.ID)
				assert.Equal(t, in.Category, q.Category)
				assert.Equal(t, in.Text, q.Text)
				assert.Equal(t, in.Response, q.Response)
				assert.Equal(t, in.Suggestions, q.Suggestions)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestQuestionService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockQuestionRepository)
		wantErr    error
	}{
		{
			name: "happy path",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("DeleteByID", ctx, model.QuestionID(validID)).Return(int64(1), nil)
			},
		},
		{
			name: "missing document is not found, not an error abort",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("DeleteByID", ctx, model.QuestionID(validID)).Return(int64(0), nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name: "repository error",
			id:   validID,
			setupMocks: func(mRepo *repoMocks.MockQuestionRepository) {
				mRepo.On("DeleteByID", ctx, model.QuestionID(validID)).Return(int64(0), errors.New("delete question: db fail"))
			},
			wantErr: errors.New("delete question: db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockQuestionRepository)
			svc := NewQuestionService(mRepo)

			tt.setupMocks(mRepo)

			err := svc.Delete(ctx, tt.id)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, ErrIDRequired) || errors.Is(tt.wantErr, ErrNotFound) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestQuestionService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mRepo := new(repoMocks.MockQuestionRepository)
		svc := NewQuestionService(mRepo)
		mRepo.On("List", ctx).Return([]model.Question{{ID: "1"}, {ID: "2"}}, nil)

		items, err := svc.List(ctx)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		mRepo.AssertExpectations(t)
	})

	t.Run("nil from repository becomes empty slice", func(t *testing.T) {
		mRepo := new(repoMocks.MockQuestionRepository)
		svc := NewQuestionService(mRepo)
		mRepo.On("List", ctx).Return([]model.Question(nil), nil)

		items, err := svc.List(ctx)

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("repository error", func(t *testing.T) {
		mRepo := new(repoMocks.MockQuestionRepository)
		svc := NewQuestionService(mRepo)
		mRepo.On("List", ctx).Return(nil, errors.New("db fail"))

		items, err := svc.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, items)
	})
}
