package service

import (
	"context"
	"errors"
	"fmt"

	"quizapi/internal/model"
	"quizapi/internal/repository"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrInvalidID  = errors.New("invalid ID")
	ErrNotFound   = errors.New("question not found")
	ErrBodyNil    = errors.New("question is nil")
)

// QuestionService defines the use cases for handling questions.
type QuestionService interface {
	// Create stores a new question and returns it with its assigned ID.
	Create(ctx context.Context, q *model.Question) (*model.Question, error)

	// Get returns a single question by its ID.
	Get(ctx context.Context, id string) (*model.Question, error)

	// Update replaces the mutable fields of a question and returns the stored result.
	Update(ctx context.Context, id string, q *model.Question) (*model.Question, error)

	// Delete removes a question by ID.
	Delete(ctx context.Context, id string) error

	// List returns all questions.
	List(ctx context.Context) ([]model.Question, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

// NewQuestionService constructs a new QuestionService.
func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	if q == nil {
		return nil, ErrBodyNil
	}
	created := q.Mutable()
	id, err := s.repo.Create(ctx, &created)
	if err != nil {
		return nil, err
	}
	created.ID = id
	return &created, nil
}

func (s *questionService) Get(ctx context.Context, id string) (*model.Question, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	q, err := s.repo.FindByID(ctx, model.QuestionID(id))
	if err != nil {
		return nil, mapRepoError(err)
	}
	return q, nil
}

// Update re-reads the document after a successful match so the caller sees the stored state.
func (s *questionService) Update(ctx context.Context, id string, q *model.Question) (*model.Question, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if q == nil {
		return nil, ErrBodyNil
	}
	matched, err := s.repo.UpdateByID(ctx, model.QuestionID(id), q)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if matched != 1 {
		return nil, ErrNotFound
	}
	updated, err := s.repo.FindByID(ctx, model.QuestionID(id))
	if err != nil {
		return nil, mapRepoError(err)
	}
	return updated, nil
}

func (s *questionService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	deleted, err := s.repo.DeleteByID(ctx, model.QuestionID(id))
	if err != nil {
		return mapRepoError(err)
	}
	if deleted != 1 {
		return ErrNotFound
	}
	return nil
}

func (s *questionService) List(ctx context.Context) ([]model.Question, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Question{}
	}
	return items, nil
}

func mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}
