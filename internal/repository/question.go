package repository

import (
	"context"
	"errors"

	"quizapi/internal/model"
)

var (
	// ErrInvalidID is returned when an identifier cannot be parsed into the store's native format.
	ErrInvalidID = errors.New("invalid question id")
	// ErrNotFound is returned when no document matches the identifier.
	ErrNotFound = errors.New("question not found")
)

// QuestionRepository defines data access for questions.
// No business logic here; persistence operations only.
type QuestionRepository interface {
	// Create inserts a new question document and returns the id assigned by the store.
	// Any caller-supplied id is ignored.
	Create(ctx context.Context, q *model.Question) (model.QuestionID, error)

	// FindByID returns a question by its ID.
	FindByID(ctx context.Context, id model.QuestionID) (*model.Question, error)

	// UpdateByID replaces the mutable fields of the question and returns how many documents matched.
	UpdateByID(ctx context.Context, id model.QuestionID, q *model.Question) (int64, error)

	// DeleteByID removes a question and returns how many documents were deleted.
	DeleteByID(ctx context.Context, id model.QuestionID) (int64, error)

	// List returns every question in the store's natural order.
	List(ctx context.Context) ([]model.Question, error)
}
