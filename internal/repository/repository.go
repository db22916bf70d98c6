package repository

import (
	"context"
	"errors"

	"github.com/stemsi/trivia-api/internal/model"
)

// ErrNotFound is returned when a lookup or delete targets a missing row.
var ErrNotFound = errors.New("record not found")

// QuestionRepository is the persistent question collection.
type QuestionRepository interface {
	// List returns the questions matching filter ordered by id ascending.
	List(ctx context.Context, filter QuestionFilter) ([]model.Question, error)
	GetByID(ctx context.Context, id int) (*model.Question, error)
	// Create inserts q and sets its store-assigned id.
	Create(ctx context.Context, q *model.Question) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

// CategoryRepository is the read-only category collection.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]model.Category, error)
	GetByID(ctx context.Context, id int) (*model.Category, error)
}
