package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/repository"
)

// QuestionPage is one listing window plus the size of the whole collection.
type QuestionPage struct {
	Questions []model.Question
	Total     int
}

// QuestionService handles question listing, search and mutation.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo repository.QuestionRepository, categoryRepo repository.CategoryRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// ListPage returns the requested page of all questions ordered by id.
// An empty page is ErrPageNotFound.
func (s *QuestionService) ListPage(ctx context.Context, page int) (*QuestionPage, error) {
	result, err := s.page(ctx, page)
	if err != nil {
		return nil, err
	}
	if len(result.Questions) == 0 {
		return nil, ErrPageNotFound
	}
	return result, nil
}

// GetByID looks up a single question.
func (s *QuestionService) GetByID(ctx context.Context, id int) (*model.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	return q, err
}

// ListByCategory returns every question of a category. Unknown categories
// simply match nothing.
func (s *QuestionService) ListByCategory(ctx context.Context, categoryID int) ([]model.Question, error) {
	return s.questionRepo.List(ctx, repository.ByCategory(categoryID))
}

// Search returns every question whose text contains term (case-sensitive).
func (s *QuestionService) Search(ctx context.Context, term string) ([]model.Question, error) {
	return s.questionRepo.List(ctx, repository.BySubstring(term))
}

// Create inserts q after checking its category exists, then returns the
// requested page of the updated collection.
func (s *QuestionService) Create(ctx context.Context, q *model.Question, page int) (*QuestionPage, error) {
	if _, err := s.categoryRepo.GetByID(ctx, q.Category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("category %d: %w", q.Category, ErrCategoryNotFound)
		}
		return nil, err
	}

	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	s.log.Info().Int("question_id", q.ID).Int("category", q.Category).Msg("Question created")

	return s.page(ctx, page)
}

// Delete removes a question and returns the requested page of what remains.
func (s *QuestionService) Delete(ctx context.Context, id int, page int) (*QuestionPage, error) {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("delete %d: %w", id, ErrQuestionNotFound)
		}
		return nil, err
	}
	s.log.Info().Int("question_id", id).Msg("Question deleted")

	return s.page(ctx, page)
}

func (s *QuestionService) page(ctx context.Context, page int) (*QuestionPage, error) {
	all, err := s.questionRepo.List(ctx, repository.QuestionFilter{})
	if err != nil {
		return nil, err
	}
	return &QuestionPage{
		Questions: Paginate(all, page),
		Total:     len(all),
	}, nil
}
