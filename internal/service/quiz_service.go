package service

import (
	"context"
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stemsi/trivia-api/internal/repository"
)

// QuizService serves quiz rounds one unseen question at a time.
type QuizService struct {
	questionRepo repository.QuestionRepository
	intN         func(n int) int
	log          zerolog.Logger
}

// NewQuizService creates a QuizService drawing from the global random source.
func NewQuizService(questionRepo repository.QuestionRepository, log zerolog.Logger) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		intN:         rand.IntN,
		log:          log.With().Str("component", "quiz_service").Logger(),
	}
}

// WithRand makes selection draw from r, for reproducible rounds.
func (s *QuizService) WithRand(r *rand.Rand) *QuizService {
	s.intN = r.IntN
	return s
}

// NextQuestion picks one question uniformly at random among those not in
// previous, restricted to categoryID unless it is 0. It returns nil when no
// question is left.
func (s *QuizService) NextQuestion(ctx context.Context, categoryID int, previous []int) (*model.Question, error) {
	filter := repository.QuestionFilter{Exclude: previous}
	if categoryID != 0 {
		filter.CategoryID = &categoryID
	}

	pool, err := s.questionRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Int("category", categoryID).
		Int("previous", len(previous)).
		Int("pool", len(pool)).
		Msg("Quiz pool computed")

	if len(pool) == 0 {
		return nil, nil
	}
	q := pool[s.intN(len(pool))]
	return &q, nil
}
