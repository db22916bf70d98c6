package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/stemsi/trivia-api/internal/model"
)

// MemoryStore keeps questions and categories in process. It backs the
// "memory" store driver and handler tests.
type MemoryStore struct {
	mu         sync.RWMutex
	nextID     int
	questions  map[int]model.Question
	categories map[int]model.Category
}

// NewMemoryStore returns a store seeded with categories and questions.
// Question ids are reassigned in order, starting at 1.
func NewMemoryStore(categories []model.Category, questions []model.Question) *MemoryStore {
	s := &MemoryStore{
		nextID:     1,
		questions:  make(map[int]model.Question),
		categories: make(map[int]model.Category),
	}
	for _, c := range categories {
		s.categories[c.ID] = c
	}
	for _, q := range questions {
		q.ID = s.nextID
		s.questions[q.ID] = q
		s.nextID++
	}
	return s
}

// Questions returns the store's QuestionRepository view.
func (s *MemoryStore) Questions() QuestionRepository {
	return memoryQuestions{s}
}

// Categories returns the store's CategoryRepository view.
func (s *MemoryStore) Categories() CategoryRepository {
	return memoryCategories{s}
}

type memoryQuestions struct{ s *MemoryStore }

func (m memoryQuestions) List(_ context.Context, filter QuestionFilter) ([]model.Question, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := []model.Question{}
	for _, q := range m.s.questions {
		if filter.Match(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memoryQuestions) GetByID(_ context.Context, id int) (*model.Question, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	q, ok := m.s.questions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &q, nil
}

func (m memoryQuestions) Create(_ context.Context, q *model.Question) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if len(m.s.categories) > 0 {
		if _, ok := m.s.categories[q.Category]; !ok {
			return fmt.Errorf("insert question: category %d violates foreign key", q.Category)
		}
	}
	q.ID = m.s.nextID
	m.s.nextID++
	m.s.questions[q.ID] = *q
	return nil
}

func (m memoryQuestions) Delete(_ context.Context, id int) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	if _, ok := m.s.questions[id]; !ok {
		return ErrNotFound
	}
	delete(m.s.questions, id)
	return nil
}

func (m memoryQuestions) Count(_ context.Context) (int, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return len(m.s.questions), nil
}

type memoryCategories struct{ s *MemoryStore }

func (m memoryCategories) GetAll(_ context.Context) ([]model.Category, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	out := make([]model.Category, 0, len(m.s.categories))
	for _, c := range m.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m memoryCategories) GetByID(_ context.Context, id int) (*model.Category, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()

	c, ok := m.s.categories[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}
