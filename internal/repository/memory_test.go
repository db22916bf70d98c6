package repository

import (
	"context"
	"testing"

	"github.com/stemsi/trivia-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(DefaultCategories, []model.Question{
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: 1, Difficulty: 3},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: 2, Difficulty: 3},
		{Question: "How many paintings did Van Gogh sell?", Answer: "One", Category: 2, Difficulty: 4},
	})
}

func TestMemoryStoreListOrdersByID(t *testing.T) {
	repo := newTestStore().Questions()

	all, err := repo.List(context.Background(), QuestionFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, q := range all {
		assert.Equal(t, i+1, q.ID)
	}

	art, err := repo.List(context.Background(), ByCategory(2))
	require.NoError(t, err)
	assert.Len(t, art, 2)

	none, err := repo.List(context.Background(), BySubstring("zebra"))
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestMemoryStoreCreateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestStore().Questions()

	q := &model.Question{Question: "Where is Taj Mahal located?", Answer: "Agra", Category: 3, Difficulty: 1}
	require.NoError(t, repo.Create(ctx, q))
	assert.Equal(t, 4, q.ID)

	got, err := repo.GetByID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Agra", got.Answer)

	require.NoError(t, repo.Delete(ctx, 4))
	assert.ErrorIs(t, repo.Delete(ctx, 4), ErrNotFound)

	_, err = repo.GetByID(ctx, 4)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMemoryStoreCreateRejectsUnknownCategory(t *testing.T) {
	repo := newTestStore().Questions()

	err := repo.Create(context.Background(), &model.Question{Question: "q", Answer: "a", Category: 99, Difficulty: 1})
	assert.Error(t, err)
}

func TestMemoryStoreCategories(t *testing.T) {
	repo := newTestStore().Categories()

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultCategories, all)

	c, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Geography", c.Type)

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}
