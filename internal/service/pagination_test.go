package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("2.5"))
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 0, ParsePage("0"))
	assert.Equal(t, 1000, ParsePage("1000"))
}

func TestPaginateWindows(t *testing.T) {
	items := seq(23)

	assert.Equal(t, seq(10), Paginate(items, 1))
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, Paginate(items, 2))
	assert.Equal(t, []int{21, 22, 23}, Paginate(items, 3))
	assert.Empty(t, Paginate(items, 4))
	assert.Empty(t, Paginate(items, 0))
	assert.Empty(t, Paginate(items, -2))
	assert.Empty(t, Paginate(items, math.MaxInt))
	assert.Empty(t, Paginate(items, math.MinInt))
	assert.Empty(t, Paginate(items, 1_000_000_000_000_000_000))
	assert.NotNil(t, Paginate([]int{}, 1))
}

func TestPaginateReconstructsInput(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 20, 57} {
		items := seq(n)
		var rebuilt []int
		pages := (n + QuestionsPerPage - 1) / QuestionsPerPage
		for p := 1; p <= pages; p++ {
			window := Paginate(items, p)
			assert.LessOrEqual(t, len(window), QuestionsPerPage)
			rebuilt = append(rebuilt, window...)
		}
		if n == 0 {
			assert.Empty(t, rebuilt)
			continue
		}
		assert.Equal(t, items, rebuilt, "n=%d", n)
	}
}
