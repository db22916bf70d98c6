package repository

import (
	"fmt"
	"strings"

	"github.com/stemsi/trivia-api/internal/model"
)

// QuestionFilter narrows a question listing. Set fields are combined with AND;
// the zero value matches every question.
type QuestionFilter struct {
	// ID matches a single question.
	ID *int
	// CategoryID matches questions of one category.
	CategoryID *int
	// Contains is a case-sensitive substring of the question text.
	Contains string
	// Exclude drops questions whose id is in the set.
	Exclude []int
}

// ByID returns a filter matching exactly one question id.
func ByID(id int) QuestionFilter {
	return QuestionFilter{ID: &id}
}

// ByCategory returns a filter matching one category.
func ByCategory(categoryID int) QuestionFilter {
	return QuestionFilter{CategoryID: &categoryID}
}

// BySubstring returns a filter matching question text containing term.
func BySubstring(term string) QuestionFilter {
	return QuestionFilter{Contains: term}
}

// Where renders the filter as a SQL boolean expression with positional
// arguments starting at $1. An empty filter renders "TRUE".
func (f QuestionFilter) Where() (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(format string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}

	if f.ID != nil {
		add("id = $%d", *f.ID)
	}
	if f.CategoryID != nil {
		add("category = $%d", *f.CategoryID)
	}
	if f.Contains != "" {
		add("strpos(question, $%d) > 0", f.Contains)
	}
	if len(f.Exclude) > 0 {
		add("NOT (id = ANY($%d))", f.Exclude)
	}

	if len(clauses) == 0 {
		return "TRUE", nil
	}
	return strings.Join(clauses, " AND "), args
}

// Match reports whether q satisfies the filter. It mirrors Where for stores
// that evaluate predicates in process.
func (f QuestionFilter) Match(q model.Question) bool {
	if f.ID != nil && q.ID != *f.ID {
		return false
	}
	if f.CategoryID != nil && q.Category != *f.CategoryID {
		return false
	}
	if f.Contains != "" && !strings.Contains(q.Question, f.Contains) {
		return false
	}
	for _, id := range f.Exclude {
		if q.ID == id {
			return false
		}
	}
	return true
}
