package service

import "strconv"

// QuestionsPerPage is the fixed size of a listing page.
const QuestionsPerPage = 10

// ParsePage reads a 1-based page number from a query value.
// Absent or non-numeric values yield page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return page
}

// Paginate returns the page-th window of QuestionsPerPage items. Windows that
// start outside items, including any page below 1, are empty.
func Paginate[T any](items []T, page int) []T {
	pages := (len(items) + QuestionsPerPage - 1) / QuestionsPerPage
	if page < 1 || page > pages {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := start + QuestionsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
