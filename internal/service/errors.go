package service

import "errors"

var (
	// ErrPageNotFound is returned when a listing page holds no questions.
	ErrPageNotFound = errors.New("page not found")
	// ErrQuestionNotFound is returned when a question id does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrCategoryNotFound is returned when a category reference does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)
