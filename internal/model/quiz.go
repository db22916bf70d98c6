package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidQuizCategory is returned when quiz_category has an unusable shape or value.
var ErrInvalidQuizCategory = errors.New("quiz_category must be a non-negative category id")

// QuizRequest is the payload for POST /quizzes.
type QuizRequest struct {
	QuizCategory      QuizCategory `json:"quiz_category"`
	PreviousQuestions []int        `json:"previous_questions"`
}

// QuizCategory is the category filter of a quiz round. Zero means all categories.
//
// It decodes from an integer, a numeric string, or an object carrying an
// "id" field such as {"type": "Science", "id": 1}.
type QuizCategory int

// UnmarshalJSON implements json.Unmarshaler.
func (c *QuizCategory) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if len(obj.ID) == 0 || obj.ID[0] == '{' {
			return ErrInvalidQuizCategory
		}
		data = obj.ID
	}

	id, err := parseCategoryID(data)
	if err != nil {
		return err
	}
	*c = QuizCategory(id)
	return nil
}

func parseCategoryID(data []byte) (int, error) {
	switch {
	case bytes.Equal(data, []byte("null")):
		return 0, nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		id, err := strconv.Atoi(s)
		if err != nil || id < 0 {
			return 0, ErrInvalidQuizCategory
		}
		return id, nil
	default:
		var id int
		if err := json.Unmarshal(data, &id); err != nil || id < 0 {
			return 0, ErrInvalidQuizCategory
		}
		return id, nil
	}
}
