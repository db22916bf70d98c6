package model

// Question is a single trivia question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CreateQuestionRequest is the payload for creating a question.
type CreateQuestionRequest struct {
	Question   string `json:"question" binding:"required,min=1,max=2000"`
	Answer     string `json:"answer" binding:"required,min=1,max=2000"`
	Category   int    `json:"category" binding:"required,gt=0"`
	Difficulty int    `json:"difficulty" binding:"required,min=1,max=5"`
}

// SearchQuestionsRequest is the body accepted by POST /questions/search.
type SearchQuestionsRequest struct {
	SearchTerm string `json:"searchTerm"`
}
