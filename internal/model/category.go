package model

// Category groups questions. Categories are seeded and never change through the API.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
