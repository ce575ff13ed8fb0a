package dto

import "time"

// QuizSummaryDTO is a row in the student-facing listing of active quizzes.
type QuizSummaryDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// QuizGateDTO backs the exam start page reached from a shared link. It never
// includes question content or the answer key.
type QuizGateDTO struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	QuestionCount   int     `json:"question_count"`
	HasPurchased    bool    `json:"has_purchased"`
}

// QuestionViewDTO is what an in-progress student sees: no correctness flags.
type QuestionViewDTO struct {
	ID       string   `json:"id"`
	Position int      `json:"position"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options"`
}
