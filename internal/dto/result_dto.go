package dto

import "time"

type ResultSummaryDTO struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quiz_id"`
	QuizTitle      string    `json:"quiz_title"`
	StudentName    string    `json:"student_name"`
	StudentEmail   string    `json:"student_email"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	AnsweredCount  int       `json:"answered_count"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// QuestionReviewDTO compares a frozen selection against the answer key for one
// question. Option text comes from the live quiz; correctness and score come
// from the snapshot, so a later quiz edit cannot change a stored result.
type QuestionReviewDTO struct {
	QuestionID     string   `json:"question_id"`
	Position       int      `json:"position"`
	Text           string   `json:"text"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	Selected       []int    `json:"selected"`
	CorrectAnswers []int    `json:"correct_answers"`
	IsCorrect      bool     `json:"is_correct"`
}

type ResultDetailDTO struct {
	ResultSummaryDTO
	CorrectCount int                 `json:"correct_count"`
	Review       []QuestionReviewDTO `json:"review,omitempty"`
}
