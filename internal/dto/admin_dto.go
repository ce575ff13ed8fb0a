package dto

import "time"

// QuestionCreateDTO is used within QuizCreateDTO for admin quiz authoring.
// CorrectAnswers are indices into Options; full validation (bounds, emptiness,
// single-choice cardinality) happens in the admin service.
type QuestionCreateDTO struct {
	Text           string   `json:"text" binding:"required"`
	Type           string   `json:"type" binding:"required,oneof=single multiple"`
	Options        []string `json:"options" binding:"required"`
	CorrectAnswers []int    `json:"correct_answers"`
}

// QuizCreateDTO is for admin to create a new quiz with all its questions.
// Editing a quiz replaces the whole question list, so there is no per-question
// mutation surface.
type QuizCreateDTO struct {
	Title           string              `json:"title" binding:"required"`
	Description     string              `json:"description,omitempty"`
	DurationMinutes int                 `json:"duration_minutes" binding:"required,gt=0"`
	Price           float64             `json:"price" binding:"gte=0"`
	IsActive        bool                `json:"is_active"`
	Questions       []QuestionCreateDTO `json:"questions" binding:"required,dive"`
}

type QuizSetActiveDTO struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// AdminQuizSummaryDTO is a row in the admin quiz listing.
type AdminQuizSummaryDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           float64   `json:"price"`
	IsActive        bool      `json:"is_active"`
	QuestionCount   int       `json:"question_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// AdminQuestionDTO includes the answer key; admin-only.
type AdminQuestionDTO struct {
	ID             string   `json:"id"`
	Position       int      `json:"position"`
	Text           string   `json:"text"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	CorrectAnswers []int    `json:"correct_answers"`
}

type AdminQuizDetailDTO struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description,omitempty"`
	DurationMinutes int                `json:"duration_minutes"`
	Price           float64            `json:"price"`
	IsActive        bool               `json:"is_active"`
	Questions       []AdminQuestionDTO `json:"questions"`
	CreatedAt       time.Time          `json:"created_at"`
}

// ResultStatsDTO mirrors the aggregate header of the admin results page.
type ResultStatsDTO struct {
	TotalSubmissions int `json:"total_submissions"`
	AverageScore     int `json:"average_score"`
	HighestScore     int `json:"highest_score"`
}

type AdminResultListDTO struct {
	Stats   ResultStatsDTO     `json:"stats"`
	Results []ResultSummaryDTO `json:"results"`
}

type RegistrationRequestDTO struct {
	ID          string    `json:"id"`
	QuizID      string    `json:"quiz_id"`
	QuizTitle   string    `json:"quiz_title"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	RequestedAt time.Time `json:"requested_at"`
}
