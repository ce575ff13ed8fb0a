package dto

// SelectAnswerDTO records a click on an option of a question. OptionIndex is a
// pointer so that index 0 survives required-field binding.
type SelectAnswerDTO struct {
	QuestionID  string `json:"question_id" binding:"required,uuid"`
	OptionIndex *int   `json:"option_index" binding:"required"`
}

// NavigateDTO moves the current question pointer. Either an absolute To index
// or a relative Direction; To wins when both are present.
type NavigateDTO struct {
	To        *int   `json:"to"`
	Direction string `json:"direction" binding:"omitempty,oneof=prev next"`
}

// SessionViewDTO is the live view of an exam session.
type SessionViewDTO struct {
	SessionID            string           `json:"session_id"`
	QuizID               string           `json:"quiz_id"`
	QuizTitle            string           `json:"quiz_title"`
	State                string           `json:"state"`
	CurrentQuestionIndex int              `json:"current_question_index"`
	TotalQuestions       int              `json:"total_questions"`
	RemainingSeconds     int              `json:"remaining_seconds"`
	Answers              map[string][]int `json:"answers"`
	CurrentQuestion      *QuestionViewDTO `json:"current_question,omitempty"`
	ResultID             *string          `json:"result_id,omitempty"`
}
