package service

import (
	"math"

	"github.com/Nurlanbcg/quiz/internal/model"
)

// ScoringService evaluates a frozen answer map against a quiz's answer key.
// It is a pure function of (questions, answers): no hidden state, fully
// deterministic, safe to recompute when rendering a result review.
type ScoringService interface {
	IsCorrect(question *model.Question, selected []int) bool
	Score(questions []model.Question, answers model.AnswerMap) (score int, correctCount int)
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// IsCorrect reports whether the selection exactly matches the answer key as a
// set: same size, same membership, order irrelevant. No partial credit.
func (s *scoringService) IsCorrect(question *model.Question, selected []int) bool {
	correct := question.CorrectIndexSet()
	if len(selected) != len(correct) {
		return false
	}

	key := make(map[int]bool, len(correct))
	for _, idx := range correct {
		key[idx] = true
	}
	seen := make(map[int]bool, len(selected))
	for _, idx := range selected {
		if !key[idx] || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}

// Score computes the integer percentage, rounded half-up. A question with no
// entry in the answer map counts as an empty selection and is always wrong.
// Empty quizzes never reach here; authoring validation rejects them.
func (s *scoringService) Score(questions []model.Question, answers model.AnswerMap) (int, int) {
	correctCount := 0
	for i := range questions {
		question := &questions[i]
		if s.IsCorrect(question, answers.Selected(question.ID.String())) {
			correctCount++
		}
	}

	score := int(math.Round(float64(correctCount) / float64(len(questions)) * 100))
	return score, correctCount
}
