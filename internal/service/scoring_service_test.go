package service

import (
	"testing"

	"github.com/Nurlanbcg/quiz/internal/model"
)

func TestIsCorrectSingleChoice(t *testing.T) {
	scoring := NewScoringService()
	question := newTestQuestion("capital of France", model.QuestionSingle, 4, 2)

	if !scoring.IsCorrect(&question, []int{2}) {
		t.Errorf("expected selection [2] to be correct")
	}
	if scoring.IsCorrect(&question, []int{0}) {
		t.Errorf("expected selection [0] to be wrong")
	}
	if scoring.IsCorrect(&question, nil) {
		t.Errorf("expected empty selection to be wrong")
	}
}

func TestIsCorrectMultipleChoiceExactSet(t *testing.T) {
	scoring := NewScoringService()
	question := newTestQuestion("prime numbers", model.QuestionMultiple, 4, 0, 2)

	// Every subset of the four options; only {0,2} matches the key.
	for mask := 0; mask < 16; mask++ {
		var selected []int
		for i := 0; i < 4; i++ {
			if mask&(1<<i) != 0 {
				selected = append(selected, i)
			}
		}
		want := mask == 0b0101
		if got := scoring.IsCorrect(&question, selected); got != want {
			t.Errorf("selection %v: got %v, want %v", selected, got, want)
		}
	}
}

func TestIsCorrectIgnoresSelectionOrder(t *testing.T) {
	scoring := NewScoringService()
	question := newTestQuestion("q", model.QuestionMultiple, 4, 0, 3)

	if !scoring.IsCorrect(&question, []int{3, 0}) {
		t.Errorf("expected reversed selection order to still match")
	}
}

func TestIsCorrectRejectsDuplicateIndices(t *testing.T) {
	scoring := NewScoringService()
	question := newTestQuestion("q", model.QuestionMultiple, 4, 0, 2)

	if scoring.IsCorrect(&question, []int{0, 0}) {
		t.Errorf("expected duplicated index to fail the set match")
	}
}

func TestScorePercentageRounding(t *testing.T) {
	scoring := NewScoringService()

	cases := []struct {
		name      string
		total     int
		correct   int
		wantScore int
	}{
		{"all correct", 4, 4, 100},
		{"none correct", 4, 0, 0},
		{"three of four", 4, 3, 75},
		{"one of three rounds down", 3, 1, 33},
		{"two of three rounds up", 3, 2, 67},
		{"one of eight rounds half up", 8, 1, 13},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var questions []model.Question
			answers := make(model.AnswerMap)
			for i := 0; i < tc.total; i++ {
				q := newTestQuestion("q", model.QuestionSingle, 4, 1)
				questions = append(questions, q)
				if i < tc.correct {
					answers.Replace(q.ID.String(), 1)
				} else {
					answers.Replace(q.ID.String(), 0)
				}
			}

			score, correctCount := scoring.Score(questions, answers)
			if score != tc.wantScore {
				t.Errorf("score: got %d, want %d", score, tc.wantScore)
			}
			if correctCount != tc.correct {
				t.Errorf("correct count: got %d, want %d", correctCount, tc.correct)
			}
		})
	}
}

func TestScoreTreatsMissingAnswersAsWrong(t *testing.T) {
	scoring := NewScoringService()
	q1 := newTestQuestion("answered", model.QuestionSingle, 4, 0)
	q2 := newTestQuestion("skipped", model.QuestionSingle, 4, 0)

	answers := model.AnswerMap{q1.ID.String(): {0}}
	score, correctCount := scoring.Score([]model.Question{q1, q2}, answers)

	if correctCount != 1 {
		t.Fatalf("correct count: got %d, want 1", correctCount)
	}
	if score != 50 {
		t.Errorf("score: got %d, want 50", score)
	}
}
