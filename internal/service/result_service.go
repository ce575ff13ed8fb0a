package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ResultService interface {
	GetResult(resultID, callerID uuid.UUID, isAdmin bool) (*dto.ResultDetailDTO, error)
	ListForStudent(studentID uuid.UUID) ([]dto.ResultSummaryDTO, error)
	ListAll(quizID *uuid.UUID) (*dto.AdminResultListDTO, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
	quizRepo   repository.QuizRepository
	scoring    ScoringService
}

func NewResultService(
	resultRepo repository.ResultRepository,
	quizRepo repository.QuizRepository,
	scoring ScoringService,
) ResultService {
	return &resultService{resultRepo: resultRepo, quizRepo: quizRepo, scoring: scoring}
}

// GetResult renders the review page. Correctness is recomputed from the frozen
// answer snapshot; the live quiz contributes option text only. The stored
// score stands even if the quiz was edited or deleted after submission.
func (s *resultService) GetResult(resultID, callerID uuid.UUID, isAdmin bool) (*dto.ResultDetailDTO, error) {
	result, err := s.resultRepo.FindByID(resultID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && result.StudentID != callerID {
		return nil, apperr.ErrForbidden
	}

	answers, err := model.AnswerMapFromJSON(result.Answers)
	if err != nil {
		return nil, fmt.Errorf("reading answer snapshot: %w", err)
	}

	detail := &dto.ResultDetailDTO{ResultSummaryDTO: *resultSummary(result)}

	quiz, err := s.quizRepo.FindByIDWithQuestions(result.QuizID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Quiz deleted since submission; the snapshot score still stands,
			// there is just no question text left to review against.
			return detail, nil
		}
		return nil, err
	}

	for i := range quiz.Questions {
		question := &quiz.Questions[i]
		selected := answers.Selected(question.ID.String())
		correct := s.scoring.IsCorrect(question, selected)
		if correct {
			detail.CorrectCount++
		}
		detail.Review = append(detail.Review, dto.QuestionReviewDTO{
			QuestionID:     question.ID.String(),
			Position:       question.Position,
			Text:           question.Text,
			Type:           string(question.Type),
			Options:        question.OptionTexts(),
			Selected:       selected,
			CorrectAnswers: question.CorrectIndexSet(),
			IsCorrect:      correct,
		})
	}
	return detail, nil
}

func (s *resultService) ListForStudent(studentID uuid.UUID) ([]dto.ResultSummaryDTO, error) {
	results, err := s.resultRepo.FindByStudent(studentID)
	if err != nil {
		log.Error().Err(err).Str("student_id", studentID.String()).Msg("Failed to list student results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}
	return summarize(results), nil
}

// ListAll backs the admin results page: the filtered listing plus the
// aggregate header (submissions, average, highest).
func (s *resultService) ListAll(quizID *uuid.UUID) (*dto.AdminResultListDTO, error) {
	results, err := s.resultRepo.FindAll(quizID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list results")
		return nil, fmt.Errorf("error fetching results: %w", err)
	}

	out := &dto.AdminResultListDTO{Results: summarize(results)}
	out.Stats.TotalSubmissions = len(results)
	if len(results) == 0 {
		return out, nil
	}

	sum := 0
	highest := 0
	for _, r := range results {
		sum += r.Score
		if r.Score > highest {
			highest = r.Score
		}
	}
	out.Stats.AverageScore = int(math.Round(float64(sum) / float64(len(results))))
	out.Stats.HighestScore = highest
	return out, nil
}

func summarize(results []model.QuizResult) []dto.ResultSummaryDTO {
	dtos := make([]dto.ResultSummaryDTO, 0, len(results))
	for i := range results {
		dtos = append(dtos, *resultSummary(&results[i]))
	}
	return dtos
}
