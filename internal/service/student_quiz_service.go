package service

import (
	"fmt"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type StudentQuizService interface {
	ListActiveQuizzes() ([]dto.QuizSummaryDTO, error)
	GetQuizGate(quizID, userID uuid.UUID) (*dto.QuizGateDTO, error)
	PurchaseQuiz(userID, quizID uuid.UUID) error
}

type studentQuizService struct {
	quizRepo     repository.QuizRepository
	purchaseRepo repository.PurchaseRepository
}

func NewStudentQuizService(
	quizRepo repository.QuizRepository,
	purchaseRepo repository.PurchaseRepository,
) StudentQuizService {
	return &studentQuizService{quizRepo: quizRepo, purchaseRepo: purchaseRepo}
}

func (s *studentQuizService) ListActiveQuizzes() ([]dto.QuizSummaryDTO, error) {
	rows, err := s.quizRepo.FindActiveWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list active quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.QuizSummaryDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.QuizSummaryDTO{
			ID:              row.Quiz.ID.String(),
			Title:           row.Quiz.Title,
			Description:     row.Quiz.Description,
			DurationMinutes: row.Quiz.DurationMinutes,
			Price:           row.Quiz.Price,
			QuestionCount:   row.QuestionCount,
			CreatedAt:       row.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

// GetQuizGate backs the exam start page. Inactive quizzes are reported as
// unavailable even when the link is still being shared around.
func (s *studentQuizService) GetQuizGate(quizID, userID uuid.UUID) (*dto.QuizGateDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, apperr.ErrQuizInactive
	}

	purchased, err := s.purchaseRepo.HasPurchased(userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("checking entitlement: %w", err)
	}

	return &dto.QuizGateDTO{
		ID:              quiz.ID.String(),
		Title:           quiz.Title,
		Description:     quiz.Description,
		DurationMinutes: quiz.DurationMinutes,
		Price:           quiz.Price,
		QuestionCount:   len(quiz.Questions),
		HasPurchased:    purchased,
	}, nil
}

// PurchaseQuiz grants the entitlement. No payment step exists here; purchase
// is the unlock gate, and granting twice is a no-op.
func (s *studentQuizService) PurchaseQuiz(userID, quizID uuid.UUID) error {
	if _, err := s.quizRepo.FindByID(quizID); err != nil {
		return err
	}
	if err := s.purchaseRepo.Grant(userID, quizID); err != nil {
		log.Error().Err(err).Str("user_id", userID.String()).Str("quiz_id", quizID.String()).Msg("Failed to grant purchase")
		return fmt.Errorf("granting purchase: %w", err)
	}
	log.Info().Str("user_id", userID.String()).Str("quiz_id", quizID.String()).Msg("Quiz purchased")
	return nil
}
