package service

import (
	"fmt"
	"strings"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDetailDTO, error)
	GetQuiz(id uuid.UUID) (*dto.AdminQuizDetailDTO, error)
	ListQuizzes() ([]dto.AdminQuizSummaryDTO, error)
	DeleteQuiz(id uuid.UUID) error
	SetActive(id uuid.UUID, active bool) error
}

type adminQuizService struct {
	quizRepo repository.QuizRepository
}

func NewAdminQuizService(quizRepo repository.QuizRepository) AdminQuizService {
	return &adminQuizService{quizRepo: quizRepo}
}

// CreateQuiz validates the authoring input and persists the quiz with its
// embedded question list. Validation failures never reach the store.
func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.AdminQuizDetailDTO, error) {
	if err := validateQuizCreate(req); err != nil {
		return nil, err
	}

	quiz := model.Quiz{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		IsActive:        req.IsActive,
	}
	for qi, qDto := range req.Questions {
		question := model.Question{
			Position: qi,
			Text:     strings.TrimSpace(qDto.Text),
			Type:     model.QuestionType(qDto.Type),
		}
		correct := make(map[int]bool, len(qDto.CorrectAnswers))
		for _, idx := range qDto.CorrectAnswers {
			correct[idx] = true
		}
		for oi, text := range qDto.Options {
			question.Options = append(question.Options, model.Option{
				Position:  oi,
				Text:      strings.TrimSpace(text),
				IsCorrect: correct[oi],
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", quiz.Title).Msg("Failed to create quiz")
		return nil, fmt.Errorf("database error creating quiz: %w", err)
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Str("quiz_id", quiz.ID.String()).Msg("Failed to reload created quiz")
		return adminQuizDetail(&quiz), nil
	}
	return adminQuizDetail(created), nil
}

func validateQuizCreate(req dto.QuizCreateDTO) error {
	ve := &apperr.ValidationError{}

	if strings.TrimSpace(req.Title) == "" {
		ve.Add("title", "title is required")
	}
	if req.DurationMinutes <= 0 {
		ve.Add("duration_minutes", "duration must be a positive number of minutes")
	}
	if req.Price < 0 {
		ve.Add("price", "price cannot be negative")
	}
	if len(req.Questions) == 0 {
		ve.Add("questions", "a quiz needs at least one question")
	}

	for qi, q := range req.Questions {
		field := func(name string) string { return fmt.Sprintf("questions[%d].%s", qi, name) }

		if strings.TrimSpace(q.Text) == "" {
			ve.Add(field("text"), "question text is required")
		}
		if len(q.Options) < 2 {
			ve.Add(field("options"), "a question needs at least two options")
		}
		for oi, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				ve.Add(fmt.Sprintf("questions[%d].options[%d]", qi, oi), "option text cannot be blank")
			}
		}

		if len(q.CorrectAnswers) == 0 {
			ve.Add(field("correct_answers"), "select at least one correct answer")
			continue
		}
		seen := make(map[int]bool, len(q.CorrectAnswers))
		for _, idx := range q.CorrectAnswers {
			if idx < 0 || idx >= len(q.Options) {
				ve.Add(field("correct_answers"), fmt.Sprintf("index %d is outside the option range", idx))
			}
			if seen[idx] {
				ve.Add(field("correct_answers"), fmt.Sprintf("index %d is listed twice", idx))
			}
			seen[idx] = true
		}
		if q.Type == string(model.QuestionSingle) && len(q.CorrectAnswers) != 1 {
			ve.Add(field("correct_answers"), "a single-choice question has exactly one correct answer")
		}
	}

	if ve.HasErrors() {
		return ve
	}
	return nil
}

func (s *adminQuizService) GetQuiz(id uuid.UUID) (*dto.AdminQuizDetailDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	return adminQuizDetail(quiz), nil
}

func (s *adminQuizService) ListQuizzes() ([]dto.AdminQuizSummaryDTO, error) {
	rows, err := s.quizRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list quizzes")
		return nil, fmt.Errorf("error fetching quizzes: %w", err)
	}

	dtos := make([]dto.AdminQuizSummaryDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, dto.AdminQuizSummaryDTO{
			ID:              row.Quiz.ID.String(),
			Title:           row.Quiz.Title,
			Description:     row.Quiz.Description,
			DurationMinutes: row.Quiz.DurationMinutes,
			Price:           row.Quiz.Price,
			IsActive:        row.Quiz.IsActive,
			QuestionCount:   row.QuestionCount,
			CreatedAt:       row.Quiz.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *adminQuizService) DeleteQuiz(id uuid.UUID) error {
	return s.quizRepo.Delete(id)
}

func (s *adminQuizService) SetActive(id uuid.UUID, active bool) error {
	return s.quizRepo.SetActive(id, active)
}

func adminQuizDetail(quiz *model.Quiz) *dto.AdminQuizDetailDTO {
	detail := &dto.AdminQuizDetailDTO{
		ID:              quiz.ID.String(),
		Title:           quiz.Title,
		Description:     quiz.Description,
		DurationMinutes: quiz.DurationMinutes,
		Price:           quiz.Price,
		IsActive:        quiz.IsActive,
		CreatedAt:       quiz.CreatedAt,
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		detail.Questions = append(detail.Questions, dto.AdminQuestionDTO{
			ID:             q.ID.String(),
			Position:       q.Position,
			Text:           q.Text,
			Type:           string(q.Type),
			Options:        q.OptionTexts(),
			CorrectAnswers: q.CorrectIndexSet(),
		})
	}
	return detail
}
