package service

import (
	"fmt"
	"time"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ExamService owns the exam-taking flow: starting a session behind the
// entitlement gate, capturing answers, navigation, and the single submit
// boundary where a session is scored and frozen into a QuizResult.
type ExamService interface {
	Start(quizID, studentID uuid.UUID) (*dto.SessionViewDTO, error)
	View(sessionID, studentID uuid.UUID) (*dto.SessionViewDTO, error)
	SelectAnswer(sessionID, studentID uuid.UUID, req dto.SelectAnswerDTO) (*dto.SessionViewDTO, error)
	Navigate(sessionID, studentID uuid.UUID, req dto.NavigateDTO) (*dto.SessionViewDTO, error)
	Submit(sessionID, studentID uuid.UUID) (*dto.ResultSummaryDTO, error)
	Forfeit(sessionID, studentID uuid.UUID) error
}

type examService struct {
	quizRepo     repository.QuizRepository
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	resultRepo   repository.ResultRepository
	scoring      ScoringService
	sessions     *SessionStore
	now          func() time.Time
}

func NewExamService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
	resultRepo repository.ResultRepository,
	scoring ScoringService,
	sessions *SessionStore,
) ExamService {
	return newExamService(quizRepo, userRepo, purchaseRepo, resultRepo, scoring, sessions, time.Now)
}

// NewExamServiceWithClock is test-only for deterministic timer behavior.
func NewExamServiceWithClock(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
	resultRepo repository.ResultRepository,
	scoring ScoringService,
	sessions *SessionStore,
	now func() time.Time,
) ExamService {
	return newExamService(quizRepo, userRepo, purchaseRepo, resultRepo, scoring, sessions, now)
}

func newExamService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	purchaseRepo repository.PurchaseRepository,
	resultRepo repository.ResultRepository,
	scoring ScoringService,
	sessions *SessionStore,
	now func() time.Time,
) ExamService {
	return &examService{
		quizRepo:     quizRepo,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		resultRepo:   resultRepo,
		scoring:      scoring,
		sessions:     sessions,
		now:          now,
	}
}

// Start opens a session for an active, purchased quiz. Free quizzes still go
// through the entitlement gate; purchase is the unlock flag, not the payment.
// Starting again while a session is live returns the existing session.
func (s *examService) Start(quizID, studentID uuid.UUID) (*dto.SessionViewDTO, error) {
	quiz, err := s.quizRepo.FindByIDWithQuestions(quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, apperr.ErrQuizInactive
	}
	if len(quiz.Questions) == 0 {
		// Authoring validation prevents this; an empty quiz must never be scored.
		return nil, apperr.ErrQuizInactive
	}

	entitled, err := s.purchaseRepo.HasPurchased(studentID, quizID)
	if err != nil {
		return nil, fmt.Errorf("checking entitlement: %w", err)
	}
	if !entitled {
		return nil, apperr.ErrNotEntitled
	}

	if existing, ok := s.sessions.FindByOwner(studentID, quizID); ok {
		existing.mu.Lock()
		defer existing.mu.Unlock()
		s.touchLocked(existing)
		if existing.state == SessionInProgress {
			return s.viewLocked(existing), nil
		}
		// The previous attempt was submitted; fall through to a fresh session.
		s.sessions.Remove(existing.ID)
	}

	student, err := s.userRepo.FindByID(studentID)
	if err != nil {
		return nil, err
	}

	session := newExamSession(quiz, student, s.now)
	session.mu.Lock()
	defer session.mu.Unlock()

	s.sessions.Put(session)
	sessionID := session.ID
	session.expireTimer = time.AfterFunc(session.deadline.Sub(session.startedAt), func() {
		s.autoSubmit(sessionID)
	})

	log.Info().
		Str("session_id", sessionID.String()).
		Str("quiz_id", quizID.String()).
		Str("student_id", studentID.String()).
		Int("duration_minutes", quiz.DurationMinutes).
		Msg("Exam session started")

	return s.viewLocked(session), nil
}

func (s *examService) View(sessionID, studentID uuid.UUID) (*dto.SessionViewDTO, error) {
	session, err := s.ownedSession(sessionID, studentID)
	if err != nil {
		return nil, err
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	s.touchLocked(session)
	return s.viewLocked(session), nil
}

// SelectAnswer applies a click on an option. Single-choice replaces the whole
// selection; multiple-choice toggles membership.
func (s *examService) SelectAnswer(sessionID, studentID uuid.UUID, req dto.SelectAnswerDTO) (*dto.SessionViewDTO, error) {
	session, err := s.ownedSession(sessionID, studentID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	s.touchLocked(session)
	if session.state != SessionInProgress {
		return nil, apperr.ErrAlreadySubmitted
	}

	question := findQuestion(session.Quiz, req.QuestionID)
	if question == nil {
		return nil, apperr.ErrNotFound
	}
	optionIndex := *req.OptionIndex
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		ve := &apperr.ValidationError{}
		return nil, ve.Add("option_index", fmt.Sprintf("index %d is outside the option range", optionIndex))
	}

	if question.Type == model.QuestionSingle {
		session.answers.Replace(req.QuestionID, optionIndex)
	} else {
		session.answers.Toggle(req.QuestionID, optionIndex)
	}
	return s.viewLocked(session), nil
}

func (s *examService) Navigate(sessionID, studentID uuid.UUID, req dto.NavigateDTO) (*dto.SessionViewDTO, error) {
	session, err := s.ownedSession(sessionID, studentID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	s.touchLocked(session)
	if session.state != SessionInProgress {
		return nil, apperr.ErrAlreadySubmitted
	}

	switch {
	case req.To != nil:
		session.navigateLocked(*req.To)
	case req.Direction == "prev":
		session.navigateLocked(session.current - 1)
	case req.Direction == "next":
		session.navigateLocked(session.current + 1)
	}
	return s.viewLocked(session), nil
}

// Submit freezes the session into a QuizResult. It is the only persistence
// write a session ever performs, and the terminal state guards against a
// second submit re-scoring or re-persisting.
func (s *examService) Submit(sessionID, studentID uuid.UUID) (*dto.ResultSummaryDTO, error) {
	session, err := s.ownedSession(sessionID, studentID)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.state == SessionSubmitted {
		return nil, apperr.ErrAlreadySubmitted
	}

	result, err := s.submitLocked(session, "manual")
	if err != nil {
		return nil, err
	}
	return resultSummary(result), nil
}

// Forfeit discards the in-memory session with no side effects: no partial
// result is ever persisted for an abandoned attempt.
func (s *examService) Forfeit(sessionID, studentID uuid.UUID) error {
	session, err := s.ownedSession(sessionID, studentID)
	if err != nil {
		return err
	}

	session.mu.Lock()
	session.stopTimerLocked()
	session.mu.Unlock()

	s.sessions.Remove(sessionID)
	log.Info().Str("session_id", sessionID.String()).Msg("Exam session forfeited")
	return nil
}

// autoSubmit fires from the expiry timer. It submits with whatever answers
// exist at that instant, exactly as if the student pressed submit; the state
// check makes it a no-op when a manual submit already won the race.
func (s *examService) autoSubmit(sessionID uuid.UUID) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.state != SessionInProgress {
		return
	}
	if _, err := s.submitLocked(session, "timer"); err != nil {
		log.Error().Err(err).Str("session_id", sessionID.String()).Msg("Auto-submit failed; session left in progress")
	}
}

// touchLocked is the lazy half of expiry: any access after the deadline
// triggers the same submit path the timer uses.
func (s *examService) touchLocked(session *ExamSession) {
	if session.state != SessionInProgress || !session.expiredLocked() {
		return
	}
	if _, err := s.submitLocked(session, "deadline"); err != nil {
		log.Error().Err(err).Str("session_id", session.ID.String()).Msg("Expiry submit failed; session left in progress")
	}
}

func (s *examService) submitLocked(session *ExamSession, trigger string) (*model.QuizResult, error) {
	frozen := session.answers.Clone()
	score, correctCount := s.scoring.Score(session.Quiz.Questions, frozen)

	answersJSON, err := frozen.ToJSON()
	if err != nil {
		return nil, fmt.Errorf("freezing answers: %w", err)
	}

	result := &model.QuizResult{
		ID:             uuid.New(),
		QuizID:         session.Quiz.ID,
		QuizTitle:      session.Quiz.Title,
		StudentID:      session.Student.ID,
		StudentName:    session.Student.FullName,
		StudentEmail:   session.Student.Email,
		Answers:        answersJSON,
		Score:          score,
		TotalQuestions: len(session.Quiz.Questions),
		SubmittedAt:    s.now(),
	}

	if err := s.resultRepo.Append(result); err != nil {
		log.Error().Err(err).Str("session_id", session.ID.String()).Msg("Failed to persist quiz result")
		return nil, fmt.Errorf("persisting result: %w", err)
	}

	session.state = SessionSubmitted
	session.resultID = result.ID
	session.stopTimerLocked()

	log.Info().
		Str("session_id", session.ID.String()).
		Str("result_id", result.ID.String()).
		Str("trigger", trigger).
		Int("score", score).
		Int("correct", correctCount).
		Int("total", result.TotalQuestions).
		Msg("Exam session submitted")

	return result, nil
}

func (s *examService) ownedSession(sessionID, studentID uuid.UUID) (*ExamSession, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, apperr.ErrSessionNotFound
	}
	if session.Student.ID != studentID {
		return nil, apperr.ErrForbidden
	}
	return session, nil
}

func (s *examService) viewLocked(session *ExamSession) *dto.SessionViewDTO {
	view := &dto.SessionViewDTO{
		SessionID:            session.ID.String(),
		QuizID:               session.Quiz.ID.String(),
		QuizTitle:            session.Quiz.Title,
		State:                string(session.state),
		CurrentQuestionIndex: session.current,
		TotalQuestions:       len(session.Quiz.Questions),
		RemainingSeconds:     session.remainingSecondsLocked(),
		Answers:              session.answers.Clone(),
	}
	if session.state == SessionSubmitted {
		id := session.resultID.String()
		view.ResultID = &id
		return view
	}

	question := &session.Quiz.Questions[session.current]
	view.CurrentQuestion = &dto.QuestionViewDTO{
		ID:       question.ID.String(),
		Position: question.Position,
		Text:     question.Text,
		Type:     string(question.Type),
		Options:  question.OptionTexts(),
	}
	return view
}

func findQuestion(quiz *model.Quiz, questionID string) *model.Question {
	for i := range quiz.Questions {
		if quiz.Questions[i].ID.String() == questionID {
			return &quiz.Questions[i]
		}
	}
	return nil
}

func resultSummary(result *model.QuizResult) *dto.ResultSummaryDTO {
	answers, err := model.AnswerMapFromJSON(result.Answers)
	if err != nil {
		log.Warn().Err(err).Str("result_id", result.ID.String()).Msg("Unreadable answer snapshot")
	}
	return &dto.ResultSummaryDTO{
		ID:             result.ID.String(),
		QuizID:         result.QuizID.String(),
		QuizTitle:      result.QuizTitle,
		StudentName:    result.StudentName,
		StudentEmail:   result.StudentEmail,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		AnsweredCount:  len(answers),
		SubmittedAt:    result.SubmittedAt,
	}
}
