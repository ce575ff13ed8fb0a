package service

import (
	"sync"
	"time"

	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/google/uuid"
)

type SessionState string

const (
	// SessionInProgress is the only state a live session can be mutated in.
	SessionInProgress SessionState = "in_progress"
	// SessionSubmitted is terminal; there is no transition back.
	SessionSubmitted SessionState = "submitted"
)

// ExamSession is the ephemeral state of one student's attempt at one quiz.
// It lives only in memory: nothing is persisted until submit, and abandoning
// the session discards it without side effects.
//
// Remaining time is derived from a fixed deadline and the session clock on
// every read, never from an accumulating decrement, so the countdown cannot
// drift and expiry is testable without real time passing.
type ExamSession struct {
	ID      uuid.UUID
	Quiz    *model.Quiz
	Student *model.User

	mu          sync.Mutex
	state       SessionState
	current     int
	answers     model.AnswerMap
	startedAt   time.Time
	deadline    time.Time
	now         func() time.Time
	expireTimer *time.Timer
	resultID    uuid.UUID
}

func newExamSession(quiz *model.Quiz, student *model.User, now func() time.Time) *ExamSession {
	startedAt := now()
	return &ExamSession{
		ID:        uuid.New(),
		Quiz:      quiz,
		Student:   student,
		state:     SessionInProgress,
		current:   0,
		answers:   make(model.AnswerMap),
		startedAt: startedAt,
		deadline:  startedAt.Add(time.Duration(quiz.DurationMinutes) * time.Minute),
		now:       now,
	}
}

// remainingSecondsLocked floors at zero; the countdown never goes negative.
func (s *ExamSession) remainingSecondsLocked() int {
	remaining := s.deadline.Sub(s.now())
	if remaining < 0 {
		return 0
	}
	return int(remaining / time.Second)
}

func (s *ExamSession) expiredLocked() bool {
	return !s.now().Before(s.deadline)
}

// navigateLocked clamps instead of failing: moving before the first or past
// the last question is a no-op.
func (s *ExamSession) navigateLocked(target int) {
	if target < 0 || target >= len(s.Quiz.Questions) {
		return
	}
	s.current = target
}

func (s *ExamSession) stopTimerLocked() {
	if s.expireTimer != nil {
		s.expireTimer.Stop()
		s.expireTimer = nil
	}
}

// SessionStore holds live exam sessions. Each session is owned by exactly one
// student, so the store only needs to guard its own maps; per-session state is
// guarded by the session's own mutex.
type SessionStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*ExamSession
	byOwner map[sessionOwner]uuid.UUID
}

type sessionOwner struct {
	studentID uuid.UUID
	quizID    uuid.UUID
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		byID:    make(map[uuid.UUID]*ExamSession),
		byOwner: make(map[sessionOwner]uuid.UUID),
	}
}

func (st *SessionStore) Put(session *ExamSession) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.byID[session.ID] = session
	st.byOwner[sessionOwner{session.Student.ID, session.Quiz.ID}] = session.ID
}

func (st *SessionStore) Get(id uuid.UUID) (*ExamSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.byID[id]
	return session, ok
}

func (st *SessionStore) FindByOwner(studentID, quizID uuid.UUID) (*ExamSession, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	id, ok := st.byOwner[sessionOwner{studentID, quizID}]
	if !ok {
		return nil, false
	}
	session, ok := st.byID[id]
	return session, ok
}

func (st *SessionStore) Remove(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	session, ok := st.byID[id]
	if !ok {
		return
	}
	delete(st.byID, id)
	delete(st.byOwner, sessionOwner{session.Student.ID, session.Quiz.ID})
}
