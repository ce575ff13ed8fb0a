package service

import (
	"sync"
	"time"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
)

// In-memory repository fakes. Each one mimics only the behavior the services
// depend on: not-found mapping, idempotent grants, append-only results.

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*model.Quiz
}

func newFakeQuizRepo(quizzes ...*model.Quiz) *fakeQuizRepo {
	repo := &fakeQuizRepo{quizzes: make(map[uuid.UUID]*model.Quiz)}
	for _, q := range quizzes {
		repo.quizzes[q.ID] = q
	}
	return repo
}

func (r *fakeQuizRepo) Create(quiz *model.Quiz) error {
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.ID == uuid.Nil {
			q.ID = uuid.New()
		}
		q.QuizID = quiz.ID
		for j := range q.Options {
			if q.Options[j].ID == uuid.Nil {
				q.Options[j].ID = uuid.New()
			}
			q.Options[j].QuestionID = q.ID
		}
	}
	r.quizzes[quiz.ID] = quiz
	return nil
}

func (r *fakeQuizRepo) FindByID(id uuid.UUID) (*model.Quiz, error) {
	quiz, ok := r.quizzes[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return quiz, nil
}

func (r *fakeQuizRepo) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	return r.FindByID(id)
}

func (r *fakeQuizRepo) FindActiveWithQuestionCount() ([]repository.QuizWithCount, error) {
	var rows []repository.QuizWithCount
	for _, q := range r.quizzes {
		if q.IsActive {
			rows = append(rows, repository.QuizWithCount{Quiz: *q, QuestionCount: len(q.Questions)})
		}
	}
	return rows, nil
}

func (r *fakeQuizRepo) FindAllWithQuestionCount() ([]repository.QuizWithCount, error) {
	var rows []repository.QuizWithCount
	for _, q := range r.quizzes {
		rows = append(rows, repository.QuizWithCount{Quiz: *q, QuestionCount: len(q.Questions)})
	}
	return rows, nil
}

func (r *fakeQuizRepo) SetActive(id uuid.UUID, active bool) error {
	quiz, ok := r.quizzes[id]
	if !ok {
		return apperr.ErrNotFound
	}
	quiz.IsActive = active
	return nil
}

func (r *fakeQuizRepo) Delete(id uuid.UUID) error {
	if _, ok := r.quizzes[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.quizzes, id)
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeUserRepo) FindAll() ([]model.User, error) {
	var users []model.User
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return apperr.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type purchaseKey struct {
	userID uuid.UUID
	quizID uuid.UUID
}

type fakePurchaseRepo struct {
	grants     map[purchaseKey]bool
	grantCalls int
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{grants: make(map[purchaseKey]bool)}
}

func (r *fakePurchaseRepo) Grant(userID, quizID uuid.UUID) error {
	r.grantCalls++
	r.grants[purchaseKey{userID, quizID}] = true
	return nil
}

func (r *fakePurchaseRepo) HasPurchased(userID, quizID uuid.UUID) (bool, error) {
	return r.grants[purchaseKey{userID, quizID}], nil
}

func (r *fakePurchaseRepo) QuizIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for key := range r.grants {
		if key.userID == userID {
			ids = append(ids, key.quizID)
		}
	}
	return ids, nil
}

type fakeResultRepo struct {
	results   []*model.QuizResult
	appendErr error
}

func (r *fakeResultRepo) Append(result *model.QuizResult) error {
	if r.appendErr != nil {
		err := r.appendErr
		r.appendErr = nil
		return err
	}
	r.results = append(r.results, result)
	return nil
}

func (r *fakeResultRepo) FindByID(id uuid.UUID) (*model.QuizResult, error) {
	for _, res := range r.results {
		if res.ID == id {
			return res, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *fakeResultRepo) FindAll(quizID *uuid.UUID) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for _, res := range r.results {
		if quizID != nil && res.QuizID != *quizID {
			continue
		}
		out = append(out, *res)
	}
	return out, nil
}

func (r *fakeResultRepo) FindByStudent(studentID uuid.UUID) ([]model.QuizResult, error) {
	var out []model.QuizResult
	for _, res := range r.results {
		if res.StudentID == studentID {
			out = append(out, *res)
		}
	}
	return out, nil
}

type fakeRegistrationRepo struct {
	requests []model.RegistrationRequest
}

func (r *fakeRegistrationRepo) Create(request *model.RegistrationRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	r.requests = append(r.requests, *request)
	return nil
}

func (r *fakeRegistrationRepo) FindAll() ([]model.RegistrationRequest, error) {
	return r.requests, nil
}

// fakeClock is a settable session clock. Advancing it past the deadline makes
// the next session access trip the lazy expiry path.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{t: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// Test fixtures.

func newTestQuestion(text string, qType model.QuestionType, optionCount int, correct ...int) model.Question {
	key := make(map[int]bool, len(correct))
	for _, idx := range correct {
		key[idx] = true
	}
	question := model.Question{
		ID:   uuid.New(),
		Text: text,
		Type: qType,
	}
	for i := 0; i < optionCount; i++ {
		question.Options = append(question.Options, model.Option{
			ID:        uuid.New(),
			Position:  i,
			Text:      text + " option",
			IsCorrect: key[i],
		})
	}
	return question
}

func newTestQuiz(durationMinutes int, questions ...model.Question) *model.Quiz {
	quiz := &model.Quiz{
		ID:              uuid.New(),
		Title:           "Algebra Basics",
		DurationMinutes: durationMinutes,
		IsActive:        true,
		Questions:       questions,
	}
	for i := range quiz.Questions {
		quiz.Questions[i].Position = i
		quiz.Questions[i].QuizID = quiz.ID
		for j := range quiz.Questions[i].Options {
			quiz.Questions[i].Options[j].QuestionID = quiz.Questions[i].ID
		}
	}
	return quiz
}

func newTestStudent() *model.User {
	return &model.User{
		ID:       uuid.New(),
		Email:    "student@example.com",
		FullName: "Test Student",
		Phone:    "0123456789",
		Role:     model.RoleStudent,
	}
}
