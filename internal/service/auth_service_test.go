package service

import (
	"errors"
	"testing"

	"github.com/Nurlanbcg/quiz/config"
	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/model"
)

func testTokenService() TokenService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 60
	return NewTokenService(cfg)
}

func newAuthFixture() (AuthService, *fakeUserRepo, *fakeQuizRepo, *fakeRegistrationRepo, TokenService) {
	users := newFakeUserRepo()
	quizzes := newFakeQuizRepo()
	registrations := &fakeRegistrationRepo{}
	tokens := testTokenService()
	svc := NewAuthService(users, quizzes, registrations, tokens)
	return svc, users, quizzes, registrations, tokens
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _, _, _, tokens := newAuthFixture()

	registered, err := svc.Register(dto.RegisterDTO{
		FullName: "Anna Smith",
		Email:    "anna@example.com",
		Phone:    "0123456789",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("registering: %v", err)
	}
	if registered.User.Role != string(model.RoleStudent) {
		t.Errorf("role: got %q, want student", registered.User.Role)
	}

	claims, err := tokens.Verify(registered.Token)
	if err != nil {
		t.Fatalf("verifying issued token: %v", err)
	}
	if claims.UserID != registered.User.ID {
		t.Errorf("token user id: got %q, want %q", claims.UserID, registered.User.ID)
	}
	if claims.Role != string(model.RoleStudent) {
		t.Errorf("token role: got %q", claims.Role)
	}

	logged, err := svc.Login(dto.LoginDTO{Email: "anna@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("logging in: %v", err)
	}
	if logged.User.ID != registered.User.ID {
		t.Errorf("login returned a different user")
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture()

	req := dto.RegisterDTO{FullName: "A", Email: "dup@example.com", Phone: "1", Password: "secret1"}
	if _, err := svc.Register(req); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(req); !errors.Is(err, apperr.ErrEmailTaken) {
		t.Errorf("got %v, want ErrEmailTaken", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _, _, _ := newAuthFixture()

	if _, err := svc.Register(dto.RegisterDTO{
		FullName: "B", Email: "b@example.com", Phone: "1", Password: "correct-pass",
	}); err != nil {
		t.Fatalf("registering: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	if _, err := svc.Login(dto.LoginDTO{Email: "b@example.com", Password: "wrong"}); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(dto.LoginDTO{Email: "nobody@example.com", Password: "whatever"}); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v, want ErrInvalidCredentials", err)
	}
}

func TestRegisterRecordsQuizRegistration(t *testing.T) {
	svc, _, quizzes, registrations, _ := newAuthFixture()

	quiz := twoQuestionQuiz()
	if err := quizzes.Create(quiz); err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}

	quizID := quiz.ID.String()
	if _, err := svc.Register(dto.RegisterDTO{
		FullName: "C", Email: "c@example.com", Phone: "2", Password: "secret1", QuizID: &quizID,
	}); err != nil {
		t.Fatalf("registering with quiz link: %v", err)
	}

	if len(registrations.requests) != 1 {
		t.Fatalf("registration requests: got %d, want 1", len(registrations.requests))
	}
	request := registrations.requests[0]
	if request.QuizTitle != quiz.Title {
		t.Errorf("quiz title: got %q", request.QuizTitle)
	}
	if request.Status != model.RegistrationPending {
		t.Errorf("status: got %q, want pending", request.Status)
	}
}

func TestRegisterIgnoresUnknownQuizLink(t *testing.T) {
	svc, _, _, registrations, _ := newAuthFixture()

	unknown := "0b9fd01c-9f3a-4f86-9b1e-9f4f6f6e0a01"
	if _, err := svc.Register(dto.RegisterDTO{
		FullName: "D", Email: "d@example.com", Phone: "3", Password: "secret1", QuizID: &unknown,
	}); err != nil {
		t.Fatalf("register should survive a dead quiz link: %v", err)
	}
	if len(registrations.requests) != 0 {
		t.Errorf("dead link recorded a request")
	}
}
