package service

import (
	"errors"
	"fmt"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(req dto.RegisterDTO) (*dto.AuthResponseDTO, error)
	Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error)
}

type authService struct {
	userRepo         repository.UserRepository
	quizRepo         repository.QuizRepository
	registrationRepo repository.RegistrationRepository
	tokens           TokenService
}

func NewAuthService(
	userRepo repository.UserRepository,
	quizRepo repository.QuizRepository,
	registrationRepo repository.RegistrationRepository,
	tokens TokenService,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		quizRepo:         quizRepo,
		registrationRepo: registrationRepo,
		tokens:           tokens,
	}
}

func (s *authService) Register(req dto.RegisterDTO) (*dto.AuthResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperr.ErrEmailTaken
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, fmt.Errorf("checking existing email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := model.User{
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     model.RoleStudent,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	// Registrations from a shared exam link are recorded for the admin
	// students page. A bad quiz id does not fail the signup itself.
	if req.QuizID != nil {
		s.recordRegistration(*req.QuizID, &user)
	}

	return s.authResponse(&user)
}

func (s *authService) recordRegistration(quizID string, user *model.User) {
	id, err := uuid.Parse(quizID)
	if err != nil {
		log.Warn().Str("quiz_id", quizID).Msg("Registration referenced an unparsable quiz id")
		return
	}
	quiz, err := s.quizRepo.FindByID(id)
	if err != nil {
		log.Warn().Err(err).Str("quiz_id", quizID).Msg("Registration referenced an unknown quiz")
		return
	}
	request := model.RegistrationRequest{
		QuizID:    quiz.ID,
		QuizTitle: quiz.Title,
		FullName:  user.FullName,
		Email:     user.Email,
		Phone:     user.Phone,
		Status:    model.RegistrationPending,
	}
	if err := s.registrationRepo.Create(&request); err != nil {
		log.Error().Err(err).Str("email", user.Email).Msg("Failed to record registration request")
	}
}

func (s *authService) Login(req dto.LoginDTO) (*dto.AuthResponseDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			// Same answer as a wrong password; never reveal which field failed.
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *authService) authResponse(user *model.User) (*dto.AuthResponseDTO, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("Failed to sign token")
		return nil, fmt.Errorf("signing token: %w", err)
	}
	return &dto.AuthResponseDTO{
		Token: token,
		User: dto.UserDTO{
			ID:        user.ID.String(),
			Email:     user.Email,
			FullName:  user.FullName,
			Phone:     user.Phone,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		},
	}, nil
}
