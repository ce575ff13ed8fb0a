package service

import (
	"fmt"

	"github.com/Nurlanbcg/quiz/internal/dto"
	"github.com/Nurlanbcg/quiz/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

// AdminUserService backs the admin users and students pages.
type AdminUserService interface {
	ListUsers() ([]dto.UserDTO, error)
	DeleteUser(id uuid.UUID) error
	ListRegistrations() ([]dto.RegistrationRequestDTO, error)
}

type adminUserService struct {
	userRepo         repository.UserRepository
	registrationRepo repository.RegistrationRepository
}

func NewAdminUserService(
	userRepo repository.UserRepository,
	registrationRepo repository.RegistrationRepository,
) AdminUserService {
	return &adminUserService{userRepo: userRepo, registrationRepo: registrationRepo}
}

func (s *adminUserService) ListUsers() ([]dto.UserDTO, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, fmt.Errorf("error fetching users: %w", err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		var row dto.UserDTO
		if err := copier.Copy(&row, &users[i]); err != nil {
			log.Error().Err(err).Msg("Failed to copy User model to UserDTO")
			return nil, fmt.Errorf("error preparing users response: %w", err)
		}
		// uuid fields do not copy by name; set them explicitly.
		row.ID = users[i].ID.String()
		row.Role = string(users[i].Role)
		dtos = append(dtos, row)
	}
	return dtos, nil
}

func (s *adminUserService) DeleteUser(id uuid.UUID) error {
	return s.userRepo.Delete(id)
}

func (s *adminUserService) ListRegistrations() ([]dto.RegistrationRequestDTO, error) {
	requests, err := s.registrationRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list registration requests")
		return nil, fmt.Errorf("error fetching registration requests: %w", err)
	}

	dtos := make([]dto.RegistrationRequestDTO, 0, len(requests))
	for i := range requests {
		var row dto.RegistrationRequestDTO
		if err := copier.Copy(&row, &requests[i]); err != nil {
			log.Error().Err(err).Msg("Failed to copy RegistrationRequest to DTO")
			return nil, fmt.Errorf("error preparing registrations response: %w", err)
		}
		row.ID = requests[i].ID.String()
		row.QuizID = requests[i].QuizID.String()
		row.Status = string(requests[i].Status)
		dtos = append(dtos, row)
	}
	return dtos, nil
}
