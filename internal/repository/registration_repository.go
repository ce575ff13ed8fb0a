package repository

import (
	"github.com/Nurlanbcg/quiz/internal/model"
	"gorm.io/gorm"
)

type RegistrationRepository interface {
	Create(request *model.RegistrationRequest) error
	FindAll() ([]model.RegistrationRequest, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(request *model.RegistrationRequest) error {
	return r.db.Create(request).Error
}

func (r *registrationRepository) FindAll() ([]model.RegistrationRequest, error) {
	var requests []model.RegistrationRequest
	if err := r.db.Order("requested_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
