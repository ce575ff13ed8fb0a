package repository

import (
	"errors"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultRepository is append-only: results are created once and never updated.
type ResultRepository interface {
	Append(result *model.QuizResult) error
	FindByID(id uuid.UUID) (*model.QuizResult, error)
	FindAll(quizID *uuid.UUID) ([]model.QuizResult, error)
	FindByStudent(studentID uuid.UUID) ([]model.QuizResult, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

func (r *resultRepository) Append(result *model.QuizResult) error {
	return r.db.Create(result).Error
}

func (r *resultRepository) FindByID(id uuid.UUID) (*model.QuizResult, error) {
	var result model.QuizResult
	if err := r.db.First(&result, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAll(quizID *uuid.UUID) ([]model.QuizResult, error) {
	var results []model.QuizResult
	query := r.db.Order("submitted_at desc")
	if quizID != nil {
		query = query.Where("quiz_id = ?", *quizID)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *resultRepository) FindByStudent(studentID uuid.UUID) ([]model.QuizResult, error) {
	var results []model.QuizResult
	err := r.db.Where("student_id = ?", studentID).
		Order("submitted_at desc").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
