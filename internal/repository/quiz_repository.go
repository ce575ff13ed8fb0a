package repository

import (
	"errors"

	"github.com/Nurlanbcg/quiz/internal/apperr"
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	Create(quiz *model.Quiz) error
	FindByID(id uuid.UUID) (*model.Quiz, error)
	FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error)
	FindActiveWithQuestionCount() ([]QuizWithCount, error)
	FindAllWithQuestionCount() ([]QuizWithCount, error)
	SetActive(id uuid.UUID, active bool) error
	Delete(id uuid.UUID) error
}

// QuizWithCount is a listing row: quiz metadata plus its question count.
type QuizWithCount struct {
	model.Quiz
	QuestionCount int
}

type quizRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) Create(quiz *model.Quiz) error {
	// GORM creates the associated questions and options in one go.
	return r.db.Create(quiz).Error
}

func (r *quizRepository) FindByID(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := r.db.First(&quiz, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindByIDWithQuestions(id uuid.UUID) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.position ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position ASC")
		}).
		First(&quiz, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepository) FindActiveWithQuestionCount() ([]QuizWithCount, error) {
	return r.findWithQuestionCount(true)
}

func (r *quizRepository) FindAllWithQuestionCount() ([]QuizWithCount, error) {
	return r.findWithQuestionCount(false)
}

func (r *quizRepository) findWithQuestionCount(activeOnly bool) ([]QuizWithCount, error) {
	var results []QuizWithCount
	query := r.db.Model(&model.Quiz{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM questions WHERE questions.quiz_id = quizzes.id) as question_count").
		Where("quizzes.deleted_at IS NULL").
		Order("quizzes.created_at DESC")
	if activeOnly {
		query = query.Where("quizzes.is_active = ?", true)
	}
	if err := query.Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *quizRepository) SetActive(id uuid.UUID, active bool) error {
	res := r.db.Model(&model.Quiz{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&model.Quiz{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
