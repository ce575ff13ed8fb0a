package repository

import (
	"github.com/Nurlanbcg/quiz/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PurchaseRepository interface {
	Grant(userID, quizID uuid.UUID) error
	HasPurchased(userID, quizID uuid.UUID) (bool, error)
	QuizIDsForUser(userID uuid.UUID) ([]uuid.UUID, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// Grant is idempotent: re-purchasing an already-owned quiz is a no-op, enforced
// by the composite primary key rather than a read-then-write check.
func (r *purchaseRepository) Grant(userID, quizID uuid.UUID) error {
	purchase := model.Purchase{UserID: userID, QuizID: quizID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&purchase).Error
}

func (r *purchaseRepository) HasPurchased(userID, quizID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Purchase{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *purchaseRepository) QuizIDsForUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&model.Purchase{}).
		Where("user_id = ?", userID).
		Pluck("quiz_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
