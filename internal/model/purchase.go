package model

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records that a student has unlocked a quiz. The composite primary
// key makes the grant naturally idempotent: a second purchase of the same quiz
// conflicts with the existing row instead of appending another.
type Purchase struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	QuizID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"quiz_id"`
	CreatedAt time.Time `json:"created_at"`
}
