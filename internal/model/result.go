package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizResult is the immutable outcome of a submitted exam session. QuizTitle,
// StudentName and StudentEmail are snapshots so a result survives later edits
// or deletion of the quiz and the user. Rows are append-only: nothing updates
// them after creation.
type QuizResult struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuizTitle      string         `gorm:"not null" json:"quiz_title"`
	StudentID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"student_id"`
	StudentName    string         `gorm:"not null" json:"student_name"`
	StudentEmail   string         `gorm:"not null" json:"student_email"`
	Answers        datatypes.JSON `gorm:"type:jsonb;not null" json:"answers"`
	Score          int            `gorm:"not null" json:"score"`
	TotalQuestions int            `gorm:"not null" json:"total_questions"`
	SubmittedAt    time.Time      `gorm:"not null" json:"submitted_at"`
}
