package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionType string

const (
	// QuestionSingle allows exactly one selected option.
	QuestionSingle QuestionType = "single"
	// QuestionMultiple allows any subset of options.
	QuestionMultiple QuestionType = "multiple"
)

type Quiz struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `json:"description,omitempty"`
	DurationMinutes int            `gorm:"not null" json:"duration_minutes"`
	Price           float64        `gorm:"not null;default:0" json:"price"`
	IsActive        bool           `gorm:"not null;default:false" json:"is_active"`
	Questions       []Question     `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

type Question struct {
	ID       uuid.UUID    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID   uuid.UUID    `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Position int          `gorm:"not null" json:"position"`
	Text     string       `gorm:"type:text;not null" json:"text"`
	Type     QuestionType `gorm:"type:varchar(20);not null" json:"type"`
	Options  []Option     `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Position   int       `gorm:"not null" json:"position"`
	Text       string    `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
}

// CorrectIndexSet returns the answer key: the positions of all correct options.
// Options are assumed ordered by Position, which repositories guarantee.
func (q *Question) CorrectIndexSet() []int {
	var correct []int
	for _, opt := range q.Options {
		if opt.IsCorrect {
			correct = append(correct, opt.Position)
		}
	}
	return correct
}

// OptionTexts returns option text in display order.
func (q *Question) OptionTexts() []string {
	texts := make([]string, len(q.Options))
	for i, opt := range q.Options {
		texts[i] = opt.Text
	}
	return texts
}
