package model

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// RegistrationRequest is recorded when a visitor signs up from a shared exam
// link. QuizTitle is a snapshot for the admin students page.
type RegistrationRequest struct {
	ID          uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID      uuid.UUID          `gorm:"type:uuid;not null;index" json:"quiz_id"`
	QuizTitle   string             `gorm:"not null" json:"quiz_title"`
	FullName    string             `gorm:"not null" json:"full_name"`
	Email       string             `gorm:"not null" json:"email"`
	Phone       string             `gorm:"size:30" json:"phone"`
	Status      RegistrationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RequestedAt time.Time          `gorm:"autoCreateTime" json:"requested_at"`
}
