package model

import (
	"time"

	"github.com/google/uuid"
)

type Trainer struct {
	ID          uuid.UUID   `json:"id"`
	FirstName   string      `json:"first_name"`
	LastName    string      `json:"last_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Specialties []uuid.UUID `json:"specialties"`
	Bio         string      `json:"bio"`
	Status      string      `json:"status"`
	ResumeURL   *string     `json:"resume_url,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

const (
	TrainerActive   = "active"
	TrainerInactive = "inactive"
)
