package model

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	ID        uuid.UUID  `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	JobTitle  *string    `json:"job_title,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

const (
	ParticipantActive   = "active"
	ParticipantInactive = "inactive"
)
