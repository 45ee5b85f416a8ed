package model

import (
	"time"

	"github.com/google/uuid"
)

type RegistrationStatus string

const (
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationCancelled RegistrationStatus = "cancelled"
	RegistrationWaitlist  RegistrationStatus = "waitlist"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentPaid      PaymentStatus = "paid"
	PaymentCancelled PaymentStatus = "cancelled"
)

// Registration links a participant to a session. ParticipantName,
// ParticipantEmail and Company are denormalized snapshots taken at
// registration time.
type Registration struct {
	ID               uuid.UUID          `json:"id"`
	SessionID        uuid.UUID          `json:"session_id"`
	ParticipantID    uuid.UUID          `json:"participant_id"`
	ParticipantName  string             `json:"participant_name"`
	ParticipantEmail string             `json:"participant_email"`
	Company          string             `json:"company"`
	Status           RegistrationStatus `json:"status"`
	RegistrationDate time.Time          `json:"registration_date"`
	Prerequisites    bool               `json:"prerequisites"`
	PaymentStatus    PaymentStatus      `json:"payment_status"`
	Comments         *string            `json:"comments,omitempty"`
}
