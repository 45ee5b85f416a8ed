package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionStatus string

const (
	SessionScheduled  SessionStatus = "scheduled"
	SessionConfirmed  SessionStatus = "confirmed"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionCancelled  SessionStatus = "cancelled"
)

// StatusHistoryEntry records one status transition of a session. UserID and
// UserName are a snapshot of the acting user at transition time, so the entry
// stays accurate even if that user is later renamed or deleted.
type StatusHistoryEntry struct {
	ID       uuid.UUID     `json:"id"`
	Status   SessionStatus `json:"status"`
	Date     time.Time     `json:"date"`
	UserID   uuid.UUID     `json:"user_id"`
	UserName string        `json:"user_name"`
	Comment  *string       `json:"comment,omitempty"`
}

// Session is one scheduled delivery of a training. StatusHistory is append
// only: it always holds at least the creation entry, and its last entry
// matches Status.
type Session struct {
	ID              uuid.UUID            `json:"id"`
	TrainingID      uuid.UUID            `json:"training_id"`
	StartDate       time.Time            `json:"start_date"`
	EndDate         time.Time            `json:"end_date"`
	Location        string               `json:"location"`
	TrainerID       uuid.UUID            `json:"trainer_id"`
	Participants    int                  `json:"participants"`
	MaxParticipants int                  `json:"max_participants"`
	Status          SessionStatus        `json:"status"`
	StatusHistory   []StatusHistoryEntry `json:"status_history"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}
