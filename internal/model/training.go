package model

import (
	"time"

	"github.com/google/uuid"
)

type TrainingLevel string

const (
	LevelBeginner     TrainingLevel = "beginner"
	LevelIntermediate TrainingLevel = "intermediate"
	LevelAdvanced     TrainingLevel = "advanced"
)

type TrainingStatus string

const (
	TrainingActive   TrainingStatus = "active"
	TrainingDraft    TrainingStatus = "draft"
	TrainingArchived TrainingStatus = "archived"
)

type TrainingFile struct {
	ID         uuid.UUID `json:"id"`
	TrainingID uuid.UUID `json:"training_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	URL        string    `json:"url"`
	Category   string    `json:"category"`
	UploadedBy string    `json:"uploaded_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Training struct {
	ID                  uuid.UUID      `json:"id"`
	Title               string         `json:"title"`
	Description         string         `json:"description"`
	Duration            int            `json:"duration"`
	Price               float64        `json:"price"`
	Category            string         `json:"category"`
	Level               TrainingLevel  `json:"level"`
	Objectives          []string       `json:"objectives"`
	RequiredSpecialties []uuid.UUID    `json:"required_specialties"`
	Status              TrainingStatus `json:"status"`
	Thumbnail           *string        `json:"thumbnail,omitempty"`
	Files               []TrainingFile `json:"files"`
	CreatedAt           time.Time      `json:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at"`
}
