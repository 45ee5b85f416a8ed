package model

import (
	"time"

	"github.com/google/uuid"
)

type ObjectiveScores struct {
	Clarity     int `json:"clarity"`
	Achievement int `json:"achievement"`
}

// Evaluation is a participant's post-session feedback form. Scores are on a
// 1-5 scale except RecommendationScore, which is 0-10.
type Evaluation struct {
	ID                  uuid.UUID       `json:"id"`
	SessionID           uuid.UUID       `json:"session_id"`
	ParticipantID       uuid.UUID       `json:"participant_id"`
	OverallSatisfaction int             `json:"overall_satisfaction"`
	ContentQuality      int             `json:"content_quality"`
	TrainerExpertise    int             `json:"trainer_expertise"`
	TrainingMaterials   int             `json:"training_materials"`
	PracticalExercises  int             `json:"practical_exercises"`
	Pace                int             `json:"pace"`
	Organization        int             `json:"organization"`
	Facilities          int             `json:"facilities"`
	Expectations        int             `json:"expectations"`
	Objectives          ObjectiveScores `json:"objectives"`
	Strengths           string          `json:"strengths"`
	Improvements        string          `json:"improvements"`
	Comments            *string         `json:"comments,omitempty"`
	RecommendationScore int             `json:"recommendation_score"`
	CreatedAt           time.Time       `json:"created_at"`
}
