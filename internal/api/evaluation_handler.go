package api

import (
	"errors"

	"formationpro/internal/model"
	"formationpro/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type EvaluationHandler struct {
	evaluationService service.EvaluationService
	validate          *validator.Validate
}

func NewEvaluationHandler(evaluationService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{
		evaluationService: evaluationService,
		validate:          validator.New(),
	}
}

type ObjectiveScoresRequest struct {
	Clarity     int `json:"clarity" validate:"required,min=1,max=5"`
	Achievement int `json:"achievement" validate:"required,min=1,max=5"`
}

type SubmitEvaluationRequest struct {
	SessionID           uuid.UUID              `json:"session_id" validate:"required"`
	ParticipantID       uuid.UUID              `json:"participant_id" validate:"required"`
	OverallSatisfaction int                    `json:"overall_satisfaction" validate:"required,min=1,max=5"`
	ContentQuality      int                    `json:"content_quality" validate:"required,min=1,max=5"`
	TrainerExpertise    int                    `json:"trainer_expertise" validate:"required,min=1,max=5"`
	TrainingMaterials   int                    `json:"training_materials" validate:"required,min=1,max=5"`
	PracticalExercises  int                    `json:"practical_exercises" validate:"required,min=1,max=5"`
	Pace                int                    `json:"pace" validate:"required,min=1,max=5"`
	Organization        int                    `json:"organization" validate:"required,min=1,max=5"`
	Facilities          int                    `json:"facilities" validate:"required,min=1,max=5"`
	Expectations        int                    `json:"expectations" validate:"required,min=1,max=5"`
	Objectives          ObjectiveScoresRequest `json:"objectives" validate:"required"`
	Strengths           string                 `json:"strengths"`
	Improvements        string                 `json:"improvements"`
	Comments            *string                `json:"comments"`
	RecommendationScore int                    `json:"recommendation_score" validate:"min=0,max=10"`
}

func (h *EvaluationHandler) SubmitEvaluation(c *fiber.Ctx) error {
	var request SubmitEvaluationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	evaluation, err := h.evaluationService.SubmitEvaluation(c.Context(), service.EvaluationInput{
		SessionID:           request.SessionID,
		ParticipantID:       request.ParticipantID,
		OverallSatisfaction: request.OverallSatisfaction,
		ContentQuality:      request.ContentQuality,
		TrainerExpertise:    request.TrainerExpertise,
		TrainingMaterials:   request.TrainingMaterials,
		PracticalExercises:  request.PracticalExercises,
		Pace:                request.Pace,
		Organization:        request.Organization,
		Facilities:          request.Facilities,
		Expectations:        request.Expectations,
		Objectives: model.ObjectiveScores{
			Clarity:     request.Objectives.Clarity,
			Achievement: request.Objectives.Achievement,
		},
		Strengths:           request.Strengths,
		Improvements:        request.Improvements,
		Comments:            request.Comments,
		RecommendationScore: request.RecommendationScore,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		case errors.Is(err, service.ErrSessionNotStartedYet):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrNotRegistered):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrAlreadyEvaluated):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not submit evaluation"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(evaluation)
}

// ListEvaluations returns every evaluation, or only a session's when the
// session_id query parameter is set.
func (h *EvaluationHandler) ListEvaluations(c *fiber.Ctx) error {
	if sessionIDStr := c.Query("session_id"); sessionIDStr != "" {
		sessionID, err := uuid.Parse(sessionIDStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
		}
		evaluations, err := h.evaluationService.ListBySession(c.Context(), sessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch evaluations"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": evaluations})
	}

	evaluations, err := h.evaluationService.ListEvaluations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch evaluations"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": evaluations})
}
