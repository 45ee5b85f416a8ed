package api

import (
	"errors"
	"log/slog"
	"time"

	"formationpro/internal/model"
	"formationpro/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SessionHandler struct {
	sessionService service.SessionService
	validate       *validator.Validate
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validate:       validator.New(),
	}
}

type CreateSessionRequest struct {
	TrainingID      uuid.UUID           `json:"training_id" validate:"required"`
	StartDate       time.Time           `json:"start_date" validate:"required"`
	EndDate         time.Time           `json:"end_date" validate:"required,gtefield=StartDate"`
	Location        string              `json:"location" validate:"required"`
	TrainerID       uuid.UUID           `json:"trainer_id" validate:"required"`
	MaxParticipants int                 `json:"max_participants" validate:"required,min=1"`
	Status          model.SessionStatus `json:"status" validate:"required,oneof=scheduled confirmed in_progress completed cancelled"`
}

type UpdateSessionRequest struct {
	TrainingID      *uuid.UUID           `json:"training_id"`
	StartDate       *time.Time           `json:"start_date"`
	EndDate         *time.Time           `json:"end_date"`
	Location        *string              `json:"location" validate:"omitempty,min=1"`
	TrainerID       *uuid.UUID           `json:"trainer_id"`
	MaxParticipants *int                 `json:"max_participants" validate:"omitempty,min=1"`
	Status          *model.SessionStatus `json:"status" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled"`
	StatusComment   *string              `json:"status_comment"`
}

func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	actor, err := GetActorFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request CreateSessionRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	session, err := h.sessionService.CreateSession(c.Context(), service.CreateSessionInput{
		TrainingID:      request.TrainingID,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Location:        request.Location,
		TrainerID:       request.TrainerID,
		MaxParticipants: request.MaxParticipants,
		Status:          request.Status,
	}, *actor)
	if err != nil {
		slog.ErrorContext(c.UserContext(), "Error creating session", slog.String("error", err.Error()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create session"})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func (h *SessionHandler) ListSessions(c *fiber.Ctx) error {
	sessions, err := h.sessionService.ListSessions(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch sessions"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": sessions})
}

func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
	}

	session, err := h.sessionService.GetSession(c.Context(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch session"})
	}
	return c.Status(fiber.StatusOK).JSON(session)
}

func (h *SessionHandler) UpdateSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
	}

	actor, err := GetActorFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request UpdateSessionRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}
	if request.StartDate != nil && request.EndDate != nil && request.EndDate.Before(*request.StartDate) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date must not be before start_date"})
	}

	session, err := h.sessionService.UpdateSession(c.Context(), sessionID, service.SessionPatch{
		TrainingID:      request.TrainingID,
		StartDate:       request.StartDate,
		EndDate:         request.EndDate,
		Location:        request.Location,
		TrainerID:       request.TrainerID,
		MaxParticipants: request.MaxParticipants,
		Status:          request.Status,
	}, request.StatusComment, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		case errors.Is(err, service.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidTransition):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update session"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(session)
}

func (h *SessionHandler) DeleteSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
	}

	if err := h.sessionService.DeleteSession(c.Context(), sessionID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete session"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEligibleTrainers returns the trainers assignable to a session of the
// given training. An empty list is a normal answer; the client is expected
// to disable assignment and warn the user.
func (h *SessionHandler) ListEligibleTrainers(c *fiber.Ctx) error {
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training ID format"})
	}

	trainers, err := h.sessionService.ListEligibleTrainers(c.Context(), trainingID)
	if err != nil {
		if errors.Is(err, service.ErrTrainingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch eligible trainers"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": trainers})
}
