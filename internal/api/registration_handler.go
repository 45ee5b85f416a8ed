package api

import (
	"errors"

	"formationpro/internal/model"
	"formationpro/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type RegistrationHandler struct {
	registrationService service.RegistrationService
	validate            *validator.Validate
}

func NewRegistrationHandler(registrationService service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		validate:            validator.New(),
	}
}

type CreateRegistrationRequest struct {
	SessionID     uuid.UUID `json:"session_id" validate:"required"`
	ParticipantID uuid.UUID `json:"participant_id" validate:"required"`
	Comments      *string   `json:"comments"`
}

type UpdateRegistrationRequest struct {
	Status        *model.RegistrationStatus `json:"status" validate:"omitempty,oneof=pending confirmed cancelled waitlist"`
	Prerequisites *bool                     `json:"prerequisites"`
	PaymentStatus *model.PaymentStatus      `json:"payment_status" validate:"omitempty,oneof=pending paid cancelled"`
	Comments      *string                   `json:"comments"`
}

func (h *RegistrationHandler) CreateRegistration(c *fiber.Ctx) error {
	var request CreateRegistrationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	registration, err := h.registrationService.CreateRegistration(c.Context(), service.CreateRegistrationInput{
		SessionID:     request.SessionID,
		ParticipantID: request.ParticipantID,
		Comments:      request.Comments,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
		case errors.Is(err, service.ErrParticipantNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Participant not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create registration"})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(registration)
}

func (h *RegistrationHandler) ConfirmRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration ID format"})
	}

	registration, err := h.registrationService.ConfirmRegistration(c.Context(), registrationID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRegistrationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
		case errors.Is(err, service.ErrAlreadyConfirmed):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not confirm registration"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(registration)
}

func (h *RegistrationHandler) UpdateRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration ID format"})
	}

	var request UpdateRegistrationRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	registration, err := h.registrationService.UpdateRegistration(c.Context(), registrationID, service.RegistrationPatch{
		Status:        request.Status,
		Prerequisites: request.Prerequisites,
		PaymentStatus: request.PaymentStatus,
		Comments:      request.Comments,
	})
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update registration"})
	}

	return c.Status(fiber.StatusOK).JSON(registration)
}

func (h *RegistrationHandler) GetRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration ID format"})
	}

	registration, err := h.registrationService.GetRegistration(c.Context(), registrationID)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Registration not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch registration"})
	}
	return c.Status(fiber.StatusOK).JSON(registration)
}

// ListRegistrations returns every registration, or only a session's when the
// session_id query parameter is set.
func (h *RegistrationHandler) ListRegistrations(c *fiber.Ctx) error {
	if sessionIDStr := c.Query("session_id"); sessionIDStr != "" {
		sessionID, err := uuid.Parse(sessionIDStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid session ID format"})
		}
		registrations, err := h.registrationService.ListBySession(c.Context(), sessionID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch registrations"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": registrations})
	}

	registrations, err := h.registrationService.ListRegistrations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch registrations"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": registrations})
}

func (h *RegistrationHandler) DeleteRegistration(c *fiber.Ctx) error {
	registrationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid registration ID format"})
	}

	if err := h.registrationService.DeleteRegistration(c.Context(), registrationID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete registration"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
