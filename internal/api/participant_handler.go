package api

import (
	"errors"
	"time"

	"formationpro/internal/model"
	"formationpro/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ParticipantHandler struct {
	participantRepo repository.ParticipantRepository
	validate        *validator.Validate
}

func NewParticipantHandler(participantRepo repository.ParticipantRepository) *ParticipantHandler {
	return &ParticipantHandler{
		participantRepo: participantRepo,
		validate:        validator.New(),
	}
}

type ParticipantRequest struct {
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Phone     string     `json:"phone"`
	CompanyID *uuid.UUID `json:"company_id"`
	JobTitle  *string    `json:"job_title"`
	Status    string     `json:"status" validate:"required,oneof=active inactive"`
}

func (h *ParticipantHandler) CreateParticipant(c *fiber.Ctx) error {
	var request ParticipantRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	now := time.Now()
	participant := model.Participant{
		ID:        uuid.New(),
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		CompanyID: request.CompanyID,
		JobTitle:  request.JobTitle,
		Status:    request.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.participantRepo.Insert(c.Context(), &participant); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create participant"})
	}
	return c.Status(fiber.StatusCreated).JSON(participant)
}

func (h *ParticipantHandler) ListParticipants(c *fiber.Ctx) error {
	participants, err := h.participantRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch participants"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": participants})
}

func (h *ParticipantHandler) GetParticipant(c *fiber.Ctx) error {
	participantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid participant ID format"})
	}

	participant, err := h.participantRepo.FindByID(c.Context(), participantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch participant"})
	}
	if participant == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Participant not found"})
	}
	return c.Status(fiber.StatusOK).JSON(participant)
}

func (h *ParticipantHandler) UpdateParticipant(c *fiber.Ctx) error {
	participantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid participant ID format"})
	}

	participant, err := h.participantRepo.FindByID(c.Context(), participantID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch participant"})
	}
	if participant == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Participant not found"})
	}

	var request ParticipantRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	participant.FirstName = request.FirstName
	participant.LastName = request.LastName
	participant.Email = request.Email
	participant.Phone = request.Phone
	participant.CompanyID = request.CompanyID
	participant.JobTitle = request.JobTitle
	participant.Status = request.Status
	participant.UpdatedAt = time.Now()

	if err := h.participantRepo.Update(c.Context(), participant); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Participant not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update participant"})
	}
	return c.Status(fiber.StatusOK).JSON(participant)
}

func (h *ParticipantHandler) DeleteParticipant(c *fiber.Ctx) error {
	participantID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid participant ID format"})
	}

	if err := h.participantRepo.Delete(c.Context(), participantID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete participant"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
