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

type TrainerHandler struct {
	trainerRepo repository.TrainerRepository
	validate    *validator.Validate
}

func NewTrainerHandler(trainerRepo repository.TrainerRepository) *TrainerHandler {
	return &TrainerHandler{
		trainerRepo: trainerRepo,
		validate:    validator.New(),
	}
}

type TrainerRequest struct {
	FirstName   string      `json:"first_name" validate:"required"`
	LastName    string      `json:"last_name" validate:"required"`
	Email       string      `json:"email" validate:"required,email"`
	Phone       string      `json:"phone"`
	Specialties []uuid.UUID `json:"specialties"`
	Bio         string      `json:"bio"`
	Status      string      `json:"status" validate:"required,oneof=active inactive"`
	ResumeURL   *string     `json:"resume_url"`
}

func (h *TrainerHandler) CreateTrainer(c *fiber.Ctx) error {
	var request TrainerRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	now := time.Now()
	trainer := model.Trainer{
		ID:          uuid.New(),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		Phone:       request.Phone,
		Specialties: request.Specialties,
		Bio:         request.Bio,
		Status:      request.Status,
		ResumeURL:   request.ResumeURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.trainerRepo.Insert(c.Context(), &trainer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create trainer"})
	}
	return c.Status(fiber.StatusCreated).JSON(trainer)
}

func (h *TrainerHandler) ListTrainers(c *fiber.Ctx) error {
	trainers, err := h.trainerRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch trainers"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": trainers})
}

func (h *TrainerHandler) GetTrainer(c *fiber.Ctx) error {
	trainerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	trainer, err := h.trainerRepo.FindByID(c.Context(), trainerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch trainer"})
	}
	if trainer == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}
	return c.Status(fiber.StatusOK).JSON(trainer)
}

func (h *TrainerHandler) UpdateTrainer(c *fiber.Ctx) error {
	trainerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	trainer, err := h.trainerRepo.FindByID(c.Context(), trainerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch trainer"})
	}
	if trainer == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
	}

	var request TrainerRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	trainer.FirstName = request.FirstName
	trainer.LastName = request.LastName
	trainer.Email = request.Email
	trainer.Phone = request.Phone
	trainer.Specialties = request.Specialties
	trainer.Bio = request.Bio
	trainer.Status = request.Status
	trainer.ResumeURL = request.ResumeURL
	trainer.UpdatedAt = time.Now()

	if err := h.trainerRepo.Update(c.Context(), trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Trainer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update trainer"})
	}
	return c.Status(fiber.StatusOK).JSON(trainer)
}

func (h *TrainerHandler) DeleteTrainer(c *fiber.Ctx) error {
	trainerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid trainer ID format"})
	}

	if err := h.trainerRepo.Delete(c.Context(), trainerID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete trainer"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
