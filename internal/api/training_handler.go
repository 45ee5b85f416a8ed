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

type TrainingHandler struct {
	trainingRepo repository.TrainingRepository
	validate     *validator.Validate
}

func NewTrainingHandler(trainingRepo repository.TrainingRepository) *TrainingHandler {
	return &TrainingHandler{
		trainingRepo: trainingRepo,
		validate:     validator.New(),
	}
}

type TrainingRequest struct {
	Title               string               `json:"title" validate:"required"`
	Description         string               `json:"description"`
	Duration            int                  `json:"duration" validate:"required,min=1"`
	Price               float64              `json:"price" validate:"min=0"`
	Category            string               `json:"category" validate:"required"`
	Level               model.TrainingLevel  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Objectives          []string             `json:"objectives"`
	RequiredSpecialties []uuid.UUID          `json:"required_specialties"`
	Status              model.TrainingStatus `json:"status" validate:"required,oneof=active draft archived"`
	Thumbnail           *string              `json:"thumbnail"`
}

func (h *TrainingHandler) CreateTraining(c *fiber.Ctx) error {
	var request TrainingRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	now := time.Now()
	training := model.Training{
		ID:                  uuid.New(),
		Title:               request.Title,
		Description:         request.Description,
		Duration:            request.Duration,
		Price:               request.Price,
		Category:            request.Category,
		Level:               request.Level,
		Objectives:          request.Objectives,
		RequiredSpecialties: request.RequiredSpecialties,
		Status:              request.Status,
		Thumbnail:           request.Thumbnail,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := h.trainingRepo.Insert(c.Context(), &training); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create training"})
	}
	return c.Status(fiber.StatusCreated).JSON(training)
}

func (h *TrainingHandler) ListTrainings(c *fiber.Ctx) error {
	trainings, err := h.trainingRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch trainings"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": trainings})
}

func (h *TrainingHandler) GetTraining(c *fiber.Ctx) error {
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training ID format"})
	}

	training, err := h.trainingRepo.FindByID(c.Context(), trainingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch training"})
	}
	if training == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}
	return c.Status(fiber.StatusOK).JSON(training)
}

func (h *TrainingHandler) UpdateTraining(c *fiber.Ctx) error {
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training ID format"})
	}

	training, err := h.trainingRepo.FindByID(c.Context(), trainingID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch training"})
	}
	if training == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
	}

	var request TrainingRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	training.Title = request.Title
	training.Description = request.Description
	training.Duration = request.Duration
	training.Price = request.Price
	training.Category = request.Category
	training.Level = request.Level
	training.Objectives = request.Objectives
	training.RequiredSpecialties = request.RequiredSpecialties
	training.Status = request.Status
	training.Thumbnail = request.Thumbnail
	training.UpdatedAt = time.Now()

	if err := h.trainingRepo.Update(c.Context(), training); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Training not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update training"})
	}
	return c.Status(fiber.StatusOK).JSON(training)
}

func (h *TrainingHandler) DeleteTraining(c *fiber.Ctx) error {
	trainingID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid training ID format"})
	}

	if err := h.trainingRepo.Delete(c.Context(), trainingID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete training"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
