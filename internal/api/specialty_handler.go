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

type SpecialtyHandler struct {
	specialtyRepo repository.SpecialtyRepository
	validate      *validator.Validate
}

func NewSpecialtyHandler(specialtyRepo repository.SpecialtyRepository) *SpecialtyHandler {
	return &SpecialtyHandler{
		specialtyRepo: specialtyRepo,
		validate:      validator.New(),
	}
}

type SpecialtyGroupRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type SpecialtyRequest struct {
	Name        string    `json:"name" validate:"required"`
	GroupID     uuid.UUID `json:"group_id" validate:"required"`
	Description *string   `json:"description"`
}

func (h *SpecialtyHandler) CreateGroup(c *fiber.Ctx) error {
	var request SpecialtyGroupRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	now := time.Now()
	group := model.SpecialtyGroup{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.specialtyRepo.InsertGroup(c.Context(), &group); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create specialty group"})
	}
	return c.Status(fiber.StatusCreated).JSON(group)
}

func (h *SpecialtyHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.specialtyRepo.ListGroups(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch specialty groups"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": groups})
}

func (h *SpecialtyHandler) UpdateGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group ID format"})
	}

	group, err := h.specialtyRepo.FindGroupByID(c.Context(), groupID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch specialty group"})
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialty group not found"})
	}

	var request SpecialtyGroupRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	group.Name = request.Name
	group.Description = request.Description
	group.UpdatedAt = time.Now()

	if err := h.specialtyRepo.UpdateGroup(c.Context(), group); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialty group not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update specialty group"})
	}
	return c.Status(fiber.StatusOK).JSON(group)
}

// DeleteGroup removes the group and every specialty attached to it.
func (h *SpecialtyHandler) DeleteGroup(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid group ID format"})
	}

	if err := h.specialtyRepo.DeleteGroup(c.Context(), groupID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete specialty group"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SpecialtyHandler) CreateSpecialty(c *fiber.Ctx) error {
	var request SpecialtyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	group, err := h.specialtyRepo.FindGroupByID(c.Context(), request.GroupID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch specialty group"})
	}
	if group == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialty group not found"})
	}

	now := time.Now()
	specialty := model.Specialty{
		ID:          uuid.New(),
		Name:        request.Name,
		GroupID:     request.GroupID,
		Description: request.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.specialtyRepo.InsertSpecialty(c.Context(), &specialty); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create specialty"})
	}
	return c.Status(fiber.StatusCreated).JSON(specialty)
}

func (h *SpecialtyHandler) ListSpecialties(c *fiber.Ctx) error {
	specialties, err := h.specialtyRepo.ListSpecialties(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch specialties"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": specialties})
}

func (h *SpecialtyHandler) UpdateSpecialty(c *fiber.Ctx) error {
	specialtyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid specialty ID format"})
	}

	specialty, err := h.specialtyRepo.FindSpecialtyByID(c.Context(), specialtyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch specialty"})
	}
	if specialty == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialty not found"})
	}

	var request SpecialtyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	specialty.Name = request.Name
	specialty.GroupID = request.GroupID
	specialty.Description = request.Description
	specialty.UpdatedAt = time.Now()

	if err := h.specialtyRepo.UpdateSpecialty(c.Context(), specialty); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Specialty not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update specialty"})
	}
	return c.Status(fiber.StatusOK).JSON(specialty)
}

func (h *SpecialtyHandler) DeleteSpecialty(c *fiber.Ctx) error {
	specialtyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid specialty ID format"})
	}

	if err := h.specialtyRepo.DeleteSpecialty(c.Context(), specialtyID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete specialty"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
