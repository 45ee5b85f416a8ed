package api

import (
	"errors"

	"formationpro/internal/model"
	"formationpro/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UserHandler struct {
	userService service.UserService
	validate    *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

type CreateUserRequest struct {
	Email    string           `json:"email" validate:"required,email"`
	Password string           `json:"password" validate:"required,min=6"`
	Name     string           `json:"name" validate:"required"`
	Role     model.UserRole   `json:"role" validate:"required,oneof=admin manager trainer user"`
	Status   model.UserStatus `json:"status" validate:"required,oneof=active inactive pending"`
}

type UpdateUserRequest struct {
	Name   *string           `json:"name" validate:"omitempty,min=1"`
	Role   *model.UserRole   `json:"role" validate:"omitempty,oneof=admin manager trainer user"`
	Status *model.UserStatus `json:"status" validate:"omitempty,oneof=active inactive pending"`
	Avatar *string           `json:"avatar"`
}

type InviteUserRequest struct {
	Email string         `json:"email" validate:"required,email"`
	Role  model.UserRole `json:"role" validate:"required,oneof=admin manager trainer user"`
}

func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var request CreateUserRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, err := h.userService.CreateUser(c.Context(), service.CreateUserInput{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
		Role:     request.Role,
		Status:   request.Status,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create user"})
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch users"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": users})
}

func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	var request UpdateUserRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	user, err := h.userService.UpdateUser(c.Context(), userID, service.UserPatch{
		Name:   request.Name,
		Role:   request.Role,
		Status: request.Status,
		Avatar: request.Avatar,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update user"})
	}

	return c.Status(fiber.StatusOK).JSON(user)
}

func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID format"})
	}

	if err := h.userService.DeleteUser(c.Context(), userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete user"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) InviteUser(c *fiber.Ctx) error {
	actor, err := GetActorFromClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user claims"})
	}

	var request InviteUserRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	invitation, err := h.userService.InviteUser(c.Context(), request.Email, request.Role, actor.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not send invitation"})
	}

	return c.Status(fiber.StatusCreated).JSON(invitation)
}

func (h *UserHandler) ListInvitations(c *fiber.Ctx) error {
	invitations, err := h.userService.ListInvitations(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch invitations"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": invitations})
}

func (h *UserHandler) CancelInvitation(c *fiber.Ctx) error {
	invitationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invitation ID format"})
	}

	if err := h.userService.CancelInvitation(c.Context(), invitationID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not cancel invitation"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) ResendInvitation(c *fiber.Ctx) error {
	invitationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid invitation ID format"})
	}

	invitation, err := h.userService.ResendInvitation(c.Context(), invitationID)
	if err != nil {
		if errors.Is(err, service.ErrInvitationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Invitation not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not resend invitation"})
	}

	return c.Status(fiber.StatusOK).JSON(invitation)
}
