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

type CompanyHandler struct {
	companyRepo repository.CompanyRepository
	validate    *validator.Validate
}

func NewCompanyHandler(companyRepo repository.CompanyRepository) *CompanyHandler {
	return &CompanyHandler{
		companyRepo: companyRepo,
		validate:    validator.New(),
	}
}

type CompanyRequest struct {
	Name        string  `json:"name" validate:"required"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	PostalCode  string  `json:"postal_code"`
	Country     string  `json:"country"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email" validate:"omitempty,email"`
	ContactName *string `json:"contact_name"`
	ContactRole *string `json:"contact_role"`
	Status      string  `json:"status" validate:"required,oneof=active inactive"`
}

func (h *CompanyHandler) CreateCompany(c *fiber.Ctx) error {
	var request CompanyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	now := time.Now()
	company := model.Company{
		ID:          uuid.New(),
		Name:        request.Name,
		Address:     request.Address,
		City:        request.City,
		PostalCode:  request.PostalCode,
		Country:     request.Country,
		Phone:       request.Phone,
		Email:       request.Email,
		ContactName: request.ContactName,
		ContactRole: request.ContactRole,
		Status:      request.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.companyRepo.Insert(c.Context(), &company); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create company"})
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

func (h *CompanyHandler) ListCompanies(c *fiber.Ctx) error {
	companies, err := h.companyRepo.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch companies"})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"items": companies})
}

func (h *CompanyHandler) GetCompany(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company ID format"})
	}

	company, err := h.companyRepo.FindByID(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch company"})
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}
	return c.Status(fiber.StatusOK).JSON(company)
}

func (h *CompanyHandler) UpdateCompany(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company ID format"})
	}

	company, err := h.companyRepo.FindByID(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch company"})
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
	}

	var request CompanyRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input", "details": err.Error()})
	}

	company.Name = request.Name
	company.Address = request.Address
	company.City = request.City
	company.PostalCode = request.PostalCode
	company.Country = request.Country
	company.Phone = request.Phone
	company.Email = request.Email
	company.ContactName = request.ContactName
	company.ContactRole = request.ContactRole
	company.Status = request.Status
	company.UpdatedAt = time.Now()

	if err := h.companyRepo.Update(c.Context(), company); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Company not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update company"})
	}
	return c.Status(fiber.StatusOK).JSON(company)
}

func (h *CompanyHandler) DeleteCompany(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid company ID format"})
	}

	if err := h.companyRepo.Delete(c.Context(), companyID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete company"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
