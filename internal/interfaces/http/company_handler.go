package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/application/usecase"
	"github.com/gstbill/billing-api/internal/domain/repository"
	"github.com/gstbill/billing-api/pkg/logger"
)

// CompanyHandler handles company HTTP requests (protected).
type CompanyHandler struct {
	uc  *usecase.CompanyUseCase
	log *logger.Logger
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{uc: uc, log: log}
}

// List GET /api/companies?cursor&limit&search
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	page, err := h.uc.List(c.Context(), userID, listQuery(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(page))
}

// Create POST /api/companies
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	company, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(company))
}

// GetByID GET /api/companies/:id
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	company, err := h.uc.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(company))
}

// Update PUT /api/companies/:id
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	company, err := h.uc.Update(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(company))
}

// listQuery reads the shared cursor/limit/search query parameters. The limit
// is clamped downstream; an unparseable limit falls back to the default.
func listQuery(c *fiber.Ctx) repository.ListQuery {
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	return repository.ListQuery{
		Cursor: c.Query("cursor"),
		Limit:  limit,
		Search: c.Query("search"),
	}
}
