package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/application/usecase"
	"github.com/gstbill/billing-api/pkg/logger"
)

// CustomerHandler handles customer HTTP requests (protected).
type CustomerHandler struct {
	uc  *usecase.CustomerUseCase
	log *logger.Logger
}

// NewCustomerHandler builds the handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List GET /api/customers?cursor&limit&search
func (h *CustomerHandler) List(c *fiber.Ctx) error {
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

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	customer, err := h.uc.Create(c.Context(), userID, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(customer))
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	customer, err := h.uc.Get(c.Context(), userID, c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(customer))
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	customer, err := h.uc.Update(c.Context(), userID, c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(customer))
}
