package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/auth"
	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/pkg/logger"
)

// AuthHandler handles registration and login (public).
type AuthHandler struct {
	uc  *auth.UseCase
	log *logger.Logger
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.UseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, log: log}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	user, err := h.uc.Register(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.DuplicateErrorResponse{
				Success: false,
				Error:   dto.CodeDuplicateError,
				Field:   "email",
				Message: "email already exists",
			})
		}
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(user))
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "body", "invalid request body")
	}
	session, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(session))
}
