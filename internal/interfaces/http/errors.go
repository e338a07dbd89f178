package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/pkg/logger"
)

// respondError maps a failure onto the uniform error envelope. Every error is
// logged before translation; nothing propagates to the client unmapped and no
// retry happens here.
//
//	validation failure -> 400 {error:"validation_error", fields:[...]}
//	invalid cursor     -> 400 (a cursor only comes from a previous response)
//	duplicate          -> 409 {error:"duplicate_error", field, message}
//	not found          -> 404 {error:"not_found", message}
//	anything else      -> 500 {error:"server_error", message}
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("request failed")

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
			Success: false,
			Error:   dto.CodeValidationError,
			Fields:  verr.Fields,
		})
	}

	var derr *domain.DuplicateError
	if errors.As(err, &derr) {
		return c.Status(fiber.StatusConflict).JSON(dto.DuplicateErrorResponse{
			Success: false,
			Error:   dto.CodeDuplicateError,
			Field:   derr.Field,
			Message: derr.Error(),
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.MessageErrorResponse{
			Success: false,
			Error:   dto.CodeNotFound,
			Message: "Record not found",
		})
	case errors.Is(err, domain.ErrInvalidCursor):
		return badRequest(c, "cursor", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, "body", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageErrorResponse{
			Success: false,
			Error:   dto.CodeServerError,
			Message: "An unexpected error occurred",
		})
	}
}

// badRequest builds a single-field validation envelope for request-shape
// failures (unparseable body, missing query parameter).
func badRequest(c *fiber.Ctx, path, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{
		Success: false,
		Error:   dto.CodeValidationError,
		Fields:  []domain.FieldError{{Path: path, Code: "invalid", Message: message}},
	})
}
