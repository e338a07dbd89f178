package dto

import "github.com/gstbill/billing-api/internal/domain"

// Error codes shared with the client error translator.
const (
	CodeValidationError = "validation_error"
	CodeDuplicateError  = "duplicate_error"
	CodeNotFound        = "not_found"
	CodeServerError     = "server_error"
)

// SuccessResponse is the uniform wrapper for every successful operation.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// OK wraps data in the success envelope.
func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

// ValidationErrorResponse is the 400 envelope with field-level failures.
type ValidationErrorResponse struct {
	Success bool                `json:"success"`
	Error   string              `json:"error"`
	Fields  []domain.FieldError `json:"fields"`
}

// DuplicateErrorResponse is the 409 envelope for uniqueness conflicts.
type DuplicateErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// MessageErrorResponse is the envelope for not_found and server_error.
type MessageErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// UnauthorizedResponse is the 401 envelope. The error field carries the
// user-facing message directly, matching the public API contract.
type UnauthorizedResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Unauthorized builds the fixed 401 body.
func Unauthorized() UnauthorizedResponse {
	return UnauthorizedResponse{Success: false, Error: "Unauthorized. Please login."}
}
