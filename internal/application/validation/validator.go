// Package validation wires declarative struct-tag validation to the domain's
// field-error shape. Custom tags cover the Indian identifier formats so DTOs
// stay schema-declarative instead of hand-checking fields.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/internal/domain/gst"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// instance returns the process-wide validator with the custom tags
// registered. validator.Validate is safe for concurrent use.
func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON key so error paths match the wire form.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if tag == "" || tag == "-" {
				return fld.Name
			}
			return tag
		})
		mustRegister("gstin", func(fl validator.FieldLevel) bool {
			return gst.IsValidGSTIN(fl.Field().String())
		})
		mustRegister("pan", func(fl validator.FieldLevel) bool {
			return gst.IsValidPAN(fl.Field().String())
		})
		mustRegister("ifsc", func(fl validator.FieldLevel) bool {
			return gst.IsValidIFSC(fl.Field().String())
		})
		mustRegister("pincode", func(fl validator.FieldLevel) bool {
			return gst.IsValidPincode(fl.Field().String())
		})
		mustRegister("inphone", func(fl validator.FieldLevel) bool {
			return gst.IsValidPhone(fl.Field().String())
		})
	})
	return validate
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Struct validates a tagged DTO and converts failures into a
// *domain.ValidationError with one entry per failing field.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Path:    fieldPath(fe),
			Code:    fe.Tag(),
			Message: message(fe),
		})
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldPath is the JSON key of the failing field (see RegisterTagNameFunc).
func fieldPath(fe validator.FieldError) string {
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "invalid email"
	case "gstin":
		return "invalid GSTIN format"
	case "pan":
		return "invalid PAN format"
	case "ifsc":
		return "invalid IFSC code"
	case "pincode":
		return "invalid pincode"
	case "inphone":
		return "invalid phone number"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
