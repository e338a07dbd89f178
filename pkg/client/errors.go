package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"

	"golang.org/x/text/language"

	"github.com/gstbill/billing-api/internal/domain"
)

// Error codes a caller can branch on. The first five mirror the server's
// wire codes; the rest classify failures that never reached the server.
const (
	CodeValidation   = "validation_error"
	CodeDuplicate    = "duplicate_error"
	CodeNotFound     = "not_found"
	CodeServer       = "server_error"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNetwork      = "network_error"
	CodeTimeout      = "timeout_error"
	CodeOffline      = "offline_error"
)

// APIError is the uniform failure type for every client call.
type APIError struct {
	Status  int
	Code    string
	Message string
	// Field is set for duplicate_error, Fields for validation_error.
	Field  string
	Fields []domain.FieldError
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Code
}

func apiErrorFromEnvelope(status int, env envelope) *APIError {
	code := env.Error
	switch status {
	case http.StatusUnauthorized:
		code = CodeUnauthorized
	case http.StatusForbidden:
		code = CodeForbidden
	}
	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	return &APIError{
		Status:  status,
		Code:    code,
		Message: msg,
		Field:   env.Field,
		Fields:  env.Fields,
	}
}

// wrapTransportError classifies an error from the HTTP round trip itself.
func wrapTransportError(err error) *APIError {
	code := CodeNetwork
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeTimeout
	case errors.Is(err, syscall.ECONNREFUSED), errors.Is(err, syscall.ENETUNREACH):
		code = CodeOffline
	default:
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			code = CodeTimeout
		}
	}
	return &APIError{Code: code, Message: err.Error()}
}

// isTransient reports whether a read is worth retrying. Writes never retry,
// so only reads consult this.
func isTransient(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	switch ae.Code {
	case CodeNetwork, CodeTimeout, CodeOffline:
		return true
	}
	return ae.Status >= 500
}

// ── Localized messages ───────────────────────────────────────────────────────

var messageCatalog = map[string]map[string]string{
	"en": {
		CodeValidation:   "Please check the highlighted fields and try again.",
		CodeDuplicate:    "A record with this value already exists.",
		CodeNotFound:     "The requested record was not found.",
		CodeServer:       "Something went wrong on the server. Please try again.",
		CodeUnauthorized: "Your session has expired. Please login again.",
		CodeForbidden:    "You do not have permission to perform this action.",
		CodeNetwork:      "A network error occurred. Please try again.",
		CodeTimeout:      "The request timed out. Please try again.",
		CodeOffline:      "You appear to be offline. Check your connection.",
	},
	"hi": {
		CodeValidation:   "कृपया चिह्नित फ़ील्ड जाँचें और पुनः प्रयास करें।",
		CodeDuplicate:    "इस मान के साथ एक रिकॉर्ड पहले से मौजूद है।",
		CodeNotFound:     "अनुरोधित रिकॉर्ड नहीं मिला।",
		CodeServer:       "सर्वर पर कुछ गलत हो गया। कृपया पुनः प्रयास करें।",
		CodeUnauthorized: "आपका सत्र समाप्त हो गया है। कृपया फिर से लॉगिन करें।",
		CodeForbidden:    "आपको यह कार्य करने की अनुमति नहीं है।",
		CodeNetwork:      "नेटवर्क त्रुटि हुई। कृपया पुनः प्रयास करें।",
		CodeTimeout:      "अनुरोध का समय समाप्त हो गया। कृपया पुनः प्रयास करें।",
		CodeOffline:      "आप ऑफ़लाइन प्रतीत होते हैं। अपना कनेक्शन जाँचें।",
	},
}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.English, // first tag is the fallback
	language.Hindi,
})

// Localize renders a user-facing message for err in the closest supported
// locale. Unknown locales fall back to English; non-API errors render as a
// generic network failure.
func Localize(err error, locale string) string {
	tag, _ := language.MatchStrings(localeMatcher, locale)
	base, _ := tag.Base()
	catalog, ok := messageCatalog[base.String()]
	if !ok {
		catalog = messageCatalog["en"]
	}

	code := CodeNetwork
	var ae *APIError
	if errors.As(err, &ae) {
		code = ae.Code
	}
	if msg, ok := catalog[code]; ok {
		return msg
	}
	return catalog[CodeServer]
}
