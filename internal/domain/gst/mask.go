package gst

import "strings"

// FieldKind enumerates the maskable identifier fields. Dispatch is a closed
// switch over this enum rather than open-ended string matching, so adding a
// kind without a formatter fails loudly in tests.
type FieldKind int

const (
	FieldGSTIN FieldKind = iota
	FieldPAN
	FieldIFSC
	FieldPincode
	FieldPhone
)

// Normalize strips everything but alphanumerics and uppercases the rest. This
// is the canonical stored form for every masked field.
func Normalize(value string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(value) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Format renders a value for display according to the field kind. Only GSTIN
// has a grouped display form (22-AAAAA-0000-A1Z5); the rest are normalized
// and cut to their fixed length.
func Format(kind FieldKind, value string) string {
	switch kind {
	case FieldGSTIN:
		return formatGSTIN(value)
	case FieldPAN:
		return clip(Normalize(value), 10)
	case FieldIFSC:
		return clip(Normalize(value), 11)
	case FieldPincode:
		return clip(digitsOnly(value), 6)
	case FieldPhone:
		return clip(digitsOnly(value), 10)
	default:
		return value
	}
}

// Unformat recovers the canonical stored form from a displayed value.
// Round-trip invariant: Unformat(kind, Format(kind, v)) == Format(kind, v)
// stripped of separators.
func Unformat(kind FieldKind, value string) string {
	switch kind {
	case FieldPincode, FieldPhone:
		return digitsOnly(value)
	default:
		return Normalize(value)
	}
}

func formatGSTIN(value string) string {
	c := clip(Normalize(value), 15)
	switch {
	case len(c) <= 2:
		return c
	case len(c) <= 7:
		return c[:2] + "-" + c[2:]
	case len(c) <= 11:
		return c[:2] + "-" + c[2:7] + "-" + c[7:]
	default:
		return c[:2] + "-" + c[2:7] + "-" + c[7:11] + "-" + c[11:]
	}
}

func digitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func clip(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
