package usecase

import "github.com/gstbill/billing-api/internal/domain/gst"

// optional maps a form value to its stored representation: empty strings are
// persisted as NULL, never as "".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// applyOptional applies a partial-update field to an optional column. nil
// input means not sent; empty string clears the column.
func applyOptional(in *string, dst **string) {
	if in == nil {
		return
	}
	*dst = optional(*in)
}

// normalizePtr case-normalizes an identifier field in place when present.
func normalizePtr(p *string, kind gst.FieldKind) {
	if p == nil || *p == "" {
		return
	}
	*p = gst.Unformat(kind, *p)
}
