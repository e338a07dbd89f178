package entity

// Document lifecycle statuses. The documents themselves are managed elsewhere;
// this service only aggregates their counts for the dashboard, so the statuses
// must match the CHECK constraints on the quotations/challans/invoices tables.
const (
	StatusDraft  = "DRAFT"
	StatusSent   = "SENT"
	StatusPaid   = "PAID"
	StatusUnpaid = "UNPAID"
)
