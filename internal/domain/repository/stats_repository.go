package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// StatusCount is one GROUP BY bucket of a document table.
type StatusCount struct {
	Status string
	Count  int
}

// InvoiceAmounts aggregates invoice totals by payment state.
type InvoiceAmounts struct {
	Paid   decimal.Decimal
	Unpaid decimal.Decimal
}

// StatsRepository serves the read-only dashboard aggregates. Documents are
// written by another system; this port only counts them.
type StatsRepository interface {
	CountQuotationsByStatus(ctx context.Context, userID, companyID string) ([]StatusCount, error)
	CountChallansByStatus(ctx context.Context, userID, companyID string) ([]StatusCount, error)
	CountInvoicesByStatus(ctx context.Context, userID, companyID string) ([]StatusCount, error)
	SumInvoiceAmounts(ctx context.Context, userID, companyID string) (InvoiceAmounts, error)
}
