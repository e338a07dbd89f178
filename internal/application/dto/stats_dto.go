package dto

import "github.com/shopspring/decimal"

// DocumentCounts groups a document type by lifecycle status.
type DocumentCounts struct {
	Total int `json:"total"`
	Draft int `json:"draft"`
	Sent  int `json:"sent,omitempty"`
}

// InvoiceCounts extends the grouping with payment states and amount totals.
type InvoiceCounts struct {
	Total        int             `json:"total"`
	Draft        int             `json:"draft"`
	Paid         int             `json:"paid"`
	Unpaid       int             `json:"unpaid"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	UnpaidAmount decimal.Decimal `json:"unpaidAmount"`
}

// StatsResponse is the dashboard aggregate for one company.
type StatsResponse struct {
	Quotations DocumentCounts `json:"quotations"`
	Challans   DocumentCounts `json:"challans"`
	Invoices   InvoiceCounts  `json:"invoices"`
}
