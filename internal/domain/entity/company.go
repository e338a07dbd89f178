package entity

import "time"

// Company is a billing entity owned by a user account. GSTIN is globally
// unique; every other identifier and contact field is optional and stored as
// NULL when absent (never as an empty string).
type Company struct {
	ID            string
	UserID        string
	Name          string
	GSTIN         string // 15-character GST registration, required and unique
	PAN           *string
	Address       *string
	City          *string
	State         *string
	Pincode       *string
	Phone         *string
	Email         *string
	BankName      *string
	AccountNumber *string
	IFSCCode      *string
	Branch        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
