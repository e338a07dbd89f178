package entity

import "time"

// Customer is a billing counterparty owned by a user account. Unlike Company,
// GSTIN is optional and carries no uniqueness constraint: customers may be
// unregistered individuals or share a registration.
type Customer struct {
	ID            string
	UserID        string
	Name          string
	GSTIN         *string
	PAN           *string
	Address       *string
	City          *string
	State         *string
	Pincode       *string
	Phone         *string
	Email         *string
	ContactPerson *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
