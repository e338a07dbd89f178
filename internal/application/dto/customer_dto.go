package dto

import "time"

// CreateCustomerRequest is the body of POST /api/customers. Only the name is
// required; a customer may be an unregistered individual without a GSTIN.
type CreateCustomerRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	GSTIN         string `json:"gstin" validate:"omitempty,len=15,gstin"`
	PAN           string `json:"pan" validate:"omitempty,pan"`
	Address       string `json:"address" validate:"omitempty,max=500"`
	City          string `json:"city" validate:"omitempty,max=100"`
	State         string `json:"state" validate:"omitempty,max=100"`
	Pincode       string `json:"pincode" validate:"omitempty,pincode"`
	Phone         string `json:"phone" validate:"omitempty,inphone"`
	Email         string `json:"email" validate:"omitempty,email"`
	ContactPerson string `json:"contactPerson" validate:"omitempty,max=100"`
}

// UpdateCustomerRequest is the body of PUT /api/customers/:id.
type UpdateCustomerRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=100"`
	GSTIN         *string `json:"gstin" validate:"omitempty,len=15,gstin"`
	PAN           *string `json:"pan" validate:"omitempty,pan"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Pincode       *string `json:"pincode" validate:"omitempty,pincode"`
	Phone         *string `json:"phone" validate:"omitempty,inphone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=100"`
}

// CustomerResponse is the wire form of a customer.
type CustomerResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GSTIN         *string   `json:"gstin"`
	PAN           *string   `json:"pan"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Pincode       *string   `json:"pincode"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	ContactPerson *string   `json:"contactPerson"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
