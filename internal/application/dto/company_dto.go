package dto

import "time"

// CreateCompanyRequest is the body of POST /api/companies. Optional fields
// arrive as empty strings from forms and are normalized to absent before
// persistence.
type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	GSTIN         string `json:"gstin" validate:"required,len=15,gstin"`
	PAN           string `json:"pan" validate:"omitempty,pan"`
	Address       string `json:"address" validate:"omitempty,max=500"`
	City          string `json:"city" validate:"omitempty,max=100"`
	State         string `json:"state" validate:"omitempty,max=100"`
	Pincode       string `json:"pincode" validate:"omitempty,pincode"`
	Phone         string `json:"phone" validate:"omitempty,inphone"`
	Email         string `json:"email" validate:"omitempty,email"`
	BankName      string `json:"bankName" validate:"omitempty,max=100"`
	AccountNumber string `json:"accountNumber" validate:"omitempty,max=50"`
	IFSCCode      string `json:"ifscCode" validate:"omitempty,ifsc"`
	Branch        string `json:"branch" validate:"omitempty,max=100"`
}

// UpdateCompanyRequest is the body of PUT /api/companies/:id. nil means the
// field was not sent; a present empty string clears an optional field.
type UpdateCompanyRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=2,max=100"`
	GSTIN         *string `json:"gstin" validate:"omitempty,len=15,gstin"`
	PAN           *string `json:"pan" validate:"omitempty,pan"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	State         *string `json:"state" validate:"omitempty,max=100"`
	Pincode       *string `json:"pincode" validate:"omitempty,pincode"`
	Phone         *string `json:"phone" validate:"omitempty,inphone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	BankName      *string `json:"bankName" validate:"omitempty,max=100"`
	AccountNumber *string `json:"accountNumber" validate:"omitempty,max=50"`
	IFSCCode      *string `json:"ifscCode" validate:"omitempty,ifsc"`
	Branch        *string `json:"branch" validate:"omitempty,max=100"`
}

// CompanyResponse is the wire form of a company. Absent optionals serialize
// as null.
type CompanyResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	GSTIN         string    `json:"gstin"`
	PAN           *string   `json:"pan"`
	Address       *string   `json:"address"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Pincode       *string   `json:"pincode"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	BankName      *string   `json:"bankName"`
	AccountNumber *string   `json:"accountNumber"`
	IFSCCode      *string   `json:"ifscCode"`
	Branch        *string   `json:"branch"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
