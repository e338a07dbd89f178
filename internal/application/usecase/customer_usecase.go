package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/application/validation"
	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/internal/domain/entity"
	"github.com/gstbill/billing-api/internal/domain/gst"
	"github.com/gstbill/billing-api/internal/domain/pagination"
	"github.com/gstbill/billing-api/internal/domain/repository"
)

// CustomerUseCase covers customer master data. Customers have no uniqueness
// constraint: registered and unregistered buyers may share or omit a GSTIN.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create validates, normalizes and persists a new customer.
func (uc *CustomerUseCase) Create(ctx context.Context, userID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	in.GSTIN = gst.Unformat(gst.FieldGSTIN, in.GSTIN)
	in.PAN = gst.Unformat(gst.FieldPAN, in.PAN)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          in.Name,
		GSTIN:         optional(in.GSTIN),
		PAN:           optional(in.PAN),
		Address:       optional(in.Address),
		City:          optional(in.City),
		State:         optional(in.State),
		Pincode:       optional(in.Pincode),
		Phone:         optional(in.Phone),
		Email:         optional(in.Email),
		ContactPerson: optional(in.ContactPerson),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

// Get returns one customer of the user.
func (uc *CustomerUseCase) Get(ctx context.Context, userID, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customerResponse(customer), nil
}

// List returns one cursor page of the user's customers. Search also covers
// the contact person.
func (uc *CustomerUseCase) List(ctx context.Context, userID string, q repository.ListQuery) (pagination.Page[*dto.CustomerResponse], error) {
	q.Limit = pagination.ClampLimit(q.Limit)
	rows, err := uc.repo.ListByUser(ctx, userID, q)
	if err != nil {
		return pagination.Page[*dto.CustomerResponse]{}, err
	}
	out := make([]*dto.CustomerResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, customerResponse(c))
	}
	return pagination.Slice(out, q.Limit, func(c *dto.CustomerResponse) string { return c.ID }), nil
}

// Update applies a partial update, clearing optionals sent as empty strings.
func (uc *CustomerUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	normalizePtr(in.GSTIN, gst.FieldGSTIN)
	normalizePtr(in.PAN, gst.FieldPAN)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	customer, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil && *in.Name != "" {
		customer.Name = *in.Name
	}
	applyOptional(in.GSTIN, &customer.GSTIN)
	applyOptional(in.PAN, &customer.PAN)
	applyOptional(in.Address, &customer.Address)
	applyOptional(in.City, &customer.City)
	applyOptional(in.State, &customer.State)
	applyOptional(in.Pincode, &customer.Pincode)
	applyOptional(in.Phone, &customer.Phone)
	applyOptional(in.Email, &customer.Email)
	applyOptional(in.ContactPerson, &customer.ContactPerson)
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customerResponse(customer), nil
}

func customerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		GSTIN:         c.GSTIN,
		PAN:           c.PAN,
		Address:       c.Address,
		City:          c.City,
		State:         c.State,
		Pincode:       c.Pincode,
		Phone:         c.Phone,
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
