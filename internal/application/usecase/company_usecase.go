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

// CompanyUseCase covers company master data: create, read, partial update and
// cursor-paged list/search.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create validates, normalizes and persists a new company. The GSTIN is
// checked for a global duplicate before the insert; the unique index remains
// the last line of defense against races.
func (uc *CompanyUseCase) Create(ctx context.Context, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	in.GSTIN = gst.Unformat(gst.FieldGSTIN, in.GSTIN)
	in.PAN = gst.Unformat(gst.FieldPAN, in.PAN)
	in.IFSCCode = gst.Unformat(gst.FieldIFSC, in.IFSCCode)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if existing, err := uc.repo.GetByGSTIN(ctx, in.GSTIN); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, &domain.DuplicateError{Field: "gstin"}
	}

	now := time.Now()
	company := &entity.Company{
		ID:            uuid.New().String(),
		UserID:        userID,
		Name:          in.Name,
		GSTIN:         in.GSTIN,
		PAN:           optional(in.PAN),
		Address:       optional(in.Address),
		City:          optional(in.City),
		State:         optional(in.State),
		Pincode:       optional(in.Pincode),
		Phone:         optional(in.Phone),
		Email:         optional(in.Email),
		BankName:      optional(in.BankName),
		AccountNumber: optional(in.AccountNumber),
		IFSCCode:      optional(in.IFSCCode),
		Branch:        optional(in.Branch),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return companyResponse(company), nil
}

// Get returns one company of the user.
func (uc *CompanyUseCase) Get(ctx context.Context, userID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return companyResponse(company), nil
}

// List returns one cursor page of the user's companies, optionally filtered
// by a case-insensitive partial match across name/gstin/city/email.
func (uc *CompanyUseCase) List(ctx context.Context, userID string, q repository.ListQuery) (pagination.Page[*dto.CompanyResponse], error) {
	q.Limit = pagination.ClampLimit(q.Limit)
	rows, err := uc.repo.ListByUser(ctx, userID, q)
	if err != nil {
		return pagination.Page[*dto.CompanyResponse]{}, err
	}
	out := make([]*dto.CompanyResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, companyResponse(c))
	}
	return pagination.Slice(out, q.Limit, func(c *dto.CompanyResponse) string { return c.ID }), nil
}

// Update applies a partial update. nil fields are left untouched; a provided
// empty optional clears the column.
func (uc *CompanyUseCase) Update(ctx context.Context, userID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	normalizePtr(in.GSTIN, gst.FieldGSTIN)
	normalizePtr(in.PAN, gst.FieldPAN)
	normalizePtr(in.IFSCCode, gst.FieldIFSC)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	company, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	if in.Name != nil && *in.Name != "" {
		company.Name = *in.Name
	}
	if in.GSTIN != nil && *in.GSTIN != "" && *in.GSTIN != company.GSTIN {
		if existing, err := uc.repo.GetByGSTIN(ctx, *in.GSTIN); err != nil {
			return nil, err
		} else if existing != nil && existing.ID != company.ID {
			return nil, &domain.DuplicateError{Field: "gstin"}
		}
		company.GSTIN = *in.GSTIN
	}
	applyOptional(in.PAN, &company.PAN)
	applyOptional(in.Address, &company.Address)
	applyOptional(in.City, &company.City)
	applyOptional(in.State, &company.State)
	applyOptional(in.Pincode, &company.Pincode)
	applyOptional(in.Phone, &company.Phone)
	applyOptional(in.Email, &company.Email)
	applyOptional(in.BankName, &company.BankName)
	applyOptional(in.AccountNumber, &company.AccountNumber)
	applyOptional(in.IFSCCode, &company.IFSCCode)
	applyOptional(in.Branch, &company.Branch)
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return companyResponse(company), nil
}

func companyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
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
		BankName:      c.BankName,
		AccountNumber: c.AccountNumber,
		IFSCCode:      c.IFSCCode,
		Branch:        c.Branch,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
