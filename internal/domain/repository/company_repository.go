package repository

import (
	"context"

	"github.com/gstbill/billing-api/internal/domain/entity"
)

// CompanyRepository is the persistence port for Company. All reads are scoped
// to the owning user; rows of other users behave as absent.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, userID, id string) (*entity.Company, error)
	GetByGSTIN(ctx context.Context, gstin string) (*entity.Company, error)
	// ListByUser returns up to q.Limit+1 rows for the overfetch-by-one codec.
	ListByUser(ctx context.Context, userID string, q ListQuery) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
