package repository

import (
	"context"

	"github.com/gstbill/billing-api/internal/domain/entity"
)

// CustomerRepository is the persistence port for Customer. Customers carry no
// uniqueness constraint on GSTIN.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, userID, id string) (*entity.Customer, error)
	// ListByUser returns up to q.Limit+1 rows for the overfetch-by-one codec.
	ListByUser(ctx context.Context, userID string, q ListQuery) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
}
