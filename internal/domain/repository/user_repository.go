package repository

import (
	"context"

	"github.com/gstbill/billing-api/internal/domain/entity"
)

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
