package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/internal/domain/entity"
	"github.com/gstbill/billing-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, user_id, name, gstin, pan, address, city, state, pincode,
	phone, email, contact_person, created_at, updated_at`

// CustomerRepo implements CustomerRepository (usable with pool or tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository builds the adapter.
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persists a new customer. No uniqueness constraint applies.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.GSTIN, c.PAN, c.Address, c.City, c.State,
		c.Pincode, c.Phone, c.Email, c.ContactPerson, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID fetches one customer scoped to its owner.
func (r *CustomerRepo) GetByID(ctx context.Context, userID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND user_id = $2`
	c, err := scanCustomer(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// ListByUser returns up to q.Limit+1 rows ordered (created_at DESC, id DESC).
// Search also matches the contact person.
func (r *CustomerRepo) ListByUser(ctx context.Context, userID string, q repository.ListQuery) ([]*entity.Customer, error) {
	args := []any{userID, q.Search, q.Limit + 1}
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR gstin ILIKE '%' || $2 || '%'
		       OR city ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%'
		       OR contact_person ILIKE '%' || $2 || '%')`
	if q.Cursor != "" {
		at, id, err := r.cursorPosition(ctx, userID, q.Cursor)
		if err != nil {
			return nil, err
		}
		query += `
		  AND (created_at, id) < ($4, $5)`
		args = append(args, at, id)
	}
	query += `
		ORDER BY created_at DESC, id DESC
		LIMIT $3`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) cursorPosition(ctx context.Context, userID, cursor string) (time.Time, string, error) {
	var at time.Time
	var id string
	err := r.q.QueryRow(ctx,
		`SELECT created_at, id FROM customers WHERE id = $1 AND user_id = $2`,
		cursor, userID,
	).Scan(&at, &id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, "", domain.ErrInvalidCursor
		}
		return time.Time{}, "", fmt.Errorf("resolve cursor: %w", err)
	}
	return at, id, nil
}

// Update rewrites every column of the row.
func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $3, gstin = $4, pan = $5, address = $6, city = $7, state = $8,
		    pincode = $9, phone = $10, email = $11, contact_person = $12, updated_at = $13
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.GSTIN, c.PAN, c.Address, c.City, c.State,
		c.Pincode, c.Phone, c.Email, c.ContactPerson, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.GSTIN, &c.PAN, &c.Address, &c.City, &c.State,
		&c.Pincode, &c.Phone, &c.Email, &c.ContactPerson, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
