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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

const companyColumns = `id, user_id, name, gstin, pan, address, city, state, pincode,
	phone, email, bank_name, account_number, ifsc_code, branch, created_at, updated_at`

// CompanyRepo implements CompanyRepository (usable with pool or tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository builds the adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Create persists a new company. A concurrent insert with the same GSTIN
// surfaces as DuplicateError via the unique index.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	query := `
		INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.GSTIN, c.PAN, c.Address, c.City, c.State, c.Pincode,
		c.Phone, c.Email, c.BankName, c.AccountNumber, c.IFSCCode, c.Branch,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Field: uniqueField(err)}
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches one company scoped to its owner. Missing and foreign rows
// both return nil.
func (r *CompanyRepo) GetByID(ctx context.Context, userID, id string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1 AND user_id = $2`
	c, err := scanCompany(r.q.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByGSTIN fetches a company by its globally unique GSTIN, across all users
// (the uniqueness constraint is global).
func (r *CompanyRepo) GetByGSTIN(ctx context.Context, gstin string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE gstin = $1`
	c, err := scanCompany(r.q.QueryRow(ctx, query, gstin))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by gstin: %w", err)
	}
	return c, nil
}

// ListByUser returns up to q.Limit+1 rows (the overfetch row tells the codec
// whether another page exists) ordered by (created_at DESC, id DESC). The
// composite seek key makes same-timestamp rows paginate deterministically.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID string, q repository.ListQuery) ([]*entity.Company, error) {
	args := []any{userID, q.Search, q.Limit + 1}
	query := `
		SELECT ` + companyColumns + `
		FROM companies
		WHERE user_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR gstin ILIKE '%' || $2 || '%'
		       OR city ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')`
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
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// cursorPosition resolves a cursor id to its seek position. A cursor that is
// not one of the user's rows is invalid: it can only come from a stale or
// foreign response.
func (r *CompanyRepo) cursorPosition(ctx context.Context, userID, cursor string) (time.Time, string, error) {
	var at time.Time
	var id string
	err := r.q.QueryRow(ctx,
		`SELECT created_at, id FROM companies WHERE id = $1 AND user_id = $2`,
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
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		SET name = $3, gstin = $4, pan = $5, address = $6, city = $7, state = $8,
		    pincode = $9, phone = $10, email = $11, bank_name = $12,
		    account_number = $13, ifsc_code = $14, branch = $15, updated_at = $16
		WHERE id = $1 AND user_id = $2`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.UserID, c.Name, c.GSTIN, c.PAN, c.Address, c.City, c.State,
		c.Pincode, c.Phone, c.Email, c.BankName, c.AccountNumber, c.IFSCCode,
		c.Branch, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.DuplicateError{Field: uniqueField(err)}
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.GSTIN, &c.PAN, &c.Address, &c.City, &c.State,
		&c.Pincode, &c.Phone, &c.Email, &c.BankName, &c.AccountNumber, &c.IFSCCode,
		&c.Branch, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
