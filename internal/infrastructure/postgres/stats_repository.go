package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gstbill/billing-api/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo serves the read-only dashboard aggregates. One GROUP BY per
// document table instead of one COUNT per status.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository builds the adapter.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountQuotationsByStatus groups the company's quotations by status.
func (r *StatsRepo) CountQuotationsByStatus(ctx context.Context, userID, companyID string) ([]repository.StatusCount, error) {
	return r.countByStatus(ctx, "quotations", userID, companyID)
}

// CountChallansByStatus groups the company's delivery challans by status.
func (r *StatsRepo) CountChallansByStatus(ctx context.Context, userID, companyID string) ([]repository.StatusCount, error) {
	return r.countByStatus(ctx, "challans", userID, companyID)
}

// CountInvoicesByStatus groups the company's invoices by status.
func (r *StatsRepo) CountInvoicesByStatus(ctx context.Context, userID, companyID string) ([]repository.StatusCount, error) {
	return r.countByStatus(ctx, "invoices", userID, companyID)
}

// countByStatus runs the shared GROUP BY. The join enforces that the company
// belongs to the user even though the use case checks first.
func (r *StatsRepo) countByStatus(ctx context.Context, table, userID, companyID string) ([]repository.StatusCount, error) {
	query := fmt.Sprintf(`
		SELECT d.status, COUNT(*)
		FROM %s d
		JOIN companies c ON c.id = d.company_id AND c.user_id = $1
		WHERE d.company_id = $2
		GROUP BY d.status`, table)

	rows, err := r.pool.Query(ctx, query, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("stats.countByStatus %s: %w", table, err)
	}
	defer rows.Close()

	var counts []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("stats.countByStatus %s scan: %w", table, err)
		}
		counts = append(counts, sc)
	}
	return counts, rows.Err()
}

// SumInvoiceAmounts totals invoice values by payment state. COALESCE keeps
// the result at zero for companies without invoices.
func (r *StatsRepo) SumInvoiceAmounts(ctx context.Context, userID, companyID string) (repository.InvoiceAmounts, error) {
	const query = `
		SELECT
		    COALESCE(SUM(d.total) FILTER (WHERE d.status = 'PAID'),   0) AS paid,
		    COALESCE(SUM(d.total) FILTER (WHERE d.status = 'UNPAID'), 0) AS unpaid
		FROM invoices d
		JOIN companies c ON c.id = d.company_id AND c.user_id = $1
		WHERE d.company_id = $2`

	var amounts repository.InvoiceAmounts
	err := r.pool.QueryRow(ctx, query, userID, companyID).Scan(&amounts.Paid, &amounts.Unpaid)
	if err != nil {
		return repository.InvoiceAmounts{}, fmt.Errorf("stats.SumInvoiceAmounts: %w", err)
	}
	return amounts, nil
}
