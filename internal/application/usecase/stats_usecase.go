package usecase

import (
	"context"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/domain"
	"github.com/gstbill/billing-api/internal/domain/entity"
	"github.com/gstbill/billing-api/internal/domain/repository"
)

// StatsUseCase builds the dashboard aggregate for one company: quotation and
// challan counts by draft/sent, invoice counts by draft/paid/unpaid plus
// amount totals.
type StatsUseCase struct {
	companyRepo repository.CompanyRepository
	statsRepo   repository.StatsRepository
}

// NewStatsUseCase builds the use case.
func NewStatsUseCase(companyRepo repository.CompanyRepository, statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{companyRepo: companyRepo, statsRepo: statsRepo}
}

// GetStats aggregates document counts for the given company. The company must
// belong to the user, otherwise not_found.
//
// The four read-only queries run concurrently; results meet on channels.
func (uc *StatsUseCase) GetStats(ctx context.Context, userID, companyID string) (*dto.StatsResponse, error) {
	company, err := uc.companyRepo.GetByID(ctx, userID, companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	type countsResult struct {
		counts []repository.StatusCount
		err    error
	}
	type amountsResult struct {
		amounts repository.InvoiceAmounts
		err     error
	}

	quotationCh := make(chan countsResult, 1)
	challanCh := make(chan countsResult, 1)
	invoiceCh := make(chan countsResult, 1)
	amountsCh := make(chan amountsResult, 1)

	go func() {
		counts, err := uc.statsRepo.CountQuotationsByStatus(ctx, userID, companyID)
		quotationCh <- countsResult{counts, err}
	}()
	go func() {
		counts, err := uc.statsRepo.CountChallansByStatus(ctx, userID, companyID)
		challanCh <- countsResult{counts, err}
	}()
	go func() {
		counts, err := uc.statsRepo.CountInvoicesByStatus(ctx, userID, companyID)
		invoiceCh <- countsResult{counts, err}
	}()
	go func() {
		amounts, err := uc.statsRepo.SumInvoiceAmounts(ctx, userID, companyID)
		amountsCh <- amountsResult{amounts, err}
	}()

	quotations := <-quotationCh
	challans := <-challanCh
	invoices := <-invoiceCh
	amounts := <-amountsCh
	for _, e := range []error{quotations.err, challans.err, invoices.err, amounts.err} {
		if e != nil {
			return nil, e
		}
	}

	resp := &dto.StatsResponse{
		Quotations: dto.DocumentCounts{
			Total: totalOf(quotations.counts),
			Draft: countOf(quotations.counts, entity.StatusDraft),
			Sent:  countOf(quotations.counts, entity.StatusSent),
		},
		Challans: dto.DocumentCounts{
			Total: totalOf(challans.counts),
			Draft: countOf(challans.counts, entity.StatusDraft),
			Sent:  countOf(challans.counts, entity.StatusSent),
		},
		Invoices: dto.InvoiceCounts{
			Total:        totalOf(invoices.counts),
			Draft:        countOf(invoices.counts, entity.StatusDraft),
			Paid:         countOf(invoices.counts, entity.StatusPaid),
			Unpaid:       countOf(invoices.counts, entity.StatusUnpaid),
			PaidAmount:   amounts.amounts.Paid,
			UnpaidAmount: amounts.amounts.Unpaid,
		},
	}
	return resp, nil
}

func totalOf(counts []repository.StatusCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

func countOf(counts []repository.StatusCount, status string) int {
	for _, c := range counts {
		if c.Status == status {
			return c.Count
		}
	}
	return 0
}
