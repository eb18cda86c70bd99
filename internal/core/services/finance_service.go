package services

import (
	"context"
	"fmt"

	"github.com/juruweb/epms_backend/internal/core/domain"
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	"golang.org/x/sync/errgroup"
)

// FinanceService produces the cash-tracking overview across all projects.
type FinanceService struct {
	BaseService
	projectRepo   portsrepo.ProjectRepositoryFacade
	poRepo        portsrepo.PurchaseOrderRepositoryFacade
	invoiceRepo   portsrepo.InvoiceRepositoryFacade
	timesheetRepo portsrepo.TimesheetRepositoryFacade
}

// NewFinanceService creates a new FinanceService.
func NewFinanceService(projectRepo portsrepo.ProjectRepositoryFacade, poRepo portsrepo.PurchaseOrderRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, timesheetRepo portsrepo.TimesheetRepositoryFacade) *FinanceService {
	return &FinanceService{
		projectRepo:   projectRepo,
		poRepo:        poRepo,
		invoiceRepo:   invoiceRepo,
		timesheetRepo: timesheetRepo,
	}
}

// overviewPageSize is the page size used when walking the full project list.
const overviewPageSize = 100

// Overview builds one summary per project plus portfolio totals. The four
// source datasets are fetched concurrently and any single failure fails the
// whole pass; a partial overview would silently understate the totals.
func (s *FinanceService) Overview(ctx context.Context) (*domain.FinanceOverview, error) {
	var (
		projects   []domain.Project
		pos        []domain.PurchaseOrder
		invoices   []domain.Invoice
		timesheets []domain.Timesheet
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		projects, err = s.listAllProjects(gctx)
		if err != nil {
			return fmt.Errorf("fetching projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		pos, err = s.poRepo.ListPurchaseOrders(gctx, false)
		if err != nil {
			return fmt.Errorf("fetching purchase orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		invoices, err = s.invoiceRepo.ListInvoices(gctx)
		if err != nil {
			return fmt.Errorf("fetching invoices: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		timesheets, err = s.timesheetRepo.ListTimesheets(gctx, nil, nil)
		if err != nil {
			return fmt.Errorf("fetching timesheets: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Finance overview fetch failed")
		return nil, fmt.Errorf("failed to build finance overview: %w", err)
	}

	summaries := make([]domain.ProjectFinanceSummary, 0, len(projects))
	for _, project := range projects {
		summaries = append(summaries, BuildProjectFinanceSummary(project, pos, invoices, timesheets))
	}

	return &domain.FinanceOverview{
		ProjectSummaries: summaries,
		Totals:           ComputeFinanceTotals(summaries),
	}, nil
}

// listAllProjects walks the paged project listing to completion.
func (s *FinanceService) listAllProjects(ctx context.Context) ([]domain.Project, error) {
	var all []domain.Project
	var nextToken *string
	for {
		page, next, err := s.projectRepo.ListProjects(ctx, overviewPageSize, nextToken)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == nil {
			return all, nil
		}
		nextToken = next
	}
}
