package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/juruweb/epms_backend/internal/core/domain"
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ProfitabilityService is the profit-oriented calculation path. It costs
// labour with per-project overrides, then personal rates, then the default
// rate. This is deliberately a different rate policy from FinanceService's
// fixed global rate and the two paths are never mixed.
type ProfitabilityService struct {
	BaseService
	projectRepo     portsrepo.ProjectRepositoryFacade
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	timesheetRepo   portsrepo.TimesheetRepositoryFacade
	teamRepo        portsrepo.TeamMemberRepositoryFacade
	projectRateRepo portsrepo.ProjectRateRepositoryFacade
}

// NewProfitabilityService creates a new ProfitabilityService.
func NewProfitabilityService(projectRepo portsrepo.ProjectRepositoryFacade, invoiceRepo portsrepo.InvoiceRepositoryFacade, timesheetRepo portsrepo.TimesheetRepositoryFacade, teamRepo portsrepo.TeamMemberRepositoryFacade, projectRateRepo portsrepo.ProjectRateRepositoryFacade) *ProfitabilityService {
	return &ProfitabilityService{
		projectRepo:     projectRepo,
		invoiceRepo:     invoiceRepo,
		timesheetRepo:   timesheetRepo,
		teamRepo:        teamRepo,
		projectRateRepo: projectRateRepo,
	}
}

// ProjectProfitability computes the profit view of a single project.
func (s *ProfitabilityService) ProjectProfitability(ctx context.Context, projectID string) (*domain.ProjectProfitability, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project for profitability: %w", err)
	}

	invoices, err := s.invoiceRepo.ListInvoicesByProjectCode(ctx, project.ProjectCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for profitability: %w", err)
	}

	timesheets, err := s.timesheetRepo.ListTimesheetsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets for profitability: %w", err)
	}

	personalRates, err := s.personalRates(ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := s.projectRateRepo.ListProjectRates(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project rates for profitability: %w", err)
	}

	result := buildProjectProfitability(*project, invoices, timesheets, overrides, personalRates)
	return &result, nil
}

// profitabilityConcurrency bounds the parallel per-project rate lookups.
const profitabilityConcurrency = 8

// AllProjectProfitability computes the profit view across all projects.
// Per-project rate lookups run concurrently; a project whose overrides
// cannot be fetched is costed on personal/default rates instead of failing
// the batch.
func (s *ProfitabilityService) AllProjectProfitability(ctx context.Context) ([]domain.ProjectProfitability, error) {
	projects, err := s.listAllProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects for profitability: %w", err)
	}

	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices for profitability: %w", err)
	}

	timesheets, err := s.timesheetRepo.ListTimesheets(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list timesheets for profitability: %w", err)
	}

	personalRates, err := s.personalRates(ctx)
	if err != nil {
		return nil, err
	}

	invoicesByCode := map[string][]domain.Invoice{}
	for _, inv := range invoices {
		invoicesByCode[inv.ProjectCode] = append(invoicesByCode[inv.ProjectCode], inv)
	}
	timesheetsByProject := map[string][]domain.Timesheet{}
	for _, ts := range timesheets {
		timesheetsByProject[ts.ProjectID] = append(timesheetsByProject[ts.ProjectID], ts)
	}

	results := make([]domain.ProjectProfitability, len(projects))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(profitabilityConcurrency)
	for i := range projects {
		i := i
		g.Go(func() error {
			project := projects[i]
			overrides, err := s.projectRateRepo.ListProjectRates(gctx, project.ProjectID)
			if err != nil {
				// Swallowed: fall back to personal/default rates.
				s.LogWarn(gctx, "Project rate lookup failed, using fallback rates",
					"project_id", project.ProjectID, "error", err.Error())
				overrides = nil
			}
			results[i] = buildProjectProfitability(project, invoicesByCode[project.ProjectCode], timesheetsByProject[project.ProjectID], overrides, personalRates)
			return nil
		})
	}
	// Goroutines never return errors; Wait only observes ctx cancellation.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute profitability batch: %w", err)
	}

	return results, nil
}

// personalRates maps team member ID to their personal hourly rate.
func (s *ProfitabilityService) personalRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	members, err := s.teamRepo.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members for profitability: %w", err)
	}
	rates := make(map[string]decimal.Decimal, len(members))
	for _, m := range members {
		if m.HourlyRate != nil {
			rates[m.TeamMemberID] = *m.HourlyRate
		}
	}
	return rates, nil
}

func (s *ProfitabilityService) listAllProjects(ctx context.Context) ([]domain.Project, error) {
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

// resolveRate picks the hourly rate for one engineer on one project:
// project override, then personal rate, then the default rate.
func resolveRate(engineerID string, overrides map[string]decimal.Decimal, personal map[string]decimal.Decimal) decimal.Decimal {
	if rate, ok := overrides[engineerID]; ok {
		return rate
	}
	if rate, ok := personal[engineerID]; ok {
		return rate
	}
	return domain.DefaultHourlyRate
}

// buildProjectProfitability computes revenue, labour cost and margin for one
// project. Margin is zero when there is no revenue.
func buildProjectProfitability(project domain.Project, invoices []domain.Invoice, timesheets []domain.Timesheet, overrides []domain.ProjectRate, personalRates map[string]decimal.Decimal) domain.ProjectProfitability {
	result := domain.ProjectProfitability{
		ProjectID:    project.ProjectID,
		ProjectCode:  project.ProjectCode,
		ProjectTitle: project.Title,
		Revenue:      decimal.Zero,
		LabourCost:   decimal.Zero,
	}

	for _, inv := range invoices {
		result.Revenue = result.Revenue.Add(inv.AmountMYR)
	}

	overrideRates := make(map[string]decimal.Decimal, len(overrides))
	for _, o := range overrides {
		overrideRates[o.TeamMemberID] = o.HourlyRate
	}

	hoursByEngineer := map[string]decimal.Decimal{}
	for _, ts := range timesheets {
		hoursByEngineer[ts.EngineerID] = hoursByEngineer[ts.EngineerID].Add(ts.Hours)
	}

	engineerIDs := make([]string, 0, len(hoursByEngineer))
	for id := range hoursByEngineer {
		engineerIDs = append(engineerIDs, id)
	}
	sort.Strings(engineerIDs)

	result.EngineerBreakdown = make([]domain.EngineerCost, 0, len(engineerIDs))
	for _, id := range engineerIDs {
		hours := hoursByEngineer[id]
		rate := resolveRate(id, overrideRates, personalRates)
		cost := hours.Mul(rate)
		result.EngineerBreakdown = append(result.EngineerBreakdown, domain.EngineerCost{
			EngineerID: id,
			Hours:      hours,
			Rate:       rate,
			Cost:       cost,
		})
		result.LabourCost = result.LabourCost.Add(cost)
	}

	result.Profit = result.Revenue.Sub(result.LabourCost)
	if result.Revenue.IsPositive() {
		result.MarginPercent = result.Profit.Div(result.Revenue).Mul(hundred)
	} else {
		result.MarginPercent = decimal.Zero
	}

	return result
}
