package services

import (
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	portssvc "github.com/juruweb/epms_backend/internal/core/ports/services"
	"github.com/juruweb/epms_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, fetcher portssvc.RateFetcher) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The converter comes first: PO and invoice entry both normalize
	// through it.
	container.Converter = NewConverterService(fetcher)

	container.Project = NewProjectService(repos.ProjectRepo)
	container.PurchaseOrder = NewPurchaseOrderService(repos.PurchaseOrderRepo, repos.ProjectRepo, container.Converter)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ProjectRepo, container.Converter)
	container.Timesheet = NewTimesheetService(repos.TimesheetRepo, repos.ProjectRepo, repos.TeamMemberRepo)
	container.Team = NewTeamService(repos.TeamMemberRepo, repos.ProjectRateRepo, repos.ProjectRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo)

	container.Finance = NewFinanceService(repos.ProjectRepo, repos.PurchaseOrderRepo, repos.InvoiceRepo, repos.TimesheetRepo)
	container.Profitability = NewProfitabilityService(repos.ProjectRepo, repos.InvoiceRepo, repos.TimesheetRepo, repos.TeamMemberRepo, repos.ProjectRateRepo)

	container.Auth = NewAuthService(repos.TeamMemberRepo, cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.ProjectSvcFacade       = (*ProjectService)(nil)
	_ portssvc.PurchaseOrderSvcFacade = (*PurchaseOrderService)(nil)
	_ portssvc.InvoiceSvcFacade       = (*InvoiceService)(nil)
	_ portssvc.TimesheetSvcFacade     = (*TimesheetService)(nil)
	_ portssvc.TeamSvcFacade          = (*TeamService)(nil)
	_ portssvc.ExchangeRateSvcFacade  = (*ExchangeRateService)(nil)
	_ portssvc.ConverterSvcFacade     = (*ConverterService)(nil)
	_ portssvc.FinanceSvcFacade       = (*FinanceService)(nil)
	_ portssvc.ProfitabilitySvcFacade = (*ProfitabilityService)(nil)
	_ portssvc.AuthSvcFacade          = (*AuthService)(nil)
)
