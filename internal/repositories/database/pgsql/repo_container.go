package pgsql

import (
	portsrepo "github.com/juruweb/epms_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	projectRepo := newPgxProjectRepository(dbPool)
	purchaseOrderRepo := newPgxPurchaseOrderRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	timesheetRepo := newPgxTimesheetRepository(dbPool)
	teamMemberRepo := newPgxTeamMemberRepository(dbPool)
	projectRateRepo := newPgxProjectRateRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProjectRepo:       projectRepo,
		PurchaseOrderRepo: purchaseOrderRepo,
		InvoiceRepo:       invoiceRepo,
		TimesheetRepo:     timesheetRepo,
		TeamMemberRepo:    teamMemberRepo,
		ProjectRateRepo:   projectRateRepo,
		ExchangeRateRepo:  exchangeRateRepo,
	}
}
