package pgsql

import (
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PharmacyRepo: newPgxPharmacyRepository(dbPool),
		SaleRepo:     newPgxSaleRepository(dbPool),
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
		AuditLogRepo: newPgxAuditLogRepository(dbPool),
	}
}
