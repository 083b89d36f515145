package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CustomerRepo:     NewPgxCustomerRepository(pool),
		TransactionRepo:  NewPgxTransactionRepository(pool),
		ExchangeRateRepo: NewPgxExchangeRateRepository(pool),
		FeeRepo:          NewPgxFeeRepository(pool),
		CounterRepo:      NewPgxCounterRepository(pool),
		AgentRepo:        NewPgxAgentRepository(pool),
		UserRepo:         NewPgxUserRepository(pool),
		ActivityRepo:     NewPgxActivityRepository(pool),
	}
}
