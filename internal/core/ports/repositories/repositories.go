package repositories

// RepositoryProvider bundles all repository implementations for dependency
// injection into the service container.
type RepositoryProvider struct {
	CustomerRepo     CustomerRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	FeeRepo          FeeRepositoryFacade
	CounterRepo      CounterRepository
	AgentRepo        AgentRepositoryFacade
	UserRepo         UserRepositoryFacade
	ActivityRepo     ActivityLogRepository
}
