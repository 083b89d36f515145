package services

import (
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/platform/config"
)

// NewServiceContainer wires every service onto the repository provider.
// The rate fetcher may be nil when no outbound rate feed is configured;
// the refresh operation then rejects with a validation error.
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, fetcher RateFetcher) *portssvc.ServiceContainer {
	customerSvc := NewCustomerService(repos.CustomerRepo, repos.CounterRepo, repos.ActivityRepo)
	rateSvc := NewExchangeRateService(repos.ExchangeRateRepo, repos.ActivityRepo, fetcher, cfg.TodayKey)
	feeSvc := NewFeeService(repos.FeeRepo, repos.ActivityRepo)
	txnSvc := NewTransactionService(repos.TransactionRepo, repos.CounterRepo, repos.ActivityRepo, customerSvc, feeSvc, rateSvc)
	amlSvc := NewAmlService(repos.TransactionRepo, repos.CustomerRepo, repos.ActivityRepo)
	reportingSvc := NewReportingService(repos.TransactionRepo)
	agentSvc := NewAgentService(repos.AgentRepo, repos.CounterRepo, repos.ActivityRepo)
	userSvc := NewUserService(repos.UserRepo)
	authSvc := NewAuthService(cfg, repos.UserRepo)
	activitySvc := NewActivityService(repos.ActivityRepo)

	return &portssvc.ServiceContainer{
		Customer:     customerSvc,
		Transaction:  txnSvc,
		ExchangeRate: rateSvc,
		Fee:          feeSvc,
		Aml:          amlSvc,
		Reporting:    reportingSvc,
		Agent:        agentSvc,
		User:         userSvc,
		Auth:         authSvc,
		Activity:     activitySvc,
	}
}
