package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	portsrepo "github.com/talofaremit/remit_backend/internal/core/ports/repositories"
	portssvc "github.com/talofaremit/remit_backend/internal/core/ports/services"
	"github.com/talofaremit/remit_backend/internal/core/services"
	"github.com/talofaremit/remit_backend/internal/dto"
)

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRateByDate(ctx context.Context, dateKey string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpsertExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindExchangeRateSettings(ctx context.Context) (*domain.ExchangeRateSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateSettings), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRateSettings(ctx context.Context, settings domain.ExchangeRateSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

// --- Mock FeeRepository ---

type MockFeeRepository struct {
	mock.Mock
}

func (m *MockFeeRepository) FindFeeSettings(ctx context.Context) (*domain.FeeSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeSettings), args.Error(1)
}

func (m *MockFeeRepository) SaveFeeSettings(ctx context.Context, settings domain.FeeSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockFeeRepository) ListFeeBrackets(ctx context.Context) ([]domain.FeeBracket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeBracket), args.Error(1)
}

func (m *MockFeeRepository) ReplaceFeeBrackets(ctx context.Context, brackets []domain.FeeBracket) error {
	args := m.Called(ctx, brackets)
	return args.Error(0)
}

var _ portsrepo.FeeRepositoryFacade = (*MockFeeRepository)(nil)

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionListFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListGoAmlPending(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionsByIDs(ctx context.Context, transactionIDs []string) ([]domain.Transaction, error) {
	args := m.Called(ctx, transactionIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkGoAmlExported(ctx context.Context, transactionIDs []string, exportedAt time.Time, actorID string) (int64, error) {
	args := m.Called(ctx, transactionIDs, exportedAt, actorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SummarizeTransactions(ctx context.Context, from, to time.Time) (*domain.TransactionSummary, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionSummary), args.Error(1)
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

// --- Mock CustomerRepository ---

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

var _ portsrepo.CustomerRepositoryFacade = (*MockCustomerRepository)(nil)

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

// --- Mock CounterRepository ---

type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) NextCounterValue(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

var _ portsrepo.CounterRepository = (*MockCounterRepository)(nil)

// --- Mock ActivityLogRepository ---

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivities(ctx context.Context, limit, offset int) ([]domain.ActivityLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityLog), args.Error(1)
}

var _ portsrepo.ActivityLogRepository = (*MockActivityRepository)(nil)

// --- Mock service-level collaborators for the transaction assembler ---

type MockCustomerReaderSvc struct {
	mock.Mock
}

func (m *MockCustomerReaderSvc) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerReaderSvc) ListCustomers(ctx context.Context, search string, limit, offset int) ([]domain.Customer, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

var _ portssvc.CustomerReaderSvc = (*MockCustomerReaderSvc)(nil)

type MockFeeQuoterSvc struct {
	mock.Mock
}

func (m *MockFeeQuoterSvc) QuoteFee(ctx context.Context, amountNzd decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, amountNzd)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portssvc.FeeQuoterSvc = (*MockFeeQuoterSvc)(nil)

type MockRateReaderSvc struct {
	mock.Mock
}

func (m *MockRateReaderSvc) GetDailyRates(ctx context.Context, dateKey string) (*dto.DailyRatesResponse, error) {
	args := m.Called(ctx, dateKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DailyRatesResponse), args.Error(1)
}

func (m *MockRateReaderSvc) GetEffectiveRate(ctx context.Context, dateKey string, currency domain.Currency) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, dateKey, currency)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

var _ portssvc.ExchangeRateReaderSvc = (*MockRateReaderSvc)(nil)

// --- Mock RateFetcher ---

type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) FetchDailyRates(ctx context.Context) (*domain.FetchedRates, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FetchedRates), args.Error(1)
}

var _ services.RateFetcher = (*MockRateFetcher)(nil)
