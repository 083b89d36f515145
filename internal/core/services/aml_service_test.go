package services_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/talofaremit/remit_backend/internal/apperrors"
	"github.com/talofaremit/remit_backend/internal/core/domain"
	"github.com/talofaremit/remit_backend/internal/core/services"
)

type AmlServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCustomerRepo *MockCustomerRepository
	mockActivityRepo *MockActivityRepository
	service          *services.AmlService
	ctx              context.Context
}

func (suite *AmlServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCustomerRepo = new(MockCustomerRepository)
	suite.mockActivityRepo = new(MockActivityRepository)
	suite.service = services.NewAmlService(suite.mockTxnRepo, suite.mockCustomerRepo, suite.mockActivityRepo)
	suite.ctx = context.Background()
}

func (suite *AmlServiceTestSuite) exportableTransaction() domain.Transaction {
	created := time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)
	return domain.Transaction{
		TransactionID:        "txn-1",
		TransactionNumber:    "TXN000042",
		CustomerID:           "cust-1",
		DestinationCurrency:  domain.CurrencyTOP,
		AmountNzdCents:       100000,
		FeeNzdCents:          500,
		TotalPaidNzdCents:    100500,
		Rate:                 decimal.NewFromFloat(1.491),
		TotalForeignReceived: decimal.NewFromInt(1491),
		BeneficiaryName:      "Sione Tupou",
		BeneficiaryPhone:     "+676 123 4567",
		BeneficiaryAddress:   "Nuku'alofa, Tonga",
		PurposeOfTransfer:    "family support",
		IsPtrRequired:        true,
		IsGoAmlExportReady:   true,
		AuditFields:          domain.AuditFields{CreatedAt: created},
	}
}

func (suite *AmlServiceTestSuite) exportableSender() *domain.Customer {
	expiry := time.Date(2027, 6, 30, 0, 0, 0, 0, time.UTC)
	return &domain.Customer{
		CustomerID:     "cust-1",
		CustomerNumber: "CUS000007",
		FirstName:      "Mele",
		LastName:       "Fifita",
		DateOfBirth:    time.Date(1985, 11, 2, 0, 0, 0, 0, time.UTC),
		Phone:          "+64 21 555 123",
		Address:        "12 Great South Rd, Auckland",
		Occupation:     "Nurse",
		Employer:       "Auckland DHB",
		IDType:         domain.IDDocPassport,
		IDNumber:       "LA123456",
		IDExpiryDate:   &expiry,
		KycVerified:    true,
	}
}

func (suite *AmlServiceTestSuite) TestExportCSV_Success() {
	txn := suite.exportableTransaction()
	suite.mockTxnRepo.On("FindTransactionsByIDs", suite.ctx, []string{"txn-1"}).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", suite.ctx, "cust-1").
		Return(suite.exportableSender(), nil).Once()

	out, err := suite.service.ExportCSV(suite.ctx, []string{"txn-1"})

	suite.Require().NoError(err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)

	header := records[0]
	suite.Len(header, 24)
	suite.Equal("transaction_number", header[0])
	suite.Equal("ptr_required", header[23])

	row := records[1]
	suite.Equal("TXN000042", row[0])
	suite.Equal("2025-03-14", row[1])
	suite.Equal("TOP", row[2])
	suite.Equal("1000.00", row[3])
	suite.Equal("5.00", row[4])
	suite.Equal("1005.00", row[5])
	suite.Equal("1.491", row[6])
	suite.Equal("1491.00", row[7])
	suite.Equal("CUS000007", row[8])
	suite.Equal("Mele Fifita", row[9])
	suite.Equal("1985-11-02", row[10])
	suite.Equal("PASSPORT", row[15])
	suite.Equal("2027-06-30", row[17])
	suite.Equal("Y", row[18])
	suite.Equal("Y", row[23])
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCustomerRepo.AssertExpectations(suite.T())
}

func (suite *AmlServiceTestSuite) TestExportCSV_QuotesEmbeddedCommasAndQuotes() {
	txn := suite.exportableTransaction()
	txn.BeneficiaryAddress = `Vaini, "the old road", Tongatapu`
	sender := suite.exportableSender()
	sender.Address = "Flat 2, 9 Queen St\nAuckland"
	suite.mockTxnRepo.On("FindTransactionsByIDs", suite.ctx, []string{"txn-1"}).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", suite.ctx, "cust-1").
		Return(sender, nil).Once()

	out, err := suite.service.ExportCSV(suite.ctx, []string{"txn-1"})

	suite.Require().NoError(err)
	// A standard CSV reader must round-trip the awkward fields untouched.
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal("Flat 2, 9 Queen St\nAuckland", records[1][12])
	suite.Equal(`Vaini, "the old road", Tongatapu`, records[1][21])
}

func (suite *AmlServiceTestSuite) TestExportCSV_MissingIDExpiryIsEmpty() {
	txn := suite.exportableTransaction()
	sender := suite.exportableSender()
	sender.IDExpiryDate = nil
	sender.KycVerified = false
	suite.mockTxnRepo.On("FindTransactionsByIDs", suite.ctx, []string{"txn-1"}).
		Return([]domain.Transaction{txn}, nil).Once()
	suite.mockCustomerRepo.On("FindCustomerByID", suite.ctx, "cust-1").
		Return(sender, nil).Once()

	out, err := suite.service.ExportCSV(suite.ctx, []string{"txn-1"})

	suite.Require().NoError(err)
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	suite.Require().NoError(err)
	suite.Equal("", records[1][17])
	suite.Equal("N", records[1][18])
}

func (suite *AmlServiceTestSuite) TestExportCSV_EmptySelection() {
	out, err := suite.service.ExportCSV(suite.ctx, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Empty(out)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "FindTransactionsByIDs", mock.Anything, mock.Anything)
}

func (suite *AmlServiceTestSuite) TestExportCSV_UnknownTransaction() {
	suite.mockTxnRepo.On("FindTransactionsByIDs", suite.ctx, []string{"txn-1", "txn-missing"}).
		Return([]domain.Transaction{suite.exportableTransaction()}, nil).Once()

	out, err := suite.service.ExportCSV(suite.ctx, []string{"txn-1", "txn-missing"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(out)
	suite.mockCustomerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
}

func (suite *AmlServiceTestSuite) TestListPendingExport() {
	pending := []domain.Transaction{suite.exportableTransaction()}
	suite.mockTxnRepo.On("ListGoAmlPending", suite.ctx).Return(pending, nil).Once()

	txns, err := suite.service.ListPendingExport(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AmlServiceTestSuite) TestMarkExported_ReturnsMarkedCount() {
	ids := []string{"txn-1", "txn-2", "txn-already-exported"}
	suite.mockTxnRepo.On("MarkGoAmlExported", suite.ctx, ids, mock.AnythingOfType("time.Time"), "admin-1").
		Return(int64(2), nil).Once()
	suite.mockActivityRepo.On("SaveActivity", mock.Anything, mock.Anything).Return(nil).Maybe()

	marked, err := suite.service.MarkExported(suite.ctx, ids, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(int64(2), marked)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *AmlServiceTestSuite) TestMarkExported_EmptySelection() {
	marked, err := suite.service.MarkExported(suite.ctx, nil, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(marked)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "MarkGoAmlExported", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAmlServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AmlServiceTestSuite))
}
