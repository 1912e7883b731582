package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/SscSPs/wallet_history_app/internal/apperrors"
	"github.com/SscSPs/wallet_history_app/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_history_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_history_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_history_app/internal/core/services"
	"github.com/SscSPs/wallet_history_app/internal/core/txhistory"
	"github.com/SscSPs/wallet_history_app/internal/dto"
	"github.com/SscSPs/wallet_history_app/internal/platform/metrics"
)

// --- Mock LedgerRecordReader ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ReadWalletSnapshot(ctx context.Context, walletID string, filter domain.LedgerRecordFilter, limit int, nextToken *string) (*domain.WalletSnapshot, error) {
	args := m.Called(ctx, walletID, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WalletSnapshot), args.Error(1)
}

var _ portsrepo.LedgerRecordReader = (*MockLedgerRepository)(nil)

// --- Mock WalletReader ---
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

// --- Mock PriceReader ---
type MockPriceRepository struct {
	mock.Mock
}

func (m *MockPriceRepository) LatestUsdPerSat(ctx context.Context) (domain.UsdPerSat, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

var _ portsrepo.PriceRepositoryFacade = (*MockPriceRepository)(nil)

// --- Mock BroadcastWatcher ---
type MockBroadcastWatcher struct {
	mock.Mock
}

func (m *MockBroadcastWatcher) PendingTransactions(ctx context.Context) ([]domain.SubmittedTransaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubmittedTransaction), args.Error(1)
}

var _ portssvc.BroadcastWatcher = (*MockBroadcastWatcher)(nil)

// --- Test Suite ---
type WalletHistoryServiceTestSuite struct {
	suite.Suite
	ledgerRepo *MockLedgerRepository
	walletRepo *MockWalletRepository
	priceRepo  *MockPriceRepository
	watcher    *MockBroadcastWatcher
	metrics    *metrics.Metrics

	userID   string
	walletID string
	now      time.Time
	price    decimal.Decimal
}

func (suite *WalletHistoryServiceTestSuite) SetupTest() {
	suite.ledgerRepo = new(MockLedgerRepository)
	suite.walletRepo = new(MockWalletRepository)
	suite.priceRepo = new(MockPriceRepository)
	suite.watcher = new(MockBroadcastWatcher)
	suite.metrics = metrics.New(prometheus.NewRegistry())

	suite.userID = uuid.NewString()
	suite.walletID = uuid.NewString()
	suite.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	suite.price = decimal.RequireFromString("0.0006")
}

func (suite *WalletHistoryServiceTestSuite) newService(opts ...services.WalletHistoryOption) portssvc.WalletHistorySvcFacade {
	opts = append(opts, services.WithHistoryMetrics(suite.metrics))
	return services.NewWalletHistoryService(suite.ledgerRepo, suite.walletRepo, suite.priceRepo, suite.watcher, opts...)
}

func (suite *WalletHistoryServiceTestSuite) expectOwner() {
	suite.walletRepo.On("FindWalletByID", mock.Anything, suite.walletID).
		Return(&domain.Wallet{WalletID: suite.walletID, UserID: suite.userID}, nil).Once()
}

func hash(c string) string {
	return strings.Repeat(c, 64)
}

func (suite *WalletHistoryServiceTestSuite) confirmedRecords() []domain.LedgerRecord {
	return []domain.LedgerRecord{
		{
			ID:        "rec-2",
			WalletID:  suite.walletID,
			Type:      domain.OnchainReceipt,
			Credit:    20000,
			Usd:       decimal.RequireFromString("10"),
			Address:   "bc1qowned",
			TxHash:    hash("1"),
			Timestamp: suite.now,
		},
		{
			ID:        "rec-1",
			WalletID:  suite.walletID,
			Type:      domain.IntraLedger,
			Debit:     500,
			Usd:       decimal.RequireFromString("0.25"),
			Username:  "bob",
			Timestamp: suite.now.Add(-time.Hour),
		},
	}
}

func (suite *WalletHistoryServiceTestSuite) broadcasts() []domain.SubmittedTransaction {
	return []domain.SubmittedTransaction{
		{
			TxHash:    hash("2"),
			CreatedAt: suite.now.Add(time.Minute),
			Outs: []domain.TxOut{
				{Sats: 5000, Address: "bc1qowned"},
				{Sats: 900, Address: "bc1qchange"},
			},
		},
		{
			TxHash:    hash("1"), // already confirmed as rec-2
			CreatedAt: suite.now.Add(-time.Minute),
			Outs:      []domain.TxOut{{Sats: 20000, Address: "bc1qowned"}},
		},
	}
}

// --- Test Cases ---

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_FirstPageLayersPending() {
	ctx := context.Background()
	next := "next-page"
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 10, (*string)(nil)).
		Return(&domain.WalletSnapshot{
			WalletID:  suite.walletID,
			Records:   suite.confirmedRecords(),
			Addresses: []string{"bc1qowned"},
			NextToken: &next,
		}, nil).Once()
	suite.watcher.On("PendingTransactions", mock.Anything).Return(suite.broadcasts(), nil).Once()
	suite.priceRepo.On("LatestUsdPerSat", mock.Anything).Return(suite.price, nil).Once()

	page, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{Limit: 10})

	suite.Require().NoError(err)
	suite.Require().Len(page.Transactions, 4, "two provisional entries then two confirmed")
	suite.Equal(&next, page.NextToken)

	first := page.Transactions[0]
	suite.Equal(hash("2"), first.ID)
	suite.Equal(domain.TxStatusPending, first.Status)
	suite.Equal(btcutil.Amount(5000), first.SettlementAmount)
	suite.True(first.Deprecated.Usd.Equal(decimal.RequireFromString("3")))
	suite.Equal(hash("1"), page.Transactions[1].ID, "no dedup by default")
	suite.Equal("rec-2", page.Transactions[2].ID)
	suite.Equal("rec-1", page.Transactions[3].ID)
	suite.Equal("to bob", page.Transactions[3].Deprecated.Description)

	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.HistoryBuilds.WithLabelValues(metrics.OutcomeSuccess)))
	suite.Equal(2.0, testutil.ToFloat64(suite.metrics.PendingEntries))
	suite.ledgerRepo.AssertExpectations(suite.T())
	suite.watcher.AssertExpectations(suite.T())
	suite.priceRepo.AssertExpectations(suite.T())
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_DedupDropsConfirmedBroadcasts() {
	ctx := context.Background()
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 50, (*string)(nil)).
		Return(&domain.WalletSnapshot{
			Records:   suite.confirmedRecords(),
			Addresses: []string{"bc1qowned"},
		}, nil).Once()
	suite.watcher.On("PendingTransactions", mock.Anything).Return(suite.broadcasts(), nil).Once()
	suite.priceRepo.On("LatestUsdPerSat", mock.Anything).Return(suite.price, nil).Once()

	page, err := suite.newService(services.WithPendingDedup(true)).
		ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(page.Transactions, 3)
	suite.Equal(hash("2"), page.Transactions[0].ID)
	suite.Equal("rec-2", page.Transactions[1].ID)
	suite.Nil(page.NextToken)
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_LaterPagesSkipPending() {
	ctx := context.Background()
	token := "cursor"
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 25, &token).
		Return(&domain.WalletSnapshot{
			Records:   suite.confirmedRecords(),
			Addresses: []string{"bc1qowned"},
		}, nil).Once()

	page, err := suite.newService(services.WithDefaultPageSize(25)).
		ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{NextToken: &token})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 2)
	suite.watcher.AssertNotCalled(suite.T(), "PendingTransactions", mock.Anything)
	suite.priceRepo.AssertNotCalled(suite.T(), "LatestUsdPerSat", mock.Anything)
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_Forbidden() {
	ctx := context.Background()
	suite.walletRepo.On("FindWalletByID", mock.Anything, suite.walletID).
		Return(&domain.Wallet{WalletID: suite.walletID, UserID: "someone-else"}, nil).Once()

	page, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.ledgerRepo.AssertNotCalled(suite.T(), "ReadWalletSnapshot", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_WalletNotFound() {
	ctx := context.Background()
	suite.walletRepo.On("FindWalletByID", mock.Anything, suite.walletID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_ClassificationErrorAbortsBatch() {
	ctx := context.Background()
	records := append(suite.confirmedRecords(), domain.LedgerRecord{ID: "rec-0", Type: "refund", Credit: 1})
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 50, (*string)(nil)).
		Return(&domain.WalletSnapshot{Records: records, Addresses: []string{"bc1qowned"}}, nil).Once()

	page, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.Nil(page)
	suite.ErrorIs(err, apperrors.ErrClassification)
	var classErr *txhistory.ClassificationError
	suite.Require().ErrorAs(err, &classErr)
	suite.Equal("rec-0", classErr.RecordID)
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.ClassificationErrors.WithLabelValues("refund")))
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.HistoryBuilds.WithLabelValues(metrics.OutcomeClassificationError)))
	suite.watcher.AssertNotCalled(suite.T(), "PendingTransactions", mock.Anything)
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_MissingPriceValuesPendingAtZero() {
	ctx := context.Background()
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 50, (*string)(nil)).
		Return(&domain.WalletSnapshot{Addresses: []string{"bc1qowned"}}, nil).Once()
	suite.watcher.On("PendingTransactions", mock.Anything).Return(suite.broadcasts()[:1], nil).Once()
	suite.priceRepo.On("LatestUsdPerSat", mock.Anything).Return(decimal.Decimal{}, apperrors.ErrNotFound).Once()

	page, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.Require().NoError(err)
	suite.Require().Len(page.Transactions, 1)
	suite.True(page.Transactions[0].Deprecated.Usd.IsZero())
	suite.True(page.Transactions[0].SettlementUsdPerSat.IsZero())
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_PriceErrorPropagates() {
	ctx := context.Background()
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 50, (*string)(nil)).
		Return(&domain.WalletSnapshot{Addresses: []string{"bc1qowned"}}, nil).Once()
	suite.watcher.On("PendingTransactions", mock.Anything).Return(suite.broadcasts(), nil).Once()
	suite.priceRepo.On("LatestUsdPerSat", mock.Anything).Return(decimal.Decimal{}, assert.AnError).Once()

	_, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *WalletHistoryServiceTestSuite) TestListWalletTransactions_RepositoryError() {
	ctx := context.Background()
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 50, (*string)(nil)).
		Return(nil, assert.AnError).Once()

	_, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.ErrorIs(err, assert.AnError)
}

func (suite *WalletHistoryServiceTestSuite) TestListPendingTransactions() {
	ctx := context.Background()
	pendingRecord := domain.LedgerRecord{
		ID:                  "rec-p",
		Type:                domain.OnchainReceipt,
		Credit:              7000,
		Address:             "bc1qowned",
		TxHash:              hash("3"),
		PendingConfirmation: true,
		Timestamp:           suite.now,
	}
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{PendingOnly: true}, 200, (*string)(nil)).
		Return(&domain.WalletSnapshot{Records: []domain.LedgerRecord{pendingRecord}, Addresses: []string{"bc1qowned"}}, nil).Once()
	suite.watcher.On("PendingTransactions", mock.Anything).Return(suite.broadcasts()[:1], nil).Once()
	suite.priceRepo.On("LatestUsdPerSat", mock.Anything).Return(suite.price, nil).Once()

	txs, err := suite.newService().ListPendingTransactions(ctx, suite.walletID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(txs, 2)
	suite.Equal(hash("2"), txs[0].ID)
	suite.Equal("rec-p", txs[1].ID)
	for _, tx := range txs {
		suite.Equal(domain.TxStatusPending, tx.Status)
	}
}

func (suite *WalletHistoryServiceTestSuite) TestGetTransactionsByHash_FiltersPendingToHash() {
	ctx := context.Background()
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{TxHash: hash("2")}, 200, (*string)(nil)).
		Return(&domain.WalletSnapshot{Addresses: []string{"bc1qowned"}}, nil).Once()
	suite.watcher.On("PendingTransactions", mock.Anything).Return(suite.broadcasts(), nil).Once()
	suite.priceRepo.On("LatestUsdPerSat", mock.Anything).Return(suite.price, nil).Once()

	txs, err := suite.newService().GetTransactionsByHash(ctx, suite.walletID, suite.userID, hash("2"))

	suite.Require().NoError(err)
	suite.Require().Len(txs, 1)
	suite.Equal(hash("2"), txs[0].ID)
}

func (suite *WalletHistoryServiceTestSuite) TestGetTransactionsByHash_InvalidHash() {
	ctx := context.Background()

	txs, err := suite.newService().GetTransactionsByHash(ctx, suite.walletID, suite.userID, "not-a-hash")

	suite.Nil(txs)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.walletRepo.AssertNotCalled(suite.T(), "FindWalletByID", mock.Anything, mock.Anything)
}

func (suite *WalletHistoryServiceTestSuite) TestNoOwnedAddressesSkipsWatcher() {
	ctx := context.Background()
	suite.expectOwner()
	suite.ledgerRepo.On("ReadWalletSnapshot", mock.Anything, suite.walletID, domain.LedgerRecordFilter{}, 50, (*string)(nil)).
		Return(&domain.WalletSnapshot{Records: suite.confirmedRecords()}, nil).Once()

	page, err := suite.newService().ListWalletTransactions(ctx, suite.walletID, suite.userID, dto.ListWalletTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(page.Transactions, 2)
	suite.watcher.AssertNotCalled(suite.T(), "PendingTransactions", mock.Anything)
}

// --- Run Test Suite ---
func TestWalletHistoryService(t *testing.T) {
	suite.Run(t, new(WalletHistoryServiceTestSuite))
}
