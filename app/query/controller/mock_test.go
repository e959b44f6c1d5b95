package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/chainlens-network/addressx/app/query/types"
	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
	"github.com/chainlens-network/addressx/pkg/policy"
)

// mockStore implements explorer.Store with overridable function fields so
// each test stubs only what it touches. Unstubbed methods return empty
// results.
type mockStore struct {
	getAddress     func(ctx context.Context, hash string, opts explorer.AddressOpts) (*models.Address, error)
	listAddresses  func(ctx context.Context, opts explorer.ListOpts) ([]*models.Address, error)
	counters       func(ctx context.Context, hash string) (*models.Counters, error)
	tabCounters    func(ctx context.Context, hash string) (*models.TabCounters, error)
	transactions   func(ctx context.Context, hash string, opts explorer.TxPageOpts) ([]*models.Transaction, error)
	tokenTransfers func(ctx context.Context, hash string, opts explorer.TransferPageOpts) ([]*models.TokenTransfer, error)
	internalTxs    func(ctx context.Context, hash string, opts explorer.InternalTxPageOpts) ([]*models.InternalTransaction, error)
	logs           func(ctx context.Context, hash string, opts explorer.LogPageOpts) ([]*models.Log, error)
	blocks         func(ctx context.Context, hash string, opts explorer.BlockPageOpts) ([]*models.Block, error)
	balanceHistory func(ctx context.Context, hash string, opts explorer.BalancePageOpts) ([]*models.CoinBalance, error)
	balancesByDay  func(ctx context.Context, hash string) ([]*models.CoinBalanceDay, error)
	tokens         func(ctx context.Context, hash string, opts explorer.TokenPageOpts) ([]*models.TokenBalance, error)
	withdrawals    func(ctx context.Context, hash string, opts explorer.WithdrawalPageOpts) ([]*models.Withdrawal, error)
	nfts           func(ctx context.Context, hash string, opts explorer.NFTPageOpts) ([]*models.NFTInstance, error)
	nftCollections func(ctx context.Context, hash string, opts explorer.NFTCollectionPageOpts) ([]*models.NFTCollection, error)
}

func (m *mockStore) InitializeDB(ctx context.Context) error { return nil }
func (m *mockStore) Ping(ctx context.Context) error         { return nil }
func (m *mockStore) Close() error                           { return nil }

func (m *mockStore) GetAddress(ctx context.Context, hash string, opts explorer.AddressOpts) (*models.Address, error) {
	if m.getAddress != nil {
		return m.getAddress(ctx, hash, opts)
	}
	return &models.Address{Hash: hash}, nil
}

func (m *mockStore) ListAddresses(ctx context.Context, opts explorer.ListOpts) ([]*models.Address, error) {
	if m.listAddresses != nil {
		return m.listAddresses(ctx, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressCounters(ctx context.Context, hash string) (*models.Counters, error) {
	if m.counters != nil {
		return m.counters(ctx, hash)
	}
	return &models.Counters{}, nil
}

func (m *mockStore) AddressTabCounters(ctx context.Context, hash string) (*models.TabCounters, error) {
	if m.tabCounters != nil {
		return m.tabCounters(ctx, hash)
	}
	return &models.TabCounters{}, nil
}

func (m *mockStore) AddressTransactions(ctx context.Context, hash string, opts explorer.TxPageOpts) ([]*models.Transaction, error) {
	if m.transactions != nil {
		return m.transactions(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressTokenTransfers(ctx context.Context, hash string, opts explorer.TransferPageOpts) ([]*models.TokenTransfer, error) {
	if m.tokenTransfers != nil {
		return m.tokenTransfers(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressInternalTransactions(ctx context.Context, hash string, opts explorer.InternalTxPageOpts) ([]*models.InternalTransaction, error) {
	if m.internalTxs != nil {
		return m.internalTxs(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressLogs(ctx context.Context, hash string, opts explorer.LogPageOpts) ([]*models.Log, error) {
	if m.logs != nil {
		return m.logs(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressBlocksValidated(ctx context.Context, hash string, opts explorer.BlockPageOpts) ([]*models.Block, error) {
	if m.blocks != nil {
		return m.blocks(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressCoinBalanceHistory(ctx context.Context, hash string, opts explorer.BalancePageOpts) ([]*models.CoinBalance, error) {
	if m.balanceHistory != nil {
		return m.balanceHistory(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressCoinBalancesByDay(ctx context.Context, hash string) ([]*models.CoinBalanceDay, error) {
	if m.balancesByDay != nil {
		return m.balancesByDay(ctx, hash)
	}
	return nil, nil
}

func (m *mockStore) AddressTokens(ctx context.Context, hash string, opts explorer.TokenPageOpts) ([]*models.TokenBalance, error) {
	if m.tokens != nil {
		return m.tokens(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressWithdrawals(ctx context.Context, hash string, opts explorer.WithdrawalPageOpts) ([]*models.Withdrawal, error) {
	if m.withdrawals != nil {
		return m.withdrawals(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressNFTs(ctx context.Context, hash string, opts explorer.NFTPageOpts) ([]*models.NFTInstance, error) {
	if m.nfts != nil {
		return m.nfts(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) AddressNFTCollections(ctx context.Context, hash string, opts explorer.NFTCollectionPageOpts) ([]*models.NFTCollection, error) {
	if m.nftCollections != nil {
		return m.nftCollections(ctx, hash, opts)
	}
	return nil, nil
}

func (m *mockStore) InsertCoinBalance(ctx context.Context, hash string, balance *models.CoinBalance) error {
	return nil
}

func (m *mockStore) InsertTokenBalances(ctx context.Context, hash string, balances []*models.TokenBalance) error {
	return nil
}

// mockPolicy denies the addresses in its set and records call order.
type mockPolicy struct {
	denied map[string]bool
	calls  []string
}

func (m *mockPolicy) Check(ctx context.Context, raw string) error {
	m.calls = append(m.calls, raw)
	if m.denied[raw] {
		return policy.ErrRestricted
	}
	return nil
}

func (m *mockPolicy) Close() error { return nil }

// mockRefresher records requested refreshes.
type mockRefresher struct {
	coinRequests  []string
	tokenRequests []string
}

func (m *mockRefresher) RequestCoinBalance(hash string)   { m.coinRequests = append(m.coinRequests, hash) }
func (m *mockRefresher) RequestTokenBalances(hash string) { m.tokenRequests = append(m.tokenRequests, hash) }
func (m *mockRefresher) StopAndWait()                     {}

func newTestRouter(t *testing.T, store explorer.Store, accessPolicy types.AccessPolicy) *mux.Router {
	t.Helper()

	app := &types.App{
		Store:     store,
		Policy:    accessPolicy,
		Refresher: &mockRefresher{},
		Logger:    zaptest.NewLogger(t),
	}

	router, err := NewController(app).NewRouter()
	require.NoError(t, err)
	return router
}

func serveGET(router http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}
