package explorer

import (
	"context"
	"errors"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// ErrNotFound is returned by point lookups when no row exists for the key.
var ErrNotFound = errors.New("not found")

// Store is the read (and on-demand refresh write) contract the query service
// consumes. Every paginated method expects opts.Limit to already include the
// +1 over-fetch used for next-page detection; slicing happens in the caller.
type Store interface {
	InitializeDB(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error

	// --- Address identity

	GetAddress(ctx context.Context, hash string, opts AddressOpts) (*models.Address, error)
	ListAddresses(ctx context.Context, opts ListOpts) ([]*models.Address, error)
	AddressCounters(ctx context.Context, hash string) (*models.Counters, error)
	AddressTabCounters(ctx context.Context, hash string) (*models.TabCounters, error)

	// --- Paginated sub-resources

	AddressTransactions(ctx context.Context, hash string, opts TxPageOpts) ([]*models.Transaction, error)
	AddressTokenTransfers(ctx context.Context, hash string, opts TransferPageOpts) ([]*models.TokenTransfer, error)
	AddressInternalTransactions(ctx context.Context, hash string, opts InternalTxPageOpts) ([]*models.InternalTransaction, error)
	AddressLogs(ctx context.Context, hash string, opts LogPageOpts) ([]*models.Log, error)
	AddressBlocksValidated(ctx context.Context, hash string, opts BlockPageOpts) ([]*models.Block, error)
	AddressCoinBalanceHistory(ctx context.Context, hash string, opts BalancePageOpts) ([]*models.CoinBalance, error)
	AddressCoinBalancesByDay(ctx context.Context, hash string) ([]*models.CoinBalanceDay, error)
	AddressTokens(ctx context.Context, hash string, opts TokenPageOpts) ([]*models.TokenBalance, error)
	AddressWithdrawals(ctx context.Context, hash string, opts WithdrawalPageOpts) ([]*models.Withdrawal, error)
	AddressNFTs(ctx context.Context, hash string, opts NFTPageOpts) ([]*models.NFTInstance, error)
	AddressNFTCollections(ctx context.Context, hash string, opts NFTCollectionPageOpts) ([]*models.NFTCollection, error)

	// --- On-demand refresh write paths (background refresher only)

	InsertCoinBalance(ctx context.Context, hash string, balance *models.CoinBalance) error
	InsertTokenBalances(ctx context.Context, hash string, balances []*models.TokenBalance) error
}
