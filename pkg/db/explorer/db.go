package explorer

import (
	"context"
	"fmt"

	"github.com/chainlens-network/addressx/pkg/db/clickhouse"
	"github.com/chainlens-network/addressx/pkg/utils"
	"go.uber.org/zap"
)

// DB is the ClickHouse-backed Store implementation. It embeds the shared
// client and carries the database name used to qualify every table.
type DB struct {
	clickhouse.Client
	Name string
}

// New connects to the explorer database and ensures the schema exists.
func New(ctx context.Context, logger *zap.Logger) (*DB, error) {
	dbName := utils.Env("EXPLORER_DB", "explorer")

	client, err := clickhouse.New(ctx, logger.With(zap.String("db", dbName)), dbName)
	if err != nil {
		return nil, err
	}

	db := &DB{Client: client, Name: dbName}
	if err := db.InitializeDB(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// InitializeDB ensures all explorer tables exist. The indexer shares this
// schema; running init here as well keeps a fresh deployment queryable
// before the indexer has ever connected.
func (db *DB) InitializeDB(ctx context.Context) error {
	inits := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"addresses", db.initAddresses},
		{"transactions", db.initTransactions},
		{"internal_transactions", db.initInternalTransactions},
		{"token_transfers", db.initTokenTransfers},
		{"logs", db.initLogs},
		{"blocks", db.initBlocks},
		{"coin_balances", db.initCoinBalances},
		{"token_balances", db.initTokenBalances},
		{"nft_instances", db.initNFTInstances},
		{"withdrawals", db.initWithdrawals},
	}
	for _, init := range inits {
		db.Logger.Debug("Initialize model", zap.String("table", init.name))
		if err := init.fn(ctx); err != nil {
			return fmt.Errorf("init %s: %w", init.name, err)
		}
	}
	return nil
}

// Ping verifies the connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	return db.Db.Ping(ctx)
}

// Close terminates the underlying ClickHouse connection.
func (db *DB) Close() error {
	return db.Db.Close()
}
