package explorer

import (
	"context"
	"fmt"

	"github.com/chainlens-network/addressx/pkg/db/clickhouse"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initAddresses creates the address identity table plus the external-name
// side table. Identity rows are replaced in place as the indexer advances
// counters; ReplacingMergeTree on updated_at keeps the latest version.
func (db *DB) initAddresses(ctx context.Context) error {
	addressesQuery := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."addresses" (
			hash String CODEC(ZSTD(1)),
			coin_balance UInt256,
			coin_balance_block UInt64 CODEC(DoubleDelta, LZ4),
			transactions_count UInt64,
			token_transfers_count UInt64,
			gas_used UInt64,
			validated_blocks_count UInt64,
			is_contract Bool,
			updated_at DateTime64(6) CODEC(DoubleDelta, LZ4)
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY hash
	`, db.Name)
	if err := db.Exec(ctx, addressesQuery); err != nil {
		return fmt.Errorf("create addresses: %w", err)
	}

	namesQuery := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."address_names" (
			address String CODEC(ZSTD(1)),
			name String,
			updated_at DateTime64(6)
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY address
	`, db.Name)
	if err := db.Exec(ctx, namesQuery); err != nil {
		return fmt.Errorf("create address_names: %w", err)
	}

	return nil
}

// GetAddress returns the latest identity row for the given hash, honoring
// the inclusion policy in opts. Returns ErrNotFound when the address has
// never been seen on chain.
func (db *DB) GetAddress(ctx context.Context, hash string, opts AddressOpts) (*models.Address, error) {
	var a models.Address
	query := fmt.Sprintf(`
		SELECT hash, coin_balance, coin_balance_block, transactions_count,
		       token_transfers_count, gas_used, validated_blocks_count,
		       is_contract, updated_at
		FROM "%s"."addresses" FINAL
		WHERE hash = ?
		LIMIT 1
	`, db.Name)
	err := db.QueryRow(ctx, query, hash).Scan(
		&a.Hash,
		&a.CoinBalance,
		&a.CoinBalanceBlock,
		&a.TransactionsCount,
		&a.TokenTransfersCount,
		&a.GasUsed,
		&a.ValidatedBlocksCount,
		&a.IsContract,
		&a.UpdatedAt,
	)
	if err != nil {
		if clickhouse.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get address failed: %w", err)
	}

	if opts.WithName {
		nameQuery := fmt.Sprintf(`
			SELECT name FROM "%s"."address_names" FINAL
			WHERE address = ?
			LIMIT 1
		`, db.Name)
		var name string
		if err := db.QueryRow(ctx, nameQuery, hash).Scan(&name); err == nil {
			a.Name = &name
		} else if !clickhouse.IsNoRows(err) {
			return nil, fmt.Errorf("get address name failed: %w", err)
		}
	}

	return &a, nil
}

// ListAddresses returns the global address listing ranked by coin balance
// descending, hash ascending as the tiebreak.
func (db *DB) ListAddresses(ctx context.Context, opts ListOpts) ([]*models.Address, error) {
	conds := make([]string, 0, 1)
	args := make([]any, 0, 4)
	if opts.BeforeBalance != nil && opts.AfterHash != "" {
		conds = append(conds, "(coin_balance < ? OR (coin_balance = ? AND hash > ?))")
		args = append(args, opts.BeforeBalance, opts.BeforeBalance, opts.AfterHash)
	}

	query := fmt.Sprintf(`
		SELECT hash, coin_balance, coin_balance_block, transactions_count,
		       token_transfers_count, gas_used, validated_blocks_count,
		       is_contract, updated_at
		FROM "%s"."addresses" FINAL
	`, db.Name)
	if len(conds) > 0 {
		query += " WHERE " + conds[0]
	}
	query += " ORDER BY coin_balance DESC, hash ASC LIMIT ?"
	args = append(args, opts.Limit)

	rows := make([]*models.Address, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list addresses failed: %w", err)
	}
	return rows, nil
}

// AddressCounters returns the four headline counters for /counters. They
// live on the identity row, so this is a point read, not an aggregate.
func (db *DB) AddressCounters(ctx context.Context, hash string) (*models.Counters, error) {
	var c models.Counters
	query := fmt.Sprintf(`
		SELECT transactions_count, token_transfers_count, gas_used, validated_blocks_count
		FROM "%s"."addresses" FINAL
		WHERE hash = ?
		LIMIT 1
	`, db.Name)
	err := db.QueryRow(ctx, query, hash).Scan(
		&c.TransactionsCount,
		&c.TokenTransfersCount,
		&c.GasUsageCount,
		&c.ValidationsCount,
	)
	if err != nil {
		if clickhouse.IsNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("address counters failed: %w", err)
	}
	return &c, nil
}
