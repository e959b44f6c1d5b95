package explorer

import (
	"context"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initCoinBalances creates the balance-change history table. The on-demand
// refresher appends the freshest point here as well, so ReplacingMergeTree
// dedupes a refresh landing on an already-indexed block.
func (db *DB) initCoinBalances(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."coin_balances" (
			address String CODEC(ZSTD(1)),
			block_number UInt64 CODEC(DoubleDelta, LZ4),
			value UInt256,
			delta Nullable(Int256),
			time DateTime64(6) CODEC(DoubleDelta, LZ4)
		) ENGINE = ReplacingMergeTree(block_number)
		ORDER BY (address, block_number)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create coin_balances: %w", err)
	}
	return nil
}

// AddressCoinBalanceHistory retrieves the raw balance-change points for an
// address, newest first.
func (db *DB) AddressCoinBalanceHistory(ctx context.Context, hash string, opts BalancePageOpts) ([]*models.CoinBalance, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if opts.BeforeBlock != nil {
		conds = append(conds, "block_number < ?")
		args = append(args, *opts.BeforeBlock)
	}

	query := fmt.Sprintf(`
		SELECT block_number, value, delta, time
		FROM "%s"."coin_balances"
		WHERE %s
		ORDER BY block_number DESC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.CoinBalance, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query coin balance history failed: %w", err)
	}
	return rows, nil
}

// AddressCoinBalancesByDay aggregates the history into one closing value
// per day. The series is bounded by address age so it is returned whole.
func (db *DB) AddressCoinBalancesByDay(ctx context.Context, hash string) ([]*models.CoinBalanceDay, error) {
	query := fmt.Sprintf(`
		SELECT toStartOfDay(time) AS day, argMax(value, block_number) AS value
		FROM "%s"."coin_balances"
		WHERE address = ?
		GROUP BY day
		ORDER BY day ASC
	`, db.Name)

	rows := make([]*models.CoinBalanceDay, 0, 64)
	if err := db.Select(ctx, &rows, query, hash); err != nil {
		return nil, fmt.Errorf("query coin balances by day failed: %w", err)
	}
	return rows, nil
}

// InsertCoinBalance appends one refreshed balance point for an address.
// Only the background refresher writes through this path.
func (db *DB) InsertCoinBalance(ctx context.Context, hash string, balance *models.CoinBalance) error {
	query := fmt.Sprintf(
		`INSERT INTO "%s"."coin_balances" (address, block_number, value, delta, time) VALUES`,
		db.Name,
	)
	batch, err := db.PrepareBatch(ctx, query)
	if err != nil {
		return err
	}
	defer func(batch driver.Batch) {
		_ = batch.Abort()
	}(batch)

	if err := batch.Append(hash, balance.BlockNumber, balance.Value, balance.Delta, balance.Time); err != nil {
		return err
	}
	return batch.Send()
}
