package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initBlocks creates the block table, keyed by miner for the
// blocks-validated listing.
func (db *DB) initBlocks(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."blocks" (
			number UInt64 CODEC(DoubleDelta, LZ4),
			hash String CODEC(ZSTD(1)),
			time DateTime64(6) CODEC(DoubleDelta, LZ4),
			miner String CODEC(ZSTD(1)),
			tx_count UInt32,
			gas_used UInt64,
			gas_limit UInt64
		) ENGINE = ReplacingMergeTree(number)
		ORDER BY (miner, number)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create blocks: %w", err)
	}
	return nil
}

// AddressBlocksValidated retrieves the blocks produced by an address,
// newest first.
func (db *DB) AddressBlocksValidated(ctx context.Context, hash string, opts BlockPageOpts) ([]*models.Block, error) {
	conds := []string{"miner = ?"}
	args := []any{hash}

	if opts.BeforeNumber != nil {
		conds = append(conds, "number < ?")
		args = append(args, *opts.BeforeNumber)
	}

	query := fmt.Sprintf(`
		SELECT number, hash, time, miner, tx_count, gas_used, gas_limit
		FROM "%s"."blocks"
		WHERE %s
		ORDER BY number DESC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.Block, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query blocks validated failed: %w", err)
	}
	return rows, nil
}
