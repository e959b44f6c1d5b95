package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initLogs creates the per-contract event log table.
func (db *DB) initLogs(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."logs" (
			address String CODEC(ZSTD(1)),
			block_number UInt64 CODEC(DoubleDelta, LZ4),
			log_index UInt32,
			transaction_hash String CODEC(ZSTD(1)),
			time DateTime64(6) CODEC(DoubleDelta, LZ4),
			topics Array(String) CODEC(ZSTD(1)),
			data String CODEC(ZSTD(3))
		) ENGINE = ReplacingMergeTree(block_number)
		ORDER BY (address, block_number, log_index)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create logs: %w", err)
	}
	return nil
}

// AddressLogs retrieves a paginated log list for a contract address,
// newest first. Topic in opts must already be hex-normalized by the
// composer; it matches any topic position.
func (db *DB) AddressLogs(ctx context.Context, hash string, opts LogPageOpts) ([]*models.Log, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if opts.Topic != "" {
		conds = append(conds, "has(topics, ?)")
		args = append(args, opts.Topic)
	}
	if opts.BeforeBlock != nil && opts.BeforeIndex != nil {
		conds = append(conds, "(block_number, log_index) < (?, ?)")
		args = append(args, *opts.BeforeBlock, *opts.BeforeIndex)
	}

	query := fmt.Sprintf(`
		SELECT block_number, log_index, transaction_hash, time, address, topics, data
		FROM "%s"."logs"
		WHERE %s
		ORDER BY block_number DESC, log_index DESC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.Log, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address logs failed: %w", err)
	}
	return rows, nil
}
