package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initInternalTransactions creates the address-scoped internal call table.
func (db *DB) initInternalTransactions(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."internal_transactions" (
			address String CODEC(ZSTD(1)),
			block_number UInt64 CODEC(DoubleDelta, LZ4),
			transaction_index UInt32,
			call_index UInt32,
			transaction_hash String CODEC(ZSTD(1)),
			time DateTime64(6) CODEC(DoubleDelta, LZ4),
			from_address String CODEC(ZSTD(1)),
			to_address Nullable(String) CODEC(ZSTD(1)),
			value UInt256,
			call_type LowCardinality(String),
			error Nullable(String)
		) ENGINE = ReplacingMergeTree(block_number)
		ORDER BY (address, block_number, transaction_index, call_index)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create internal_transactions: %w", err)
	}
	return nil
}

// AddressInternalTransactions retrieves a paginated internal call list for
// one address, newest first.
func (db *DB) AddressInternalTransactions(ctx context.Context, hash string, opts InternalTxPageOpts) ([]*models.InternalTransaction, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	switch opts.Direction {
	case DirectionFrom:
		conds = append(conds, "from_address = ?")
		args = append(args, hash)
	case DirectionTo:
		conds = append(conds, "to_address = ?")
		args = append(args, hash)
	}
	if opts.BeforeBlock != nil && opts.BeforeTxIndex != nil && opts.BeforeIndex != nil {
		conds = append(conds, "(block_number, transaction_index, call_index) < (?, ?, ?)")
		args = append(args, *opts.BeforeBlock, *opts.BeforeTxIndex, *opts.BeforeIndex)
	}

	query := fmt.Sprintf(`
		SELECT block_number, transaction_index, call_index, transaction_hash, time,
		       from_address, to_address, value, call_type, error
		FROM "%s"."internal_transactions"
		WHERE %s
		ORDER BY block_number DESC, transaction_index DESC, call_index DESC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.InternalTransaction, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address internal transactions failed: %w", err)
	}
	return rows, nil
}
