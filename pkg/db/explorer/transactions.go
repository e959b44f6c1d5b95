package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initTransactions creates the address-scoped transaction table. Rows are
// written once per (address, transaction) pair so both sides of a transfer
// can page through their own history on the primary key.
func (db *DB) initTransactions(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."transactions" (
			address String CODEC(ZSTD(1)),
			block_number UInt64 CODEC(DoubleDelta, LZ4),
			tx_index UInt32,
			hash String CODEC(ZSTD(1)),
			time DateTime64(6) CODEC(DoubleDelta, LZ4),
			from_address String CODEC(ZSTD(1)),
			to_address Nullable(String) CODEC(ZSTD(1)),
			value UInt256,
			fee UInt256,
			gas_used UInt64,
			status LowCardinality(String),
			method Nullable(String)
		) ENGINE = ReplacingMergeTree(block_number)
		ORDER BY (address, block_number, tx_index)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create transactions: %w", err)
	}
	return nil
}

// AddressTransactions retrieves a paginated transaction list for one
// address. The limit in opts already includes the +1 over-fetch.
func (db *DB) AddressTransactions(ctx context.Context, hash string, opts TxPageOpts) ([]*models.Transaction, error) {
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

	order := "DESC"
	cmp := "<"
	if opts.Sort == SortOrderAsc {
		order = "ASC"
		cmp = ">"
	}
	if opts.BeforeBlock != nil && opts.BeforeIndex != nil {
		conds = append(conds, fmt.Sprintf("(block_number, tx_index) %s (?, ?)", cmp))
		args = append(args, *opts.BeforeBlock, *opts.BeforeIndex)
	}

	methodCol := "NULL AS method"
	if opts.WithMethod {
		methodCol = "method"
	}

	query := fmt.Sprintf(`
		SELECT block_number, tx_index, hash, time, from_address, to_address,
		       value, fee, gas_used, status, %s
		FROM "%s"."transactions"
		WHERE %s
		ORDER BY block_number %s, tx_index %s
		LIMIT ?
	`, methodCol, db.Name, strings.Join(conds, " AND "), order, order)
	args = append(args, opts.Limit)

	rows := make([]*models.Transaction, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address transactions failed: %w", err)
	}
	return rows, nil
}
