package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initTokenTransfers creates the address-scoped transfer event table.
// ERC-1155 batch events keep their sub-entries in the parallel batch
// arrays; simple transfers leave them empty and fill token_id/amount.
func (db *DB) initTokenTransfers(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."token_transfers" (
			address String CODEC(ZSTD(1)),
			block_number UInt64 CODEC(DoubleDelta, LZ4),
			log_index UInt32,
			transaction_hash String CODEC(ZSTD(1)),
			time DateTime64(6) CODEC(DoubleDelta, LZ4),
			from_address String CODEC(ZSTD(1)),
			to_address String CODEC(ZSTD(1)),
			token_contract String CODEC(ZSTD(1)),
			token_name Nullable(String),
			token_symbol Nullable(String),
			standard LowCardinality(String),
			token_id Nullable(UInt256),
			amount Nullable(UInt256),
			batch_token_ids Array(UInt256),
			batch_amounts Array(UInt256)
		) ENGINE = ReplacingMergeTree(block_number)
		ORDER BY (address, block_number, log_index)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create token_transfers: %w", err)
	}
	return nil
}

// AddressTokenTransfers retrieves parent transfer events for one address,
// newest first. Continuation is inclusive on the parent log index: a batch
// event whose sub-entries straddled the previous page boundary is returned
// again in full so the expander can re-flatten it.
func (db *DB) AddressTokenTransfers(ctx context.Context, hash string, opts TransferPageOpts) ([]*models.TokenTransfer, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if opts.Token != "" {
		conds = append(conds, "token_contract = ?")
		args = append(args, opts.Token)
	}
	if len(opts.Standards) > 0 {
		conds = append(conds, "standard IN ?")
		args = append(args, opts.Standards)
	}
	switch opts.Direction {
	case DirectionFrom:
		conds = append(conds, "from_address = ?")
		args = append(args, hash)
	case DirectionTo:
		conds = append(conds, "to_address = ?")
		args = append(args, hash)
	}
	if opts.BeforeBlock != nil && opts.BeforeLogIndex != nil {
		conds = append(conds, "(block_number < ? OR (block_number = ? AND log_index <= ?))")
		args = append(args, *opts.BeforeBlock, *opts.BeforeBlock, *opts.BeforeLogIndex)
	}

	query := fmt.Sprintf(`
		SELECT block_number, log_index, transaction_hash, time, from_address, to_address,
		       token_contract, token_name, token_symbol, standard, token_id, amount,
		       batch_token_ids, batch_amounts
		FROM "%s"."token_transfers"
		WHERE %s
		ORDER BY block_number DESC, log_index DESC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.TokenTransfer, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address token transfers failed: %w", err)
	}
	for _, row := range rows {
		row.BuildBatch()
	}
	return rows, nil
}
