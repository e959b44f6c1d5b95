package explorer

import (
	"context"
	"fmt"
	"strings"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initWithdrawals creates the validator withdrawal table.
func (db *DB) initWithdrawals(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."withdrawals" (
			address String CODEC(ZSTD(1)),
			withdrawal_index UInt64 CODEC(DoubleDelta, LZ4),
			validator_index UInt64,
			block_number UInt64 CODEC(DoubleDelta, LZ4),
			amount UInt64,
			time DateTime64(6) CODEC(DoubleDelta, LZ4)
		) ENGINE = ReplacingMergeTree(block_number)
		ORDER BY (address, withdrawal_index)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create withdrawals: %w", err)
	}
	return nil
}

// AddressWithdrawals retrieves withdrawals credited to an address, newest
// first by the global withdrawal index.
func (db *DB) AddressWithdrawals(ctx context.Context, hash string, opts WithdrawalPageOpts) ([]*models.Withdrawal, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if opts.BeforeIndex != nil {
		conds = append(conds, "withdrawal_index < ?")
		args = append(args, *opts.BeforeIndex)
	}

	query := fmt.Sprintf(`
		SELECT withdrawal_index, validator_index, block_number, amount, time
		FROM "%s"."withdrawals"
		WHERE %s
		ORDER BY withdrawal_index DESC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.Withdrawal, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address withdrawals failed: %w", err)
	}
	return rows, nil
}
