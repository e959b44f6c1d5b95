package explorer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// initTokenBalances creates the holdings table. id is a surrogate assigned
// at index time; the fiat-ranked listing pages on (fiat_value, id).
func (db *DB) initTokenBalances(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS "%s"."token_balances" (
			address String CODEC(ZSTD(1)),
			id UInt64,
			token_contract String CODEC(ZSTD(1)),
			token_name Nullable(String),
			token_symbol Nullable(String),
			standard LowCardinality(String),
			balance UInt256,
			decimals Nullable(UInt8),
			fiat_value Nullable(Float64),
			updated_at DateTime64(6)
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY (address, token_contract)
	`, db.Name)
	if err := db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create token_balances: %w", err)
	}
	return nil
}

// AddressTokens retrieves an address's token holdings ranked by fiat value
// descending with unpriced tokens last, then surrogate id ascending.
func (db *DB) AddressTokens(ctx context.Context, hash string, opts TokenPageOpts) ([]*models.TokenBalance, error) {
	conds := []string{"address = ?"}
	args := []any{hash}

	if len(opts.Standards) > 0 {
		conds = append(conds, "standard IN ?")
		args = append(args, opts.Standards)
	}
	if opts.AfterID != nil {
		if opts.CursorNullFiat {
			// Already in the unpriced tail: advance on id alone.
			conds = append(conds, "(fiat_value IS NULL AND id > ?)")
			args = append(args, *opts.AfterID)
		} else if opts.BeforeFiat != nil {
			conds = append(conds, "(fiat_value < ? OR (fiat_value = ? AND id > ?) OR fiat_value IS NULL)")
			args = append(args, *opts.BeforeFiat, *opts.BeforeFiat, *opts.AfterID)
		}
	}

	query := fmt.Sprintf(`
		SELECT id, token_contract, token_name, token_symbol, standard, balance, decimals, fiat_value
		FROM "%s"."token_balances" FINAL
		WHERE %s
		ORDER BY fiat_value DESC NULLS LAST, id ASC
		LIMIT ?
	`, db.Name, strings.Join(conds, " AND "))
	args = append(args, opts.Limit)

	rows := make([]*models.TokenBalance, 0, opts.Limit)
	if err := db.Select(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("query address tokens failed: %w", err)
	}
	return rows, nil
}

// InsertTokenBalances replaces refreshed holdings rows for an address.
// Only the background refresher writes through this path.
func (db *DB) InsertTokenBalances(ctx context.Context, hash string, balances []*models.TokenBalance) error {
	if len(balances) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO "%s"."token_balances" (
		address, id, token_contract, token_name, token_symbol, standard,
		balance, decimals, fiat_value, updated_at
	) VALUES`, db.Name)
	batch, err := db.PrepareBatch(ctx, query)
	if err != nil {
		return err
	}
	defer func(batch driver.Batch) {
		_ = batch.Abort()
	}(batch)

	now := time.Now().UTC()
	for _, b := range balances {
		err = batch.Append(
			hash,
			b.ID,
			b.TokenContract,
			b.TokenName,
			b.TokenSymbol,
			b.Standard,
			b.Balance,
			b.Decimals,
			b.FiatValue,
			now,
		)
		if err != nil {
			return err
		}
	}
	return batch.Send()
}
