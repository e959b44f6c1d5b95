package explorer

import (
	"context"
	"fmt"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// cappedCount counts matching rows up to models.TabCounterCap. The inner
// LIMIT stops the scan early; exact totals are pointless for a UI badge.
func (db *DB) cappedCount(ctx context.Context, table, cond string, args ...any) (uint64, error) {
	query := fmt.Sprintf(`
		SELECT count() FROM (
			SELECT 1 FROM "%s"."%s" WHERE %s LIMIT %d
		)
	`, db.Name, table, cond, models.TabCounterCap)

	var count uint64
	if err := db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("capped count on %s failed: %w", table, err)
	}
	return count, nil
}

// AddressTabCounters runs the seven capped badge counts for an address.
// Never paginated; one bounded scan per resource kind.
func (db *DB) AddressTabCounters(ctx context.Context, hash string) (*models.TabCounters, error) {
	counters := &models.TabCounters{}

	counts := []struct {
		dest  *uint64
		table string
		cond  string
	}{
		{&counters.TransactionsCount, "transactions", "address = ?"},
		{&counters.TokenTransfersCount, "token_transfers", "address = ?"},
		{&counters.TokenBalancesCount, "token_balances", "address = ?"},
		{&counters.LogsCount, "logs", "address = ?"},
		{&counters.InternalTransactionsCount, "internal_transactions", "address = ?"},
		{&counters.ValidationsCount, "blocks", "miner = ?"},
		{&counters.WithdrawalsCount, "withdrawals", "address = ?"},
	}
	for _, c := range counts {
		n, err := db.cappedCount(ctx, c.table, c.cond, hash)
		if err != nil {
			return nil, err
		}
		*c.dest = n
	}

	return counters, nil
}
