package explorer

import (
	"math/big"
	"time"
)

// Address is the canonical explorer view of an account: identity plus the
// activity counters kept up to date by the indexer. One row per address,
// replaced in place as counters move (ReplacingMergeTree on updated_at).
type Address struct {
	Hash                 string    `ch:"hash" json:"hash"`
	CoinBalance          *big.Int  `ch:"coin_balance" json:"coin_balance"`
	CoinBalanceBlock     uint64    `ch:"coin_balance_block" json:"coin_balance_block"`
	TransactionsCount    uint64    `ch:"transactions_count" json:"transactions_count"`
	TokenTransfersCount  uint64    `ch:"token_transfers_count" json:"token_transfers_count"`
	GasUsed              uint64    `ch:"gas_used" json:"gas_used"`
	ValidatedBlocksCount uint64    `ch:"validated_blocks_count" json:"validated_blocks_count"`
	IsContract           bool      `ch:"is_contract" json:"is_contract"`
	Name                 *string   `ch:"name" json:"name,omitempty"`
	UpdatedAt            time.Time `ch:"updated_at" json:"-"`
}

// Counters is the /counters payload: the four headline counts, stringified
// by the controller so JS clients never truncate them.
type Counters struct {
	TransactionsCount   uint64 `ch:"transactions_count"`
	TokenTransfersCount uint64 `ch:"token_transfers_count"`
	GasUsageCount       uint64 `ch:"gas_usage_count"`
	ValidationsCount    uint64 `ch:"validations_count"`
}

// TabCounters drives the UI badge row. Every count is capped at
// TabCounterCap by the store query; values at the cap render as "N+".
type TabCounters struct {
	TransactionsCount         uint64 `json:"transactions_count"`
	TokenTransfersCount       uint64 `json:"token_transfers_count"`
	TokenBalancesCount        uint64 `json:"token_balances_count"`
	LogsCount                 uint64 `json:"logs_count"`
	InternalTransactionsCount uint64 `json:"internal_transactions_count"`
	ValidationsCount          uint64 `json:"validations_count"`
	WithdrawalsCount          uint64 `json:"withdrawals_count"`
}

// TabCounterCap bounds every tab counter query. Counting past this point
// buys nothing for a badge and gets expensive on busy addresses.
const TabCounterCap = 51
