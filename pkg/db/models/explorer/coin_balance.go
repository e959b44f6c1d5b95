package explorer

import (
	"math/big"
	"time"
)

// CoinBalance is one balance-changing point in an address's history.
// Ordered by block_number descending; Delta is the signed change applied
// at that block.
type CoinBalance struct {
	BlockNumber uint64    `ch:"block_number" json:"block_number"`
	Value       *big.Int  `ch:"value" json:"value"`
	Delta       *big.Int  `ch:"delta" json:"delta"`
	Time        time.Time `ch:"time" json:"timestamp"`
}

// CoinBalanceDay is one point of the daily-aggregated balance series. The
// series is small by construction (one row per day) and is returned whole,
// never paginated.
type CoinBalanceDay struct {
	Day   time.Time `ch:"day" json:"date"`
	Value *big.Int  `ch:"value" json:"value"`
}
