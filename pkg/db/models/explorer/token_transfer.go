package explorer

import (
	"math/big"
	"time"
)

// Token standards recognized by the transfer and holdings pipelines.
// ERC-1155 is the batching standard: one on-chain log may carry many
// (token id, amount) entries.
const (
	StandardERC20   = "ERC-20"
	StandardERC721  = "ERC-721"
	StandardERC1155 = "ERC-1155"
)

// BatchEntry is one (token id, amount) pair inside an ERC-1155 batch event.
type BatchEntry struct {
	TokenID *big.Int `ch:"token_id" json:"token_id"`
	Amount  *big.Int `ch:"amount" json:"amount"`
}

// TokenTransfer is one transfer event scoped to an address. For simple
// transfers TokenID/Amount describe the single movement and Batch is empty.
// For ERC-1155 batch events Batch holds the ordered sub-entries and
// TokenID/Amount are nil until expansion; every expanded row inherits
// (block_number, log_index) from the parent event.
type TokenTransfer struct {
	BlockNumber      uint64       `ch:"block_number" json:"block_number"`
	LogIndex         uint32       `ch:"log_index" json:"index"`
	TransactionHash  string       `ch:"transaction_hash" json:"transaction_hash"`
	Time             time.Time    `ch:"time" json:"timestamp"`
	From             string       `ch:"from_address" json:"from"`
	To               string       `ch:"to_address" json:"to"`
	TokenContract    string       `ch:"token_contract" json:"token_contract"`
	TokenName        *string      `ch:"token_name" json:"token_name,omitempty"`
	TokenSymbol      *string      `ch:"token_symbol" json:"token_symbol,omitempty"`
	Standard         string       `ch:"standard" json:"token_type"`
	TokenID          *big.Int     `ch:"token_id" json:"token_id,omitempty"`
	Amount           *big.Int     `ch:"amount" json:"amount,omitempty"`
	Batch            []BatchEntry `ch:"-" json:"-"`
	BatchTokenIDs    []*big.Int   `ch:"batch_token_ids" json:"-"`
	BatchAmounts     []*big.Int   `ch:"batch_amounts" json:"-"`
}

// BuildBatch folds the parallel batch columns read from storage into the
// Batch slice. No-op for simple transfers.
func (t *TokenTransfer) BuildBatch() {
	if len(t.BatchTokenIDs) == 0 {
		return
	}
	t.Batch = make([]BatchEntry, 0, len(t.BatchTokenIDs))
	for i, id := range t.BatchTokenIDs {
		var amt *big.Int
		if i < len(t.BatchAmounts) {
			amt = t.BatchAmounts[i]
		}
		t.Batch = append(t.Batch, BatchEntry{TokenID: id, Amount: amt})
	}
	t.BatchTokenIDs = nil
	t.BatchAmounts = nil
}
