package explorer

import (
	"math/big"
	"time"
)

// Transaction is one confirmed transaction as stored by the indexer.
// (block_number, index) is the natural ordering key for address pagination.
type Transaction struct {
	BlockNumber uint64    `ch:"block_number" json:"block_number"`
	Index       uint32    `ch:"tx_index" json:"index"`
	Hash        string    `ch:"hash" json:"hash"`
	Time        time.Time `ch:"time" json:"timestamp"`
	From        string    `ch:"from_address" json:"from"`
	To          *string   `ch:"to_address" json:"to"`
	Value       *big.Int  `ch:"value" json:"value"`
	Fee         *big.Int  `ch:"fee" json:"fee"`
	GasUsed     uint64    `ch:"gas_used" json:"gas_used"`
	Status      string    `ch:"status" json:"status"`
	Method      *string   `ch:"method" json:"method,omitempty"`
}

// InternalTransaction is a message-level call produced while executing a
// transaction. Ordered by (block_number, transaction_index, index).
type InternalTransaction struct {
	BlockNumber      uint64    `ch:"block_number" json:"block_number"`
	TransactionIndex uint32    `ch:"transaction_index" json:"transaction_index"`
	Index            uint32    `ch:"call_index" json:"index"`
	TransactionHash  string    `ch:"transaction_hash" json:"transaction_hash"`
	Time             time.Time `ch:"time" json:"timestamp"`
	From             string    `ch:"from_address" json:"from"`
	To               *string   `ch:"to_address" json:"to"`
	Value            *big.Int  `ch:"value" json:"value"`
	CallType         string    `ch:"call_type" json:"call_type"`
	Error            *string   `ch:"error" json:"error,omitempty"`
}
