package explorer

import "time"

// Log is one event log emitted by a contract. Ordered by
// (block_number, index) where index is the log's position in the block.
type Log struct {
	BlockNumber     uint64    `ch:"block_number" json:"block_number"`
	Index           uint32    `ch:"log_index" json:"index"`
	TransactionHash string    `ch:"transaction_hash" json:"transaction_hash"`
	Time            time.Time `ch:"time" json:"timestamp"`
	Address         string    `ch:"address" json:"address"`
	Topics          []string  `ch:"topics" json:"topics"`
	Data            string    `ch:"data" json:"data"`
}

// Block is a block produced (validated) by an address.
type Block struct {
	Number   uint64    `ch:"number" json:"number"`
	Hash     string    `ch:"hash" json:"hash"`
	Time     time.Time `ch:"time" json:"timestamp"`
	Miner    string    `ch:"miner" json:"miner"`
	TxCount  uint32    `ch:"tx_count" json:"transaction_count"`
	GasUsed  uint64    `ch:"gas_used" json:"gas_used"`
	GasLimit uint64    `ch:"gas_limit" json:"gas_limit"`
}

// Withdrawal is a validator withdrawal credited to an address, ordered by
// its globally unique index.
type Withdrawal struct {
	Index          uint64    `ch:"withdrawal_index" json:"index"`
	ValidatorIndex uint64    `ch:"validator_index" json:"validator_index"`
	BlockNumber    uint64    `ch:"block_number" json:"block_number"`
	Amount         uint64    `ch:"amount" json:"amount"`
	Time           time.Time `ch:"time" json:"timestamp"`
}
