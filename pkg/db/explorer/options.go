package explorer

import "math/big"

// SortOrder represents the sort direction for paginated queries.
type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// Direction filters address-scoped records by which side of the transfer
// the address sits on. Empty means both sides.
type Direction string

const (
	DirectionAny  Direction = ""
	DirectionFrom Direction = "from"
	DirectionTo   Direction = "to"
)

// AddressOpts is the inclusion policy for a single-address lookup: which
// related entities get eager-loaded alongside the identity row.
type AddressOpts struct {
	// WithName resolves the external display name (ENS-style tags kept in
	// address_names). Internal callers skip it.
	WithName bool
}

// TxPageOpts drives the address transactions query. The cursor is the
// composite (block_number, index) of the last row of the previous page.
type TxPageOpts struct {
	Limit       int
	BeforeBlock *uint64
	BeforeIndex *uint32
	Direction   Direction
	Sort        SortOrder
	// WithMethod decodes the called method name from the contract ABI
	// tables. Skipped for internal callers.
	WithMethod bool
}

// TransferPageOpts drives the token transfers query. Continuation is keyed
// at the parent event: the predicate is inclusive on the log index so a
// batch event split across a page boundary is re-fetched whole.
type TransferPageOpts struct {
	Limit          int
	BeforeBlock    *uint64
	BeforeLogIndex *uint32
	Token          string
	Standards      []string
	Direction      Direction
}

// InternalTxPageOpts drives the internal transactions query, keyed by
// (block_number, transaction_index, index).
type InternalTxPageOpts struct {
	Limit            int
	BeforeBlock      *uint64
	BeforeTxIndex    *uint32
	BeforeIndex      *uint32
	Direction        Direction
}

// LogPageOpts drives the logs query. Topic is already hex-normalized.
type LogPageOpts struct {
	Limit       int
	BeforeBlock *uint64
	BeforeIndex *uint32
	Topic       string
}

// BlockPageOpts drives the blocks-validated query.
type BlockPageOpts struct {
	Limit        int
	BeforeNumber *uint64
}

// BalancePageOpts drives the raw coin-balance-history query.
type BalancePageOpts struct {
	Limit       int
	BeforeBlock *uint64
}

// TokenPageOpts drives the token holdings query. Ordering is fiat value
// descending with unpriced tokens last, then surrogate id ascending.
// CursorNullFiat marks a cursor that already sits in the unpriced tail.
type TokenPageOpts struct {
	Limit          int
	BeforeFiat     *float64
	AfterID        *uint64
	CursorNullFiat bool
	Standards      []string
}

// WithdrawalPageOpts drives the withdrawals query, keyed by the global
// withdrawal index.
type WithdrawalPageOpts struct {
	Limit       int
	BeforeIndex *uint64
}

// NFTPageOpts drives the NFT instance listing, ascending by
// (token_contract, token_id).
type NFTPageOpts struct {
	Limit         int
	AfterContract string
	AfterTokenID  *big.Int
	Standards     []string
}

// NFTCollectionPageOpts drives the per-contract collection listing,
// ascending by token_contract.
type NFTCollectionPageOpts struct {
	Limit         int
	AfterContract string
	Standards     []string
}

// ListOpts drives the flat address listing, ranked by coin balance
// descending then hash ascending.
type ListOpts struct {
	Limit         int
	BeforeBalance *big.Int
	AfterHash     string
}
