package explorer

import "math/big"

// TokenBalance is one token held by an address. ID is a stable surrogate
// assigned at index time; together with FiatValue it forms the composite
// paging key for the holdings listing (fiat value descending, nulls last,
// then ID ascending).
type TokenBalance struct {
	ID            uint64   `ch:"id" json:"id"`
	TokenContract string   `ch:"token_contract" json:"token_contract"`
	TokenName     *string  `ch:"token_name" json:"token_name,omitempty"`
	TokenSymbol   *string  `ch:"token_symbol" json:"token_symbol,omitempty"`
	Standard      string   `ch:"standard" json:"token_type"`
	Balance       *big.Int `ch:"balance" json:"balance"`
	Decimals      *uint8   `ch:"decimals" json:"decimals,omitempty"`
	FiatValue     *float64 `ch:"fiat_value" json:"fiat_value,omitempty"`
}

// NFTInstance is a single token instance (ERC-721 token or ERC-1155 id)
// held by an address. Ordered ascending by (token_contract, token_id).
type NFTInstance struct {
	TokenContract string   `ch:"token_contract" json:"token_contract"`
	TokenID       *big.Int `ch:"token_id" json:"token_id"`
	Standard      string   `ch:"standard" json:"token_type"`
	Amount        *big.Int `ch:"amount" json:"amount"`
	MetadataURL   *string  `ch:"metadata_url" json:"metadata_url,omitempty"`
}

// NFTCollection groups an address's instances per contract. Ordered
// ascending by token_contract.
type NFTCollection struct {
	TokenContract  string  `ch:"token_contract" json:"token_contract"`
	TokenName      *string `ch:"token_name" json:"token_name,omitempty"`
	TokenSymbol    *string `ch:"token_symbol" json:"token_symbol,omitempty"`
	Standard       string  `ch:"standard" json:"token_type"`
	InstancesCount uint64  `ch:"instances_count" json:"amount"`
}
