package rpc

import (
	"context"
	"fmt"
	"time"

	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

type rpcCoinBalance struct {
	BlockNumber uint64 `json:"block_number"`
	Value       string `json:"value"`
	Timestamp   int64  `json:"timestamp"`
}

type rpcTokenBalance struct {
	ID            uint64   `json:"id"`
	TokenContract string   `json:"token_contract"`
	TokenName     *string  `json:"token_name"`
	TokenSymbol   *string  `json:"token_symbol"`
	Standard      string   `json:"token_type"`
	Balance       string   `json:"balance"`
	Decimals      *uint8   `json:"decimals"`
	FiatValue     *float64 `json:"fiat_value"`
}

// CoinBalance fetches the current coin balance of an address at the node
// head. Satisfies refresh.BalanceSource.
func (c *HTTPClient) CoinBalance(ctx context.Context, address string) (*models.CoinBalance, error) {
	var out rpcCoinBalance
	if err := c.getJSON(ctx, "/v1/addresses/"+address+"/balance", &out); err != nil {
		return nil, fmt.Errorf("fetch coin balance for %s: %w", address, err)
	}

	value, err := parseBig(out.Value)
	if err != nil {
		return nil, err
	}
	return &models.CoinBalance{
		BlockNumber: out.BlockNumber,
		Value:       value,
		Delta:       nil,
		Time:        time.Unix(out.Timestamp, 0).UTC(),
	}, nil
}

// TokenBalances fetches the current token holdings of an address.
// Satisfies refresh.BalanceSource.
func (c *HTTPClient) TokenBalances(ctx context.Context, address string) ([]*models.TokenBalance, error) {
	var out []rpcTokenBalance
	if err := c.getJSON(ctx, "/v1/addresses/"+address+"/token-balances", &out); err != nil {
		return nil, fmt.Errorf("fetch token balances for %s: %w", address, err)
	}

	balances := make([]*models.TokenBalance, 0, len(out))
	for _, tb := range out {
		balance, err := parseBig(tb.Balance)
		if err != nil {
			return nil, err
		}
		balances = append(balances, &models.TokenBalance{
			ID:            tb.ID,
			TokenContract: tb.TokenContract,
			TokenName:     tb.TokenName,
			TokenSymbol:   tb.TokenSymbol,
			Standard:      tb.Standard,
			Balance:       balance,
			Decimals:      tb.Decimals,
			FiatValue:     tb.FiatValue,
		})
	}
	return balances, nil
}
