package rpc

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/chainlens-network/addressx/pkg/utils"
)

// MarketSnapshot is the pair of global metrics attached to the address
// listing. Both come from the market aggregator, not from explorer storage.
type MarketSnapshot struct {
	ExchangeRate *float64 `json:"exchange_rate"`
	TotalSupply  *big.Int `json:"total_supply"`
}

// MarketClient fetches coin market data from the price aggregator API.
type MarketClient struct {
	base   string
	client *http.Client
}

// NewMarketClient builds the market client from MARKET_API_URL.
func NewMarketClient() *MarketClient {
	return &MarketClient{
		base:   utils.Env("MARKET_API_URL", "http://localhost:8080"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type rpcMarketStats struct {
	ExchangeRate *float64 `json:"exchange_rate"`
	TotalSupply  string   `json:"total_supply"`
}

// Snapshot fetches the current exchange rate and total supply.
func (c *MarketClient) Snapshot(ctx context.Context) (*MarketSnapshot, error) {
	hc := &HTTPClient{base: c.base, client: c.client}

	var out rpcMarketStats
	if err := hc.getJSON(ctx, "/v1/stats", &out); err != nil {
		return nil, fmt.Errorf("fetch market stats: %w", err)
	}

	supply, err := parseBig(out.TotalSupply)
	if err != nil {
		return nil, err
	}
	return &MarketSnapshot{ExchangeRate: out.ExchangeRate, TotalSupply: supply}, nil
}
