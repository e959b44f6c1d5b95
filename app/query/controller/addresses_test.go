package controller

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/chainlens-network/addressx/app/query/types"
	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
	"github.com/chainlens-network/addressx/pkg/rpc"
)

// TestAddressSummaryTriggersRefresh checks serving a summary enqueues both
// background balance refreshes without waiting on them.
func TestAddressSummaryTriggersRefresh(t *testing.T) {
	refresher := &mockRefresher{}
	app := &types.App{
		Store:     &mockStore{},
		Policy:    &mockPolicy{},
		Refresher: refresher,
		Logger:    zaptest.NewLogger(t),
	}
	router, err := NewController(app).NewRouter()
	require.NoError(t, err)

	rec := serveGET(router, "/addresses/"+testAddr)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, []string{testAddr}, refresher.coinRequests)
	assert.Equal(t, []string{testAddr}, refresher.tokenRequests)
}

// TestAddressCountersStringified checks the four counters come back as
// strings so JS clients never truncate them.
func TestAddressCountersStringified(t *testing.T) {
	store := &mockStore{
		counters: func(ctx context.Context, hash string) (*models.Counters, error) {
			return &models.Counters{
				TransactionsCount:   18446744073709551615,
				TokenTransfersCount: 7,
				GasUsageCount:       123,
				ValidationsCount:    0,
			}, nil
		},
	}
	router := newTestRouter(t, store, &mockPolicy{})

	rec := serveGET(router, "/addresses/"+testAddr+"/counters")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "18446744073709551615", resp["transactions_count"])
	assert.Equal(t, "7", resp["token_transfers_count"])
	assert.Equal(t, "123", resp["gas_usage_count"])
	assert.Equal(t, "0", resp["validations_count"])
}

// TestCoinBalancesByDayNeverPaginates checks the daily series ignores
// paging params and returns the whole series as a flat array.
func TestCoinBalancesByDayNeverPaginates(t *testing.T) {
	store := &mockStore{
		balancesByDay: func(ctx context.Context, hash string) ([]*models.CoinBalanceDay, error) {
			out := make([]*models.CoinBalanceDay, 365)
			for i := range out {
				out[i] = &models.CoinBalanceDay{Value: big.NewInt(int64(i))}
			}
			return out, nil
		},
	}
	router := newTestRouter(t, store, &mockPolicy{})

	rec := serveGET(router, "/addresses/"+testAddr+"/coin-balance-history-by-day?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 365)
}

// TestTabsCountersShape checks the badge payload carries all seven counts.
func TestTabsCountersShape(t *testing.T) {
	store := &mockStore{
		tabCounters: func(ctx context.Context, hash string) (*models.TabCounters, error) {
			return &models.TabCounters{
				TransactionsCount: models.TabCounterCap,
				LogsCount:         3,
			}, nil
		},
	}
	router := newTestRouter(t, store, &mockPolicy{})

	rec := serveGET(router, "/addresses/"+testAddr+"/tabs-counters")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]uint64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(models.TabCounterCap), resp["transactions_count"])
	assert.Equal(t, uint64(3), resp["logs_count"])
	assert.Len(t, resp, 7)
}

// TestAddressListing checks the global listing pages on the composite
// (coin_balance, hash) key and carries the cron-cached market extras.
func TestAddressListing(t *testing.T) {
	market := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"exchange_rate": 1.5, "total_supply": "100000000000000000000"}`))
	}))
	defer market.Close()
	t.Setenv("MARKET_API_URL", market.URL)

	store := &mockStore{
		listAddresses: func(ctx context.Context, opts explorer.ListOpts) ([]*models.Address, error) {
			assert.Equal(t, 3, opts.Limit)
			return []*models.Address{
				{Hash: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", CoinBalance: big.NewInt(300)},
				{Hash: "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", CoinBalance: big.NewInt(200)},
				{Hash: "0xcccccccccccccccccccccccccccccccccccccccc", CoinBalance: big.NewInt(100)},
			}, nil
		},
	}
	app := &types.App{
		Store:     store,
		Policy:    &mockPolicy{},
		Refresher: &mockRefresher{},
		Market:    rpc.NewMarketClient(),
		Logger:    zaptest.NewLogger(t),
	}
	app.RefreshMarket(context.Background())

	router, err := NewController(app).NewRouter()
	require.NoError(t, err)

	rec := serveGET(router, "/addresses?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items          []map[string]any  `json:"items"`
		NextPageParams map[string]string `json:"next_page_params"`
		ExchangeRate   *float64          `json:"exchange_rate"`
		TotalSupply    *big.Int          `json:"total_supply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Items, 2)
	require.NotNil(t, resp.NextPageParams)
	assert.Equal(t, "200", resp.NextPageParams["coin_balance"])
	assert.Equal(t, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", resp.NextPageParams["hash"])

	require.NotNil(t, resp.ExchangeRate)
	assert.Equal(t, 1.5, *resp.ExchangeRate)
	require.NotNil(t, resp.TotalSupply)
	assert.Equal(t, "100000000000000000000", resp.TotalSupply.String())
}
