package rpc

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoinBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/addresses/0xabc/balance", r.URL.Path)
		_, _ = w.Write([]byte(`{"block_number": 123, "value": "340282366920938463463374607431768211456", "timestamp": 1700000000}`))
	}))
	defer server.Close()
	t.Setenv("NODE_RPC_URL", server.URL)

	balance, err := NewHTTPClient().CoinBalance(context.Background(), "0xabc")
	require.NoError(t, err)

	assert.Equal(t, uint64(123), balance.BlockNumber)
	assert.Equal(t, "340282366920938463463374607431768211456", balance.Value.String())
	assert.Nil(t, balance.Delta)
	assert.Equal(t, int64(1700000000), balance.Time.Unix())
}

func TestTokenBalances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/addresses/0xabc/token-balances", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id": 7, "token_contract": "0xdef", "token_type": "ERC-20", "balance": "1000"}]`))
	}))
	defer server.Close()
	t.Setenv("NODE_RPC_URL", server.URL)

	balances, err := NewHTTPClient().TokenBalances(context.Background(), "0xabc")
	require.NoError(t, err)

	require.Len(t, balances, 1)
	assert.Equal(t, uint64(7), balances[0].ID)
	assert.Equal(t, "0xdef", balances[0].TokenContract)
	assert.Equal(t, "1000", balances[0].Balance.String())
	assert.Nil(t, balances[0].FiatValue)
}

func TestNon200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	t.Setenv("NODE_RPC_URL", server.URL)

	_, err := NewHTTPClient().CoinBalance(context.Background(), "0xabc")
	assert.Error(t, err)
}

func TestParseBig(t *testing.T) {
	n, err := parseBig("12345")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), n.Int64())

	n, err = parseBig("")
	require.NoError(t, err)
	assert.Zero(t, n.Int64())

	_, err = parseBig("not-a-number")
	assert.Error(t, err)
}

func TestMarketSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/stats", r.URL.Path)
		_, _ = w.Write([]byte(`{"exchange_rate": 2.75, "total_supply": "21000000"}`))
	}))
	defer server.Close()
	t.Setenv("MARKET_API_URL", server.URL)

	snap, err := NewMarketClient().Snapshot(context.Background())
	require.NoError(t, err)

	require.NotNil(t, snap.ExchangeRate)
	assert.Equal(t, 2.75, *snap.ExchangeRate)
	assert.Equal(t, "21000000", snap.TotalSupply.String())
}
