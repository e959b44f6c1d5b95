package controller

import (
	"math/big"
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddress returns the address summary. Serving a summary also
// schedules the two fire-and-forget balance refreshes so the next read
// sees fresher numbers; the response never waits on them.
func (c *Controller) HandleAddress(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{WithName: !internal})
	if !ok {
		return
	}

	c.App.Refresher.RequestCoinBalance(address.Hash)
	c.App.Refresher.RequestTokenBalances(address.Hash)

	writeJSON(w, http.StatusOK, address)
}

// HandleAddressCounters returns the four headline counts, stringified so
// JS clients never truncate values past 2^53.
func (c *Controller) HandleAddressCounters(w http.ResponseWriter, r *http.Request) {
	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	counters, err := c.App.Store.AddressCounters(r.Context(), address.Hash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"transactions_count":    strconv.FormatUint(counters.TransactionsCount, 10),
		"token_transfers_count": strconv.FormatUint(counters.TokenTransfersCount, 10),
		"gas_usage_count":       strconv.FormatUint(counters.GasUsageCount, 10),
		"validations_count":     strconv.FormatUint(counters.ValidationsCount, 10),
	})
}

// HandleAddressTabsCounters returns the capped per-tab badge counts.
// Never paginated.
func (c *Controller) HandleAddressTabsCounters(w http.ResponseWriter, r *http.Request) {
	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	counters, err := c.App.Store.AddressTabCounters(r.Context(), address.Hash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, counters)
}

type addressListResponse struct {
	Items          []*models.Address `json:"items"`
	NextPageParams nextPageParams    `json:"next_page_params"`
	ExchangeRate   *float64          `json:"exchange_rate"`
	TotalSupply    *big.Int          `json:"total_supply"`
}

// HandleAddresses returns the global address listing ranked by coin
// balance, decorated with the cron-cached market metrics.
func (c *Controller) HandleAddresses(w http.ResponseWriter, r *http.Request) {
	opts, limit := composeListOpts(r.URL.Query(), c.isInternalCaller(r))

	rows, err := c.App.Store.ListAddresses(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		last := rows[len(rows)-1]
		balance := "0"
		if last.CoinBalance != nil {
			balance = last.CoinBalance.String()
		}
		next = nextPageParams{
			"coin_balance": balance,
			"hash":         last.Hash,
		}
	}

	resp := addressListResponse{Items: rows, NextPageParams: next}
	if snap := c.App.MarketSnapshot(); snap != nil {
		resp.ExchangeRate = snap.ExchangeRate
		resp.TotalSupply = snap.TotalSupply
	}

	writeJSON(w, http.StatusOK, resp)
}
