package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressCoinBalanceHistory returns the balance-changing points of
// an address, newest first, keyed by block number.
func (c *Controller) HandleAddressCoinBalanceHistory(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeBalanceOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressCoinBalanceHistory(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		next = nextPageParams{
			"block_number": strconv.FormatUint(rows[len(rows)-1].BlockNumber, 10),
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.CoinBalance]{Items: rows, NextPageParams: next})
}

// HandleAddressCoinBalancesByDay returns the full daily balance series.
// One row per day keeps it chart-sized, so it is never paginated.
func (c *Controller) HandleAddressCoinBalancesByDay(w http.ResponseWriter, r *http.Request) {
	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	rows, err := c.App.Store.AddressCoinBalancesByDay(r.Context(), address.Hash)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	if rows == nil {
		rows = []*models.CoinBalanceDay{}
	}

	writeJSON(w, http.StatusOK, rows)
}
