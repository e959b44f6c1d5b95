package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressTransactions returns transactions touching an address.
// Query parameters:
//   - filter: "to" or "from" to keep one side only
//   - sort: "asc" or "desc" (default "desc")
//   - block_number, index: cursor of the last row of the previous page
//   - limit: page size (clamped)
func (c *Controller) HandleAddressTransactions(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeTxOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressTransactions(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		last := rows[len(rows)-1]
		next = nextPageParams{
			"block_number": strconv.FormatUint(last.BlockNumber, 10),
			"index":        strconv.FormatUint(uint64(last.Index), 10),
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.Transaction]{Items: rows, NextPageParams: next})
}
