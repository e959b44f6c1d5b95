package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressInternalTransactions returns message-level calls touching
// an address, keyed by (block_number, transaction_index, index).
func (c *Controller) HandleAddressInternalTransactions(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeInternalTxOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressInternalTransactions(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		last := rows[len(rows)-1]
		next = nextPageParams{
			"block_number":      strconv.FormatUint(last.BlockNumber, 10),
			"transaction_index": strconv.FormatUint(uint64(last.TransactionIndex), 10),
			"index":             strconv.FormatUint(uint64(last.Index), 10),
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.InternalTransaction]{Items: rows, NextPageParams: next})
}
