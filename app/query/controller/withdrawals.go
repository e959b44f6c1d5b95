package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressWithdrawals returns validator withdrawals credited to an
// address, newest first, keyed by the global withdrawal index.
func (c *Controller) HandleAddressWithdrawals(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeWithdrawalOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressWithdrawals(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		next = nextPageParams{
			"index": strconv.FormatUint(rows[len(rows)-1].Index, 10),
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.Withdrawal]{Items: rows, NextPageParams: next})
}
