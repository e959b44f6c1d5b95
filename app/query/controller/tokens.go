package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressTokens returns the token holdings of an address, ranked by
// fiat value descending with unpriced tokens last, then id ascending. The
// cursor carries both halves of the composite key; when the last row had
// no fiat value the cursor omits it and the next page resumes inside the
// unpriced tail.
func (c *Controller) HandleAddressTokens(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeTokenOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressTokens(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		last := rows[len(rows)-1]
		next = nextPageParams{
			"id": strconv.FormatUint(last.ID, 10),
		}
		if last.FiatValue != nil {
			next["fiat_value"] = strconv.FormatFloat(*last.FiatValue, 'f', -1, 64)
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.TokenBalance]{Items: rows, NextPageParams: next})
}
