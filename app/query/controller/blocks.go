package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressBlocksValidated returns blocks produced by an address,
// newest first, keyed by block number.
func (c *Controller) HandleAddressBlocksValidated(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeBlockOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressBlocksValidated(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		next = nextPageParams{
			"block_number": strconv.FormatUint(rows[len(rows)-1].Number, 10),
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.Block]{Items: rows, NextPageParams: next})
}
