package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressLogs returns event logs emitted by an address. The topic
// filter is hex-normalized before it reaches the store; an unparseable
// topic is dropped rather than erroring.
func (c *Controller) HandleAddressLogs(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeLogOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressLogs(r.Context(), address.Hash, opts)
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

	writeJSON(w, http.StatusOK, pagedResponse[*models.Log]{Items: rows, NextPageParams: next})
}
