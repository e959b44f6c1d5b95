package controller

import (
	"net/http"
	"strconv"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressTokenTransfers returns token transfer events touching an
// address, with ERC-1155 batch events expanded to one row per sub-entry.
// Query parameters:
//   - token: scope to one token contract
//   - type: comma-separated standard filter (ERC-20, ERC-721, ERC-1155)
//   - filter: "to" or "from"
//   - block_number, index: cursor (parent event key)
//   - limit: page size (clamped)
func (c *Controller) HandleAddressTokenTransfers(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeTransferOpts(r.URL.Query(), internal)

	parents, err := c.App.Store.AddressTokenTransfers(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := expandBatchTransfers(parents, limit)

	var next nextPageParams
	if hasMore {
		last := rows[len(rows)-1]
		next = nextPageParams{
			"block_number": strconv.FormatUint(last.BlockNumber, 10),
			"index":        strconv.FormatUint(uint64(last.LogIndex), 10),
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.TokenTransfer]{Items: rows, NextPageParams: next})
}

// expandBatchTransfers flattens ERC-1155 batch events into one row per
// (token id, amount) entry, then applies the page limit. Every flat row
// inherits its parent's (block_number, log_index), so the returned cursor
// is always a parent event key. A batch straddling the page boundary is
// truncated here and re-fetched whole on the next page, because the store
// continuation predicate is inclusive at the parent event.
func expandBatchTransfers(parents []*models.TokenTransfer, limit int) ([]*models.TokenTransfer, bool) {
	// parents were fetched with limit+1
	parents, hasMore := slicePage(parents, limit)

	flat := make([]*models.TokenTransfer, 0, len(parents))
	for _, parent := range parents {
		if len(parent.Batch) == 0 {
			flat = append(flat, parent)
			continue
		}
		for _, entry := range parent.Batch {
			row := *parent
			row.TokenID = entry.TokenID
			row.Amount = entry.Amount
			row.Batch = nil
			flat = append(flat, &row)
		}
	}

	if len(flat) > limit {
		flat = flat[:limit]
		hasMore = true
	}

	return flat, hasMore
}
