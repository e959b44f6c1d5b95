package controller

import (
	"net/http"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// HandleAddressNFTs returns NFT instances held by an address, ascending by
// (token_contract, token_id).
func (c *Controller) HandleAddressNFTs(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeNFTOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressNFTs(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		last := rows[len(rows)-1]
		tokenID := "0"
		if last.TokenID != nil {
			tokenID = last.TokenID.String()
		}
		next = nextPageParams{
			"token_contract": last.TokenContract,
			"token_id":       tokenID,
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.NFTInstance]{Items: rows, NextPageParams: next})
}

// HandleAddressNFTCollections returns the address's NFT holdings grouped
// per contract, ascending by token_contract.
func (c *Controller) HandleAddressNFTCollections(w http.ResponseWriter, r *http.Request) {
	internal := c.isInternalCaller(r)

	address, ok := c.resolveAddress(w, r, explorer.AddressOpts{})
	if !ok {
		return
	}

	opts, limit := composeNFTCollectionOpts(r.URL.Query(), internal)

	rows, err := c.App.Store.AddressNFTCollections(r.Context(), address.Hash, opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	rows, hasMore := slicePage(rows, limit)

	var next nextPageParams
	if hasMore {
		next = nextPageParams{
			"token_contract": rows[len(rows)-1].TokenContract,
		}
	}

	writeJSON(w, http.StatusOK, pagedResponse[*models.NFTCollection]{Items: rows, NextPageParams: next})
}
