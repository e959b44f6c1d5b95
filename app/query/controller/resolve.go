package controller

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
	"github.com/chainlens-network/addressx/pkg/utils"
)

// resolveAddress runs the shared per-request pipeline: canonicalize the
// path address, consult the access policy, then load the identity row.
// The policy check takes the caller-supplied string and runs before the
// store lookup, so a restricted address answers 403 whether or not it is
// indexed. On failure the response has already been written and the
// second return is false.
func (c *Controller) resolveAddress(w http.ResponseWriter, r *http.Request, opts explorer.AddressOpts) (*models.Address, bool) {
	raw := mux.Vars(r)["address"]

	hash, err := utils.ParseAddress(raw)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Invalid parameter(s)")
		return nil, false
	}

	if err := c.App.Policy.Check(r.Context(), raw); err != nil {
		writeError(w, http.StatusForbidden, "Restricted access")
		return nil, false
	}

	address, err := c.App.Store.GetAddress(r.Context(), hash, opts)
	if err != nil {
		if errors.Is(err, explorer.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Not found")
		} else {
			writeError(w, http.StatusInternalServerError, "query failed")
		}
		return nil, false
	}

	return address, true
}
