package controller

import (
	"net/http"

	"github.com/go-jose/go-jose/v4/json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/chainlens-network/addressx/app/query/types"
	"github.com/chainlens-network/addressx/pkg/utils"
)

type Controller struct {
	App *types.App

	// internalSecret verifies service tokens from trusted first-party
	// callers. Empty disables the internal tier entirely.
	internalSecret []byte
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App:            app,
		internalSecret: []byte(utils.Env("INTERNAL_JWT_SECRET", "")),
	}
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()

	r.Handle("/health", http.HandlerFunc(c.HandleHealth)).Methods(http.MethodGet)

	r.HandleFunc("/addresses", c.HandleAddresses).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}", c.HandleAddress).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/counters", c.HandleAddressCounters).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/tabs-counters", c.HandleAddressTabsCounters).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/transactions", c.HandleAddressTransactions).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/token-transfers", c.HandleAddressTokenTransfers).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/internal-transactions", c.HandleAddressInternalTransactions).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/logs", c.HandleAddressLogs).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/blocks-validated", c.HandleAddressBlocksValidated).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/coin-balance-history", c.HandleAddressCoinBalanceHistory).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/coin-balance-history-by-day", c.HandleAddressCoinBalancesByDay).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/tokens", c.HandleAddressTokens).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/withdrawals", c.HandleAddressWithdrawals).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/nft", c.HandleAddressNFTs).Methods(http.MethodGet)
	r.HandleFunc("/addresses/{address}/nft/collections", c.HandleAddressNFTCollections).Methods(http.MethodGet)

	return r, nil
}

// WithCORS is a middleware that adds CORS headers to the response.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		// Development: Echo back the origin to allow credentials with any origin
		// TODO: Restrict this in production to specific domains
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Internal-Token")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)

		// Fast-path the preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// isInternalCaller verifies the HMAC service token on X-Internal-Token.
// Internal callers get a higher page cap and skip eager name/method
// decoration; an invalid or absent token silently downgrades to public.
func (c *Controller) isInternalCaller(r *http.Request) bool {
	raw := r.Header.Get("X-Internal-Token")
	if raw == "" || len(c.internalSecret) == 0 {
		return false
	}

	tok, err := jwt.Parse(raw,
		func(t *jwt.Token) (any, error) { return c.internalSecret, nil },
		jwt.WithValidMethods([]string{"HS256"}))

	return err == nil && tok.Valid
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}
