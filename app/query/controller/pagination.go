package controller

import (
	"math/big"
	"net/url"
	"strconv"
)

const (
	defaultLimit = 50
	maxLimit     = 100

	// Trusted first-party callers may page in bigger strides.
	internalMaxLimit = 1000
)

// pagedResponse is the envelope of every paginated endpoint. NextPageParams
// carries only the positional cursor fields of the last item; filters are
// never embedded and must be re-sent by the client.
type pagedResponse[T any] struct {
	Items          []T            `json:"items"`
	NextPageParams nextPageParams `json:"next_page_params"`
}

// nextPageParams is a flat string map so every cursor field round-trips
// through the query string unchanged.
type nextPageParams map[string]string

// parseLimit reads the limit query param clamped to [1, max]. Malformed or
// absent values degrade to the default rather than erroring.
func parseLimit(qs url.Values, max int) int {
	v := qs.Get("limit")
	if v == "" {
		return defaultLimit
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return defaultLimit
	}
	if n > max {
		return max
	}
	return n
}

// slicePage applies the limit+1 over-fetch convention: rows were queried
// with limit+1, so a longer-than-limit result means another page exists.
func slicePage[T any](rows []T, limit int) ([]T, bool) {
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}

func qsUint64(qs url.Values, key string) *uint64 {
	v := qs.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func qsUint32(qs url.Values, key string) *uint32 {
	v := qs.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return nil
	}
	out := uint32(n)
	return &out
}

func qsFloat(qs url.Values, key string) *float64 {
	v := qs.Get(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func qsBigInt(qs url.Values, key string) *big.Int {
	v := qs.Get(key)
	if v == "" {
		return nil
	}
	n, ok := new(big.Int).SetString(v, 10)
	if !ok {
		return nil
	}
	return n
}
