package controller

import (
	"net/url"
	"strings"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
	"github.com/chainlens-network/addressx/pkg/utils"
)

// The compose functions below turn a raw query string into the typed option
// struct of one resource kind. They are total: malformed optional params
// degrade to defaults and never error. Each returns the options with Limit
// already bumped by one for next-page detection, plus the page limit for
// slicing.

func limitCap(internal bool) int {
	if internal {
		return internalMaxLimit
	}
	return maxLimit
}

func parseDirection(qs url.Values) explorer.Direction {
	switch qs.Get("filter") {
	case "from":
		return explorer.DirectionFrom
	case "to":
		return explorer.DirectionTo
	default:
		return explorer.DirectionAny
	}
}

func parseSort(qs url.Values) explorer.SortOrder {
	if qs.Get("sort") == "asc" {
		return explorer.SortOrderAsc
	}
	return explorer.SortOrderDesc
}

// parseStandards reads the comma-separated type filter, keeping only known
// token standards. An empty result means no filtering.
func parseStandards(qs url.Values) []string {
	v := qs.Get("type")
	if v == "" {
		return nil
	}

	var out []string
	for _, entry := range strings.Split(v, ",") {
		switch strings.ToUpper(strings.TrimSpace(entry)) {
		case models.StandardERC20:
			out = append(out, models.StandardERC20)
		case models.StandardERC721:
			out = append(out, models.StandardERC721)
		case models.StandardERC1155:
			out = append(out, models.StandardERC1155)
		}
	}
	return out
}

func composeTxOpts(qs url.Values, internal bool) (explorer.TxPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))
	return explorer.TxPageOpts{
		Limit:       limit + 1,
		BeforeBlock: qsUint64(qs, "block_number"),
		BeforeIndex: qsUint32(qs, "index"),
		Direction:   parseDirection(qs),
		Sort:        parseSort(qs),
		WithMethod:  !internal,
	}, limit
}

func composeTransferOpts(qs url.Values, internal bool) (explorer.TransferPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))

	// Token scope is an address; a malformed one is dropped, not an error.
	token := ""
	if v := qs.Get("token"); v != "" {
		if parsed, err := utils.ParseAddress(v); err == nil {
			token = parsed
		}
	}

	return explorer.TransferPageOpts{
		Limit:          limit + 1,
		BeforeBlock:    qsUint64(qs, "block_number"),
		BeforeLogIndex: qsUint32(qs, "index"),
		Token:          token,
		Standards:      parseStandards(qs),
		Direction:      parseDirection(qs),
	}, limit
}

func composeInternalTxOpts(qs url.Values, internal bool) (explorer.InternalTxPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))
	return explorer.InternalTxPageOpts{
		Limit:         limit + 1,
		BeforeBlock:   qsUint64(qs, "block_number"),
		BeforeTxIndex: qsUint32(qs, "transaction_index"),
		BeforeIndex:   qsUint32(qs, "index"),
		Direction:     parseDirection(qs),
	}, limit
}

func composeLogOpts(qs url.Values, internal bool) (explorer.LogPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))

	topic := ""
	if v := qs.Get("topic"); v != "" {
		if normalized, ok := utils.NormalizeTopic(v); ok {
			topic = normalized
		}
	}

	return explorer.LogPageOpts{
		Limit:       limit + 1,
		BeforeBlock: qsUint64(qs, "block_number"),
		BeforeIndex: qsUint32(qs, "index"),
		Topic:       topic,
	}, limit
}

func composeBlockOpts(qs url.Values, internal bool) (explorer.BlockPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))
	return explorer.BlockPageOpts{
		Limit:        limit + 1,
		BeforeNumber: qsUint64(qs, "block_number"),
	}, limit
}

func composeBalanceOpts(qs url.Values, internal bool) (explorer.BalancePageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))
	return explorer.BalancePageOpts{
		Limit:       limit + 1,
		BeforeBlock: qsUint64(qs, "block_number"),
	}, limit
}

func composeTokenOpts(qs url.Values, internal bool) (explorer.TokenPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))

	opts := explorer.TokenPageOpts{
		Limit:     limit + 1,
		AfterID:   qsUint64(qs, "id"),
		Standards: parseStandards(qs),
	}

	// A cursor with an id but no parseable fiat value sits in the
	// unpriced tail of the fiat-descending-nulls-last ordering.
	if opts.AfterID != nil {
		opts.BeforeFiat = qsFloat(qs, "fiat_value")
		opts.CursorNullFiat = opts.BeforeFiat == nil
	}

	return opts, limit
}

func composeWithdrawalOpts(qs url.Values, internal bool) (explorer.WithdrawalPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))
	return explorer.WithdrawalPageOpts{
		Limit:       limit + 1,
		BeforeIndex: qsUint64(qs, "index"),
	}, limit
}

func composeNFTOpts(qs url.Values, internal bool) (explorer.NFTPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))

	opts := explorer.NFTPageOpts{
		Limit:     limit + 1,
		Standards: parseStandards(qs),
	}

	// Both halves of the composite cursor or neither.
	if contract, err := utils.ParseAddress(qs.Get("token_contract")); err == nil {
		if id := qsBigInt(qs, "token_id"); id != nil {
			opts.AfterContract = contract
			opts.AfterTokenID = id
		}
	}

	return opts, limit
}

func composeNFTCollectionOpts(qs url.Values, internal bool) (explorer.NFTCollectionPageOpts, int) {
	limit := parseLimit(qs, limitCap(internal))

	opts := explorer.NFTCollectionPageOpts{
		Limit:     limit + 1,
		Standards: parseStandards(qs),
	}
	if contract, err := utils.ParseAddress(qs.Get("token_contract")); err == nil {
		opts.AfterContract = contract
	}

	return opts, limit
}

func composeListOpts(qs url.Values, internal bool) (explorer.ListOpts, int) {
	limit := parseLimit(qs, limitCap(internal))

	opts := explorer.ListOpts{Limit: limit + 1}
	if balance := qsBigInt(qs, "coin_balance"); balance != nil {
		if hash, err := utils.ParseAddress(qs.Get("hash")); err == nil {
			opts.BeforeBalance = balance
			opts.AfterHash = hash
		}
	}

	return opts, limit
}
