package controller

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

func batchTransfer(block uint64, logIndex uint32, entries ...models.BatchEntry) *models.TokenTransfer {
	return &models.TokenTransfer{
		BlockNumber: block,
		LogIndex:    logIndex,
		Standard:    models.StandardERC1155,
		Batch:       entries,
	}
}

func simpleTransfer(block uint64, logIndex uint32) *models.TokenTransfer {
	return &models.TokenTransfer{
		BlockNumber: block,
		LogIndex:    logIndex,
		Standard:    models.StandardERC20,
		Amount:      big.NewInt(1),
	}
}

func entry(id, amount int64) models.BatchEntry {
	return models.BatchEntry{TokenID: big.NewInt(id), Amount: big.NewInt(amount)}
}

func TestExpandBatchTransfers(t *testing.T) {
	tests := []struct {
		name       string
		parents    []*models.TokenTransfer
		limit      int
		expectLen  int
		expectMore bool
	}{
		{
			name:       "simple transfers pass through",
			parents:    []*models.TokenTransfer{simpleTransfer(100, 1), simpleTransfer(99, 3)},
			limit:      5,
			expectLen:  2,
			expectMore: false,
		},
		{
			name:       "batch expands to one row per entry",
			parents:    []*models.TokenTransfer{batchTransfer(100, 5, entry(1, 10), entry(2, 20), entry(3, 30))},
			limit:      5,
			expectLen:  3,
			expectMore: false,
		},
		{
			name:       "batch straddling the limit is truncated with more",
			parents:    []*models.TokenTransfer{batchTransfer(100, 5, entry(1, 10), entry(2, 20), entry(3, 30))},
			limit:      2,
			expectLen:  2,
			expectMore: true,
		},
		{
			name:       "extra parent from over-fetch flags more",
			parents:    []*models.TokenTransfer{simpleTransfer(100, 1), simpleTransfer(99, 3), simpleTransfer(98, 7)},
			limit:      2,
			expectLen:  2,
			expectMore: true,
		},
		{
			name:       "empty input",
			parents:    nil,
			limit:      5,
			expectLen:  0,
			expectMore: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, hasMore := expandBatchTransfers(tt.parents, tt.limit)
			assert.Len(t, rows, tt.expectLen)
			assert.Equal(t, tt.expectMore, hasMore)
		})
	}
}

// TestExpandBatchInheritsParentKey checks every expanded row carries the
// parent event's positional key and its own (id, amount) pair.
func TestExpandBatchInheritsParentKey(t *testing.T) {
	parents := []*models.TokenTransfer{batchTransfer(100, 5, entry(7, 70), entry(8, 80))}

	rows, hasMore := expandBatchTransfers(parents, 10)
	require.Len(t, rows, 2)
	assert.False(t, hasMore)

	for i, row := range rows {
		assert.Equal(t, uint64(100), row.BlockNumber)
		assert.Equal(t, uint32(5), row.LogIndex)
		assert.Nil(t, row.Batch)
		assert.Equal(t, int64(7+i), row.TokenID.Int64())
		assert.Equal(t, int64(70+10*i), row.Amount.Int64())
	}
}

// TestTokenTransfersBatchStraddle drives the full handler: a 3-entry batch
// against limit=2 yields two flat rows, has_more, and a cursor pointing at
// the parent event so the next page re-fetches it whole.
func TestTokenTransfersBatchStraddle(t *testing.T) {
	store := &mockStore{
		tokenTransfers: func(ctx context.Context, hash string, opts explorer.TransferPageOpts) ([]*models.TokenTransfer, error) {
			assert.Equal(t, 3, opts.Limit, "store sees limit+1")
			return []*models.TokenTransfer{batchTransfer(100, 5, entry(1, 10), entry(2, 20), entry(3, 30))}, nil
		},
	}
	router := newTestRouter(t, store, &mockPolicy{})

	rec := serveGET(router, "/addresses/"+testAddr+"/token-transfers?limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items          []map[string]any  `json:"items"`
		NextPageParams map[string]string `json:"next_page_params"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp.Items, 2)
	require.NotNil(t, resp.NextPageParams)
	assert.Equal(t, "100", resp.NextPageParams["block_number"])
	assert.Equal(t, "5", resp.NextPageParams["index"])
}

// TestTokenTransfersCursorForwarded checks cursor and filter params reach
// the store as typed options.
func TestTokenTransfersCursorForwarded(t *testing.T) {
	var got explorer.TransferPageOpts
	store := &mockStore{
		tokenTransfers: func(ctx context.Context, hash string, opts explorer.TransferPageOpts) ([]*models.TokenTransfer, error) {
			got = opts
			return nil, nil
		},
	}
	router := newTestRouter(t, store, &mockPolicy{})

	rec := serveGET(router, "/addresses/"+testAddr+"/token-transfers?block_number=100&index=5&filter=from&type=ERC-1155&token="+testAddrUpper)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, got.BeforeBlock)
	assert.Equal(t, uint64(100), *got.BeforeBlock)
	require.NotNil(t, got.BeforeLogIndex)
	assert.Equal(t, uint32(5), *got.BeforeLogIndex)
	assert.Equal(t, explorer.DirectionFrom, got.Direction)
	assert.Equal(t, []string{models.StandardERC1155}, got.Standards)
	assert.Equal(t, testAddr, got.Token, "token scope is canonicalized")
}
