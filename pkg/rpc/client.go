package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/chainlens-network/addressx/pkg/utils"
)

// HTTPClient is a thin JSON client for the archive node's query surface.
// The on-demand balance refresher is its only consumer, so there is no
// rate limiting here; the refresher's bounded pool is the throttle.
type HTTPClient struct {
	base   string
	client *http.Client
}

// NewHTTPClient builds the node client from NODE_RPC_URL.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{
		base:   utils.Env("NODE_RPC_URL", "http://localhost:8545"),
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		// Drain to let the transport reuse the connection.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, path)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// parseBig converts a decimal wire string into a big.Int. The node encodes
// 256-bit quantities as strings to survive JSON number precision.
func parseBig(s string) (*big.Int, error) {
	if s == "" {
		return big.NewInt(0), nil
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}
	return n, nil
}
