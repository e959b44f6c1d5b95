package refresh

import (
	"context"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/puzpuzpuz/xsync/v4"
	"go.uber.org/zap"

	"github.com/chainlens-network/addressx/pkg/utils"
	models "github.com/chainlens-network/addressx/pkg/db/models/explorer"
)

// BalanceSource fetches current balances from the node/pricing side.
type BalanceSource interface {
	CoinBalance(ctx context.Context, address string) (*models.CoinBalance, error)
	TokenBalances(ctx context.Context, address string) ([]*models.TokenBalance, error)
}

// Sink is the write slice of the explorer store the refresher needs.
type Sink interface {
	InsertCoinBalance(ctx context.Context, hash string, balance *models.CoinBalance) error
	InsertTokenBalances(ctx context.Context, hash string, balances []*models.TokenBalance) error
}

// Refresher runs on-demand balance refreshes off the request path. Enqueue
// never blocks: when the queue is full the request is dropped, since a
// fresher balance is a nicety, never a response dependency. Worker panics
// stay inside the pool and cannot reach a request goroutine.
type Refresher struct {
	logger   *zap.Logger
	source   BalanceSource
	sink     Sink
	pool     pond.Pool
	inflight *xsync.Map[string, time.Time]
	timeout  time.Duration
}

// New builds a refresher with a bounded, non-blocking worker pool.
// Environment variables:
//   - REFRESH_WORKERS: pool size (default 4)
//   - REFRESH_QUEUE: queued task cap (default 1024)
func New(logger *zap.Logger, source BalanceSource, sink Sink) *Refresher {
	workers := utils.EnvInt("REFRESH_WORKERS", 4)
	queueSize := utils.EnvInt("REFRESH_QUEUE", 1024)

	return &Refresher{
		logger:   logger,
		source:   source,
		sink:     sink,
		pool:     pond.NewPool(workers, pond.WithQueueSize(queueSize), pond.WithNonBlocking(true)),
		inflight: xsync.NewMap[string, time.Time](),
		timeout:  30 * time.Second,
	}
}

// RequestCoinBalance schedules a coin-balance refresh for an address.
// Returns immediately; duplicate requests for an address already queued
// are coalesced.
func (r *Refresher) RequestCoinBalance(hash string) {
	r.enqueue("coin:"+hash, func(ctx context.Context) error {
		balance, err := r.source.CoinBalance(ctx, hash)
		if err != nil {
			return err
		}
		return r.sink.InsertCoinBalance(ctx, hash, balance)
	})
}

// RequestTokenBalances schedules a token-balance refresh for an address.
func (r *Refresher) RequestTokenBalances(hash string) {
	r.enqueue("token:"+hash, func(ctx context.Context) error {
		balances, err := r.source.TokenBalances(ctx, hash)
		if err != nil {
			return err
		}
		return r.sink.InsertTokenBalances(ctx, hash, balances)
	})
}

func (r *Refresher) enqueue(key string, fn func(context.Context) error) {
	if _, loaded := r.inflight.LoadOrStore(key, time.Now()); loaded {
		return
	}

	r.pool.Go(func() {
		defer r.inflight.Delete(key)

		// Detached from the request: fresh context, own deadline.
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			r.logger.Debug("On-demand refresh failed", zap.String("key", key), zap.Error(err))
		}
	})
}

// StopAndWait drains the queue during shutdown.
func (r *Refresher) StopAndWait() {
	r.pool.StopAndWait()
}
