package types

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/chainlens-network/addressx/pkg/db/explorer"
	"github.com/chainlens-network/addressx/pkg/rpc"
)

// AccessPolicy decides whether a raw address string may be served.
type AccessPolicy interface {
	Check(ctx context.Context, raw string) error
	Close() error
}

// BalanceRefresher schedules fire-and-forget balance refreshes.
type BalanceRefresher interface {
	RequestCoinBalance(hash string)
	RequestTokenBalances(hash string)
	StopAndWait()
}

type App struct {
	Store     explorer.Store
	Policy    AccessPolicy
	Refresher BalanceRefresher
	Market    *rpc.MarketClient
	Cron      *cron.Cron
	// Zap Logger
	Logger *zap.Logger
	// Server represents the HTTP server instance used to handle incoming client requests and manage HTTP routes.
	Server *http.Server

	marketSnap atomic.Pointer[rpc.MarketSnapshot]
}

// MarketSnapshot returns the last cron-fetched market metrics. May be nil
// before the first successful fetch; the listing handler tolerates that.
func (a *App) MarketSnapshot() *rpc.MarketSnapshot {
	return a.marketSnap.Load()
}

// RefreshMarket fetches and caches the market snapshot. Failures keep the
// previous snapshot in place.
func (a *App) RefreshMarket(ctx context.Context) {
	snap, err := a.Market.Snapshot(ctx)
	if err != nil {
		a.Logger.Warn("Market snapshot refresh failed", zap.Error(err))
		return
	}
	a.marketSnap.Store(snap)
}

// Start starts the application.
func (a *App) Start(ctx context.Context) {
	go func() { _ = a.Server.ListenAndServe() }()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.Cron != nil {
		a.Cron.Stop()
	}
	if a.Refresher != nil {
		a.Refresher.StopAndWait()
	}

	_ = a.Server.Shutdown(shutdownCtx)

	if err := a.Store.Close(); err != nil {
		a.Logger.Error("Failed to close database connection", zap.Error(err))
	}
	if err := a.Policy.Close(); err != nil {
		a.Logger.Error("Failed to close policy client", zap.Error(err))
	}

	a.Logger.Info("Shutdown complete")
}
