package query

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/chainlens-network/addressx/app/query/types"
	"github.com/chainlens-network/addressx/pkg/db/explorer"
	"github.com/chainlens-network/addressx/pkg/logging"
	"github.com/chainlens-network/addressx/pkg/policy"
	"github.com/chainlens-network/addressx/pkg/refresh"
	"github.com/chainlens-network/addressx/pkg/rpc"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr
		panic(err)
	}

	store, storeErr := explorer.New(ctx, logger)
	if storeErr != nil {
		logger.Fatal("Unable to initialize explorer database", zap.Error(storeErr))
	}

	accessPolicy, policyErr := policy.New(ctx, logger)
	if policyErr != nil {
		logger.Fatal("Unable to initialize access policy", zap.Error(policyErr))
	}

	node := rpc.NewHTTPClient()
	refresher := refresh.New(logger, node, store)

	app := &types.App{
		Store:     store,
		Policy:    accessPolicy,
		Refresher: refresher,
		Market:    rpc.NewMarketClient(),
		Logger:    logger,
	}

	// Prime the market snapshot before serving, then keep it warm.
	app.RefreshMarket(ctx)
	app.Cron = cron.New()
	if _, cronErr := app.Cron.AddFunc("@every 1m", func() {
		app.RefreshMarket(context.Background())
	}); cronErr != nil {
		logger.Fatal("Unable to schedule market refresh", zap.Error(cronErr))
	}
	app.Cron.Start()

	return app
}
