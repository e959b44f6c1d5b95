package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chainlens-network/addressx/pkg/retry"
	"github.com/chainlens-network/addressx/pkg/utils"
	"go.uber.org/zap"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

// Client wraps a ClickHouse connection pool together with the logger used
// for driver-level debugging.
type Client struct {
	Logger *zap.Logger
	Db     driver.Conn
	Name   string
}

// New initializes a ClickHouse client against the database named by dbName.
// The DSN comes from CLICKHOUSE_ADDR; the initial dial is retried with
// backoff since the database regularly comes up after the API in compose
// and k8s environments.
func New(ctx context.Context, logger *zap.Logger, dbName string) (Client, error) {
	connCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	client := Client{Logger: logger, Name: dbName}

	dsn := utils.Env("CLICKHOUSE_ADDR", "clickhouse://localhost:9000?sslmode=disable")
	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return Client{}, fmt.Errorf("parse CLICKHOUSE_ADDR: %w", err)
	}

	options.Auth.Database = dbName
	options.DialTimeout = 30 * time.Second
	options.MaxOpenConns = utils.EnvInt("CLICKHOUSE_MAX_OPEN_CONNS", 25)
	options.MaxIdleConns = utils.EnvInt("CLICKHOUSE_MAX_IDLE_CONNS", 25)
	options.ConnMaxLifetime = time.Hour
	if options.Compression == nil {
		options.Compression = &clickhouse.Compression{Method: clickhouse.CompressionLZ4}
	}
	if options.Settings == nil {
		options.Settings = clickhouse.Settings{}
	}
	options.Settings["prefer_column_name_to_alias"] = 1

	if logger.Core().Enabled(zap.DebugLevel) {
		sugar := logger.Named("clickhouse.driver").Sugar()
		options.Debugf = sugar.Debugf
	}

	err = retry.WithBackoff(connCtx, retry.DefaultConfig(), logger, "clickhouse_connection", func() error {
		conn, openErr := clickhouse.Open(options)
		if openErr != nil {
			return fmt.Errorf("failed to open clickhouse connection: %w", openErr)
		}
		if pingErr := conn.Ping(connCtx); pingErr != nil {
			return fmt.Errorf("failed to ping clickhouse: %w", pingErr)
		}
		client.Db = conn

		client.Logger.Info("ClickHouse connection pool configured",
			zap.String("database", dbName),
			zap.Int("max_open_conns", options.MaxOpenConns),
			zap.Int("max_idle_conns", options.MaxIdleConns),
		)
		return nil
	})
	if err != nil {
		return Client{}, err
	}

	return client, nil
}

// Exec Helper method to execute raw SQL queries
func (c *Client) Exec(ctx context.Context, query string, args ...interface{}) error {
	return c.Db.Exec(ctx, query, args...)
}

// QueryRow Helper method to query a single row
func (c *Client) QueryRow(ctx context.Context, query string, args ...interface{}) driver.Row {
	return c.Db.QueryRow(ctx, query, args...)
}

// Select Helper method to select into a slice
func (c *Client) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return c.Db.Select(ctx, dest, query, args...)
}

// PrepareBatch Helper method for batch inserts
func (c *Client) PrepareBatch(ctx context.Context, query string) (driver.Batch, error) {
	return c.Db.PrepareBatch(ctx, query)
}

// Close Helper method to close the connection
func (c *Client) Close() error {
	return c.Db.Close()
}

// IsNoRows Helper to check if the error is no rows
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
