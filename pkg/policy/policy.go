package policy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chainlens-network/addressx/pkg/utils"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrRestricted is returned when the access policy denies an address.
var ErrRestricted = errors.New("restricted address")

// restrictedSetKey is the Redis set shared with the compliance tooling.
const restrictedSetKey = "restricted:addresses"

// Policy decides whether an address may be served. The decision is made on
// the caller-supplied string, before any storage lookup, so a restricted
// response never depends on whether the address is indexed.
type Policy struct {
	logger *zap.Logger
	rdb    *redis.Client
	local  map[string]struct{}
}

// New builds the policy from the RESTRICTED_ADDRESSES env list plus, when
// REDIS_ENABLED is set, the shared Redis denylist set.
// Environment variables:
//   - RESTRICTED_ADDRESSES: comma-separated address denylist
//   - REDIS_ENABLED, REDIS_HOST, REDIS_PORT, REDIS_PASSWORD, REDIS_DB
func New(ctx context.Context, logger *zap.Logger) (*Policy, error) {
	local := map[string]struct{}{}
	for _, entry := range strings.Split(utils.Env("RESTRICTED_ADDRESSES", ""), ",") {
		entry = normalize(entry)
		if entry != "" {
			local[entry] = struct{}{}
		}
	}

	p := &Policy{logger: logger, local: local}

	if utils.Env("REDIS_ENABLED", "false") == "true" {
		addr := fmt.Sprintf("%s:%s", utils.Env("REDIS_HOST", "localhost"), utils.Env("REDIS_PORT", "6379"))
		rdb := redis.NewClient(&redis.Options{
			Addr:         addr,
			Password:     utils.Env("REDIS_PASSWORD", ""),
			DB:           utils.EnvInt("REDIS_DB", 0),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
		}

		p.rdb = rdb
		logger.Info("Redis denylist enabled", zap.String("addr", addr), zap.String("set", restrictedSetKey))
	}

	logger.Info("Access policy initialized", zap.Int("local_entries", len(local)))
	return p, nil
}

// Check returns ErrRestricted when the address is denied. Redis failures
// fail open with a warning: availability of public data wins over a
// best-effort denylist hop.
func (p *Policy) Check(ctx context.Context, raw string) error {
	key := normalize(raw)
	if key == "" {
		return nil
	}

	if _, ok := p.local[key]; ok {
		return ErrRestricted
	}

	if p.rdb != nil {
		member, err := p.rdb.SIsMember(ctx, restrictedSetKey, key).Result()
		if err != nil {
			p.logger.Warn("Denylist lookup failed, allowing", zap.Error(err))
			return nil
		}
		if member {
			return ErrRestricted
		}
	}

	return nil
}

// Close releases the Redis connection if one was opened.
func (p *Policy) Close() error {
	if p.rdb != nil {
		return p.rdb.Close()
	}
	return nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0x")
	if s == "" {
		return ""
	}
	return "0x" + s
}
