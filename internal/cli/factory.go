package cli

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/hardikgohil73253/SEP-D3/internal/config"
	"github.com/hardikgohil73253/SEP-D3/pkg/adapters/file"
	"github.com/hardikgohil73253/SEP-D3/pkg/adapters/memory"
	"github.com/hardikgohil73253/SEP-D3/pkg/adapters/redis"
	"github.com/hardikgohil73253/SEP-D3/pkg/domain"
	"github.com/hardikgohil73253/SEP-D3/pkg/persistence/middleware"
	"github.com/hardikgohil73253/SEP-D3/pkg/ports"
)

// BuildHistoryStore constructs the history backend named by cfg and
// wraps it in the configured middleware. The returned closer releases
// backend resources and is safe to call for backends that hold none.
// A nil store with a nil error means history is disabled.
func BuildHistoryStore(cfg config.HistoryConfig) (ports.HistoryStore, func() error, error) {
	noop := func() error { return nil }

	var store ports.HistoryStore
	closer := noop

	switch cfg.Backend {
	case "", "none":
		return nil, noop, nil
	case "memory":
		var opts []memory.Option
		if cfg.Limit > 0 {
			opts = append(opts, memory.WithLimit(cfg.Limit))
		}
		store = memory.NewStore(opts...)
	case "file":
		var opts []file.Option
		if cfg.Limit > 0 {
			opts = append(opts, file.WithLimit(cfg.Limit))
		}
		store = file.New(cfg.Path, opts...)
	case "redis":
		var opts []redis.Option
		if cfg.Limit > 0 {
			opts = append(opts, redis.WithLimit(cfg.Limit))
		}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		if cfg.Redis.TTL != "" {
			ttl, err := time.ParseDuration(cfg.Redis.TTL)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid history.redis.ttl %q: %w", cfg.Redis.TTL, err)
			}
			opts = append(opts, redis.WithTTL(ttl))
		}
		rs := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		store = rs
		closer = rs.Close
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q (want memory, file or redis)", cfg.Backend)
	}

	chain, err := historyMiddleware(cfg)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	return middleware.Chain(store, chain...), closer, nil
}

// historyMiddleware translates config into the middleware chain. The
// outcome filter sits before encryption so dropped records are never
// encrypted at all.
func historyMiddleware(cfg config.HistoryConfig) ([]middleware.Middleware, error) {
	var chain []middleware.Middleware

	switch cfg.Record {
	case "", "all":
	case "ok":
		chain = append(chain, middleware.NewOutcomeFilter(domain.OutcomeOK))
	default:
		return nil, fmt.Errorf("unknown history.record %q (want all or ok)", cfg.Record)
	}

	if cfg.EncryptionKey != "" {
		key, err := hex.DecodeString(cfg.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid history.encryption_key: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("history.encryption_key must be 64 hex characters (32 bytes), got %d bytes", len(key))
		}
		chain = append(chain, middleware.NewEncryption(middleware.EncryptionConfig{ActiveKey: key}))
	}
	return chain, nil
}
