// Package cache implements the ListingCache domain service over Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bizconnect/config"
	"bizconnect/internal/domain/entity"
	"bizconnect/internal/domain/lifecycle"
	"bizconnect/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	approvedUMKMKey   = "bizconnect:umkm:approved"
	defaultListingTTL = 5 * time.Minute
)

// redisListingCache caches the public approved-store listing JSON in Redis.
// Any backend failure is logged and treated as a miss.
type redisListingCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// noopListingCache is used when Redis is not configured. Reads fall through
// to the database.
type noopListingCache struct{}

func (noopListingCache) GetApprovedUMKM(context.Context) ([]entity.UMKM, bool) { return nil, false }
func (noopListingCache) SetApprovedUMKM(context.Context, []entity.UMKM)        {}
func (noopListingCache) InvalidateApprovedUMKM(context.Context)                {}

// Params holds dependencies for the listing cache, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewListingCache creates a ListingCache backed by Redis when configured,
// or a pass-through otherwise.
func NewListingCache(params Params) (service.ListingCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, listing cache disabled")

		return noopListingCache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultListingTTL
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisListingCache{
		client: client,
		ttl:    ttl,
		logger: params.Logger,
	}, nil
}

// GetApprovedUMKM returns the cached listing, if any.
func (c *redisListingCache) GetApprovedUMKM(ctx context.Context) ([]entity.UMKM, bool) {
	payload, err := c.client.Get(ctx, approvedUMKMKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "Listing cache read failed", slog.String("error", err.Error()))
		}

		return nil, false
	}

	var listing []entity.UMKM
	if err := json.Unmarshal(payload, &listing); err != nil {
		c.logger.WarnContext(ctx, "Listing cache payload corrupt, dropping", slog.String("error", err.Error()))
		c.InvalidateApprovedUMKM(ctx)

		return nil, false
	}

	return listing, true
}

// SetApprovedUMKM stores the listing with the configured TTL.
func (c *redisListingCache) SetApprovedUMKM(ctx context.Context, listing []entity.UMKM) {
	payload, err := json.Marshal(listing)
	if err != nil {
		c.logger.WarnContext(ctx, "Listing cache marshal failed", slog.String("error", err.Error()))

		return
	}

	if err := c.client.Set(ctx, approvedUMKMKey, payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "Listing cache write failed", slog.String("error", err.Error()))
	}
}

// InvalidateApprovedUMKM drops the cached listing after admin mutations.
func (c *redisListingCache) InvalidateApprovedUMKM(ctx context.Context) {
	if err := c.client.Del(ctx, approvedUMKMKey).Err(); err != nil {
		c.logger.WarnContext(ctx, "Listing cache invalidation failed", slog.String("error", err.Error()))
	}
}
