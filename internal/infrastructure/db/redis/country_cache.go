package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

const countryCacheTTL = time.Hour

// CountryCache is a read-through cache in front of the country master table.
// Country rows are read-only reference data, so a stale window of one hour is
// acceptable. Cache failures degrade to the wrapped repository; a broken
// Redis never breaks a listing request.
type CountryCache struct {
	client *redis.Client
	inner  ports.CountryRepository
	logger zerolog.Logger
}

func NewCountryCache(client *redis.Client, inner ports.CountryRepository, logger zerolog.Logger) *CountryCache {
	return &CountryCache{client: client, inner: inner, logger: logger}
}

func (c *CountryCache) FindByCode(ctx context.Context, code string) (*domain.Country, error) {
	key := c.key(code)

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var country domain.Country
		if jsonErr := json.Unmarshal([]byte(raw), &country); jsonErr == nil {
			return &country, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn().Err(err).Str("code", code).Msg("country cache read failed")
	}

	country, err := c.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(country); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, encoded, countryCacheTTL).Err(); setErr != nil {
			c.logger.Warn().Err(setErr).Str("code", code).Msg("country cache write failed")
		}
	}

	return country, nil
}

// Create writes through to the underlying repository and drops any cached
// entry for the code.
func (c *CountryCache) Create(ctx context.Context, country *domain.Country) (*domain.Country, error) {
	created, err := c.inner.Create(ctx, country)
	if err != nil {
		return nil, err
	}
	if delErr := c.client.Del(ctx, c.key(created.Code)).Err(); delErr != nil {
		c.logger.Warn().Err(delErr).Str("code", created.Code).Msg("country cache invalidation failed")
	}
	return created, nil
}

func (c *CountryCache) key(code string) string {
	return fmt.Sprintf("country:%s", code)
}
