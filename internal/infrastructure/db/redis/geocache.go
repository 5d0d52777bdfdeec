package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultGeoTTL = time.Hour

// GeoCache stores GeoServer WFS responses keyed by year.
// Key format: geojson:cities:<year>
type GeoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGeoCache creates a GeoCache wrapping the given Redis client. A
// non-positive ttl falls back to one hour.
func NewGeoCache(client *redis.Client, ttl time.Duration) *GeoCache {
	if ttl <= 0 {
		ttl = defaultGeoTTL
	}
	return &GeoCache{client: client, ttl: ttl}
}

// Get returns the cached payload for year, or ok=false on a miss.
func (g *GeoCache) Get(ctx context.Context, year int) ([]byte, bool, error) {
	payload, err := g.client.Get(ctx, g.key(year)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("geo cache get: %w", err)
	}
	return payload, true, nil
}

// Set stores the payload for year (expires after the configured TTL).
func (g *GeoCache) Set(ctx context.Context, year int, payload []byte) error {
	return g.client.Set(ctx, g.key(year), payload, g.ttl).Err()
}

func (g *GeoCache) key(year int) string {
	return fmt.Sprintf("geojson:cities:%d", year)
}
