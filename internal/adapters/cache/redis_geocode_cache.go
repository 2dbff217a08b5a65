package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/platform/obs"
)

const (
	redisKeyPrefix = "geocode:"
	redisTTL       = 30 * 24 * time.Hour
)

// RedisGeocodeCache is a Redis-backed variant of the geocode cache.
// Values are stored as "lon,lat" strings under a geocode: prefix.
type RedisGeocodeCache struct {
	Client *redis.Client
}

func NewRedisGeocodeCache(client *redis.Client) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client}
}

// Fetch cached coordinates for the given queries via a single MGET.
func (r *RedisGeocodeCache) GetMany(
	ctx context.Context,
	queries []string,
) (_ map[string]domain.Coordinates, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := dedupe(queries)
	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	keys := make([]string, 0, len(uniq))
	for _, q := range uniq {
		keys = append(keys, redisKeyPrefix+q)
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: mget: %w", err)
	}

	out := make(map[string]domain.Coordinates, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue // miss
		}
		coord, err := parseCoordValue(s)
		if err != nil {
			// Unreadable entries are treated as misses, not failures.
			continue
		}
		out[uniq[i]] = coord
	}

	return out, nil
}

// Store query -> coordinate mappings with a TTL.
func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.Coordinates) error {
	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for q, c := range results {
		if strings.TrimSpace(q) == "" {
			return errors.New("insert geocode cache: empty query key")
		}
		val := fmt.Sprintf("%s,%s",
			strconv.FormatFloat(c.Lon, 'f', -1, 64),
			strconv.FormatFloat(c.Lat, 'f', -1, 64),
		)
		pipe.Set(ctx, redisKeyPrefix+q, val, redisTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: pipeline exec: %w", err)
	}

	return nil
}

func parseCoordValue(s string) (domain.Coordinates, error) {
	lonStr, latStr, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Coordinates{}, fmt.Errorf("malformed cache value %q", s)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon %q: %w", lonStr, err)
	}
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat %q: %w", latStr, err)
	}
	return domain.Coordinates{Lon: lon, Lat: lat}, nil
}
