package cachedresults

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	redisstore "github.com/eko/gocache/store/redis/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
)

const DefaultExpiration = 2 * time.Minute

// Source caches journey planner responses in Redis in front of an upstream source.
// Stop lookups are never cached and go straight upstream.
type Source struct {
	Upstream dataaggregator.DataSource

	Cache *cache.Cache[string]
}

func NewSource(upstream dataaggregator.DataSource, client *redis.Client, expiration time.Duration) *Source {
	redisStore := redisstore.NewRedis(client, store.WithExpiration(expiration))

	return &Source{
		Upstream: upstream,
		Cache:    cache.New[string](redisStore),
	}
}

func (s *Source) GetName() string {
	return fmt.Sprintf("Cached %s", s.Upstream.GetName())
}

func (s *Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf([]*ctdf.JourneyRecord{}),
	}
}

func (s *Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Journeys:
		return s.JourneysQuery(q.(query.Journeys))
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s *Source) JourneysQuery(q query.Journeys) ([]*ctdf.JourneyRecord, error) {
	ctx := context.Background()
	cacheKey := journeysCacheKey(q)

	if cachedValue, err := s.Cache.Get(ctx, cacheKey); err == nil && cachedValue != "" {
		var records []*ctdf.JourneyRecord
		if err := json.Unmarshal([]byte(cachedValue), &records); err == nil {
			log.Debug().Str("key", cacheKey).Msg("Journeys served from cache")
			return records, nil
		}
	}

	upstreamValue, err := s.Upstream.Lookup(q)
	if err != nil {
		return nil, err
	}

	records, ok := upstreamValue.([]*ctdf.JourneyRecord)
	if !ok {
		return nil, &source.SourceError{Operation: "journeys", Err: fmt.Errorf("upstream returned %T", upstreamValue)}
	}

	if recordsJSON, err := json.Marshal(records); err == nil {
		if err := s.Cache.Set(ctx, cacheKey, string(recordsJSON)); err != nil {
			log.Error().Err(err).Str("key", cacheKey).Msg("Failed to cache journeys")
		}
	}

	return records, nil
}

func journeysCacheKey(q query.Journeys) string {
	var origin, destination string
	if q.OriginStop != nil {
		origin = q.OriginStop.PrimaryIdentifier
	}
	if q.DestinationStop != nil {
		destination = q.DestinationStop.PrimaryIdentifier
	}

	departure := ""
	if !q.DepartureTime.IsZero() {
		departure = q.DepartureTime.UTC().Truncate(time.Minute).Format(time.RFC3339)
	}

	return fmt.Sprintf("ferrybus:journeys:%s:%s:%d:%s", origin, destination, q.Count, departure)
}
