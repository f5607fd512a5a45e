package cachedresults

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
)

type countingSource struct {
	calls   int
	records []*ctdf.JourneyRecord
	err     error
}

func (c *countingSource) GetName() string {
	return "Counting"
}

func (c *countingSource) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Stop{}),
		reflect.TypeOf([]*ctdf.JourneyRecord{}),
	}
}

func (c *countingSource) Lookup(q any) (interface{}, error) {
	c.calls++

	switch q.(type) {
	case query.Journeys:
		if c.err != nil {
			return nil, c.err
		}
		return c.records, nil
	case query.Stop:
		return &ctdf.Stop{PrimaryIdentifier: "8029130"}, nil
	}

	return nil, source.UnsupportedSourceError
}

func newCachedSource(t *testing.T, upstream dataaggregator.DataSource) *Source {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return NewSource(upstream, client, time.Minute)
}

func journeysQuery() query.Journeys {
	return query.Journeys{
		OriginStop:      &ctdf.Stop{PrimaryIdentifier: "8029130"},
		DestinationStop: &ctdf.Stop{PrimaryIdentifier: "8029002"},
		Count:           50,
		DepartureTime:   time.Date(2025, 6, 2, 8, 0, 30, 0, time.UTC),
	}
}

func TestJourneysAreCached(t *testing.T) {
	upstream := &countingSource{
		records: []*ctdf.JourneyRecord{
			{Legs: []*ctdf.JourneyLeg{{LineName: "Bus 4", Departure: "2025-06-02T08:00:00Z", Arrival: "2025-06-02T09:00:00Z"}}},
		},
	}
	cached := newCachedSource(t, upstream)

	first, err := cached.JourneysQuery(journeysQuery())
	require.NoError(t, err)

	second, err := cached.JourneysQuery(journeysQuery())
	require.NoError(t, err)

	assert.Equal(t, 1, upstream.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, "Bus 4", second[0].Legs[0].LineName)

	other := journeysQuery()
	other.DestinationStop = &ctdf.Stop{PrimaryIdentifier: "8000000"}
	_, err = cached.JourneysQuery(other)
	require.NoError(t, err)
	assert.Equal(t, 2, upstream.calls)
}

func TestUpstreamErrorsAreNotCached(t *testing.T) {
	upstream := &countingSource{err: &source.SourceError{Operation: "journeys", Err: errors.New("down")}}
	cached := newCachedSource(t, upstream)

	_, err := cached.JourneysQuery(journeysQuery())
	var sourceError *source.SourceError
	assert.True(t, errors.As(err, &sourceError))

	_, err = cached.JourneysQuery(journeysQuery())
	assert.Error(t, err)
	assert.Equal(t, 2, upstream.calls)
}

func TestStopLookupsBypassCache(t *testing.T) {
	upstream := &countingSource{}
	cached := newCachedSource(t, upstream)

	aggregator := &dataaggregator.Aggregator{}
	aggregator.RegisterSource(cached)
	aggregator.RegisterSource(upstream)

	_, err := cached.Lookup(query.Stop{Name: "Allmannsdorf"})
	assert.ErrorIs(t, err, source.UnsupportedSourceError)

	stop, err := dataaggregator.LookupFrom[*ctdf.Stop](aggregator, query.Stop{Name: "Allmannsdorf"})
	require.NoError(t, err)
	assert.Equal(t, "8029130", stop.PrimaryIdentifier)
	assert.Equal(t, 1, upstream.calls)
}

func TestJourneysCacheKey(t *testing.T) {
	q := journeysQuery()

	assert.Equal(t, "ferrybus:journeys:8029130:8029002:50:2025-06-02T08:00:00Z", journeysCacheKey(q))
	assert.Equal(t, "ferrybus:journeys:::0:", journeysCacheKey(query.Journeys{}))
}
