package transportrest

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
)

const journeysJSON = `{
	"journeys": [
		{
			"legs": [
				{
					"origin": {"id": "8029130", "name": "Allmannsdorf, Konstanz"},
					"destination": {"id": "8029000", "name": "Staad, Konstanz"},
					"departure": "2025-06-02T08:00:00+02:00",
					"arrival": "2025-06-02T08:12:00+02:00",
					"line": {"name": "Bus 4", "mode": "bus", "productName": "Bus"}
				},
				{
					"origin": {"id": "8029000", "name": "Staad, Konstanz"},
					"destination": {"id": "8029001", "name": "Fährhafen, Meersburg"},
					"departure": "2025-06-02T08:15:00+02:00",
					"arrival": "2025-06-02T08:35:00+02:00",
					"walking": true
				},
				{
					"origin": {"id": "8029001", "name": "Fährhafen, Meersburg"},
					"destination": {"id": "8029002", "name": "Kirche, Meersburg"},
					"departure": "2025-06-02T08:40:00+02:00",
					"arrival": "2025-06-02T08:47:00+02:00",
					"line": {"name": "Bus 7395", "mode": "bus"}
				}
			]
		},
		{
			"legs": [
				{
					"origin": {"name": "Allmannsdorf, Konstanz"},
					"destination": {"name": "Kirche, Meersburg"},
					"departure": null,
					"arrival": "2025-06-02T09:47:00+02:00",
					"mode": "bus"
				}
			]
		}
	]
}`

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/locations", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("results"))

		switch r.URL.Query().Get("query") {
		case "Allmannsdorf, Konstanz":
			w.Write([]byte(`[{"type": "stop", "id": "8029130", "name": "Allmannsdorf, Konstanz", "location": {"latitude": 47.68, "longitude": 9.19}}]`))
		case "Broken":
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.Write([]byte(`[]`))
		}
	})

	mux.HandleFunc("/journeys", func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()

		assert.Equal(t, "8029130", params.Get("from"))
		assert.Equal(t, "true", params.Get("bus"))
		assert.Equal(t, "false", params.Get("ferry"))

		if params.Get("to") == "garbage" {
			w.Write([]byte(`{"journeys": [`))
			return
		}

		assert.Equal(t, "8029002", params.Get("to"))
		assert.Equal(t, "50", params.Get("results"))
		assert.Equal(t, "2025-06-02T08:00:00Z", params.Get("departure"))

		w.Write([]byte(journeysJSON))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func TestStopQuery(t *testing.T) {
	server := newTestServer(t)
	s := NewSource(server.URL)

	stop, err := s.StopQuery(query.Stop{Name: "Allmannsdorf, Konstanz"})
	require.NoError(t, err)

	assert.Equal(t, "8029130", stop.PrimaryIdentifier)
	assert.Equal(t, "Allmannsdorf, Konstanz", stop.PrimaryName)
	assert.Equal(t, "Allmannsdorf, Konstanz", stop.Query)
	require.NotNil(t, stop.Location)
	assert.Equal(t, 47.68, stop.Location.Latitude)
}

func TestStopQueryErrors(t *testing.T) {
	server := newTestServer(t)
	s := NewSource(server.URL)

	var resolutionError *source.ResolutionError
	var sourceError *source.SourceError

	_, err := s.StopQuery(query.Stop{Name: "Atlantis"})
	assert.True(t, errors.As(err, &resolutionError))
	assert.Equal(t, "Atlantis", resolutionError.Name)

	_, err = s.StopQuery(query.Stop{Name: "  "})
	assert.True(t, errors.As(err, &resolutionError))

	_, err = s.StopQuery(query.Stop{Name: "Broken"})
	assert.True(t, errors.As(err, &sourceError))
	assert.Equal(t, "locations", sourceError.Operation)
}

func TestJourneysQuery(t *testing.T) {
	server := newTestServer(t)
	s := NewSource(server.URL)

	records, err := s.JourneysQuery(query.Journeys{
		OriginStop:      &ctdf.Stop{PrimaryIdentifier: "8029130"},
		DestinationStop: &ctdf.Stop{PrimaryIdentifier: "8029002"},
		DepartureTime:   time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	legs := records[0].Legs
	require.Len(t, legs, 3)
	assert.Equal(t, "Bus 4", legs[0].LineName)
	assert.Equal(t, "bus", legs[0].Mode)
	assert.Equal(t, "Allmannsdorf, Konstanz", legs[0].OriginName)
	assert.Equal(t, "2025-06-02T08:00:00+02:00", legs[0].Departure)
	assert.Equal(t, "walking", legs[1].Mode)
	assert.Equal(t, "Kirche, Meersburg", legs[2].DestinationName)
	assert.Equal(t, "2025-06-02T08:47:00+02:00", legs[2].Arrival)

	assert.Equal(t, "", records[1].Legs[0].Departure)
	assert.Equal(t, "bus", records[1].Legs[0].Mode)

	_, err = ctdf.NewJourney(1, records[1], time.UTC)
	var malformed *ctdf.MalformedJourneyError
	assert.True(t, errors.As(err, &malformed))
}

func TestJourneysQueryErrors(t *testing.T) {
	server := newTestServer(t)
	s := NewSource(server.URL)

	var sourceError *source.SourceError

	_, err := s.JourneysQuery(query.Journeys{
		OriginStop:      &ctdf.Stop{PrimaryIdentifier: "8029130"},
		DestinationStop: &ctdf.Stop{PrimaryIdentifier: "garbage"},
	})
	require.True(t, errors.As(err, &sourceError))
	assert.Equal(t, "journeys", sourceError.Operation)

	_, err = s.JourneysQuery(query.Journeys{})
	assert.True(t, errors.As(err, &sourceError))

	unreachable := NewSource("http://127.0.0.1:1")
	_, err = unreachable.JourneysQuery(query.Journeys{
		OriginStop:      &ctdf.Stop{PrimaryIdentifier: "8029130"},
		DestinationStop: &ctdf.Stop{PrimaryIdentifier: "8029002"},
	})
	assert.True(t, errors.As(err, &sourceError))
}

func TestLookupThroughAggregator(t *testing.T) {
	server := newTestServer(t)

	aggregator := &dataaggregator.Aggregator{}
	aggregator.RegisterSource(NewSource(server.URL))

	stop, err := dataaggregator.LookupFrom[*ctdf.Stop](aggregator, query.Stop{Name: "Allmannsdorf, Konstanz"})
	require.NoError(t, err)
	assert.Equal(t, "8029130", stop.PrimaryIdentifier)

	_, err = dataaggregator.LookupFrom[*ctdf.Stop](aggregator, query.Journeys{})
	assert.Error(t, err)

	_, err = dataaggregator.LookupFrom[*ctdf.FerryBoard](aggregator, query.Stop{Name: "x"})
	assert.ErrorIs(t, err, dataaggregator.NoMatchingSourceError)
}
