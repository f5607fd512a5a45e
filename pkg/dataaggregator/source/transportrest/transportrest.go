package transportrest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
)

const DefaultBaseURL = "https://v6.db.transport.rest"
const DefaultJourneyCount = 50

// Products that are switched off when only bus journeys are requested
var nonBusProducts = []string{
	"nationalExpress", "national", "regionalExpress", "regional", "suburban", "ferry", "subway", "tram", "taxi",
}

// Source talks to a transport.rest (hafas-rest-api) instance
type Source struct {
	BaseURL string
	BusOnly bool

	Client *http.Client
}

func NewSource(baseURL string) Source {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return Source{
		BaseURL: baseURL,
		BusOnly: true,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (s Source) GetName() string {
	return "transport.rest API"
}

func (s Source) Supports() []reflect.Type {
	return []reflect.Type{
		reflect.TypeOf(ctdf.Stop{}),
		reflect.TypeOf([]*ctdf.JourneyRecord{}),
	}
}

func (s Source) Lookup(q any) (interface{}, error) {
	switch q.(type) {
	case query.Stop:
		return s.StopQuery(q.(query.Stop))
	case query.Journeys:
		return s.JourneysQuery(q.(query.Journeys))
	default:
		return nil, source.UnsupportedSourceError
	}
}

func (s Source) get(path string, params url.Values, target any) error {
	requestURL := fmt.Sprintf("%s%s?%s", s.BaseURL, path, params.Encode())

	req, err := http.NewRequest("GET", requestURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "ferrybus")
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	startTime := time.Now()

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(startTime).String()).
		Msg("transport.rest request")

	byteValue, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return json.Unmarshal(byteValue, target)
}
