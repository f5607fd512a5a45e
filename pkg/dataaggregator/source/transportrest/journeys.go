package transportrest

import (
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
)

func (s Source) JourneysQuery(q query.Journeys) ([]*ctdf.JourneyRecord, error) {
	if q.OriginStop == nil || q.DestinationStop == nil {
		return nil, &source.SourceError{Operation: "journeys", Err: errors.New("origin and destination stops are required")}
	}

	count := q.Count
	if count <= 0 {
		count = DefaultJourneyCount
	}

	params := url.Values{}
	params.Set("from", q.OriginStop.PrimaryIdentifier)
	params.Set("to", q.DestinationStop.PrimaryIdentifier)
	params.Set("results", strconv.Itoa(count))
	params.Set("remarks", "false")
	params.Set("polylines", "false")
	params.Set("tickets", "false")

	if !q.DepartureTime.IsZero() {
		params.Set("departure", q.DepartureTime.Format(time.RFC3339))
	}

	if s.BusOnly {
		params.Set("bus", "true")
		for _, product := range nonBusProducts {
			params.Set(product, "false")
		}
	}

	var response journeysResponse
	if err := s.get("/journeys", params, &response); err != nil {
		return nil, &source.SourceError{Operation: "journeys", Err: err}
	}

	if response.Journeys == nil {
		return nil, &source.SourceError{Operation: "journeys", Err: errors.New("response has no journeys")}
	}

	records := make([]*ctdf.JourneyRecord, 0, len(response.Journeys))
	for _, journey := range response.Journeys {
		records = append(records, journey.toJourneyRecord())
	}

	return records, nil
}
