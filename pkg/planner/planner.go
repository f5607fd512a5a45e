package planner

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/connections"
	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
)

type Request struct {
	From string
	To   string

	DepartureTime time.Time
	Count         int
}

type Result struct {
	OriginStop      *ctdf.Stop
	DestinationStop *ctdf.Stop

	DepartureTime time.Time

	// Location the ferries on Board were pinned in
	Location *time.Location

	Board *connections.Board
}

// Planner resolves both places, fetches the bus journeys between them and matches them
// against the ferry schedule
type Planner struct {
	Builder *connections.Builder

	// Uses the global aggregator when nil
	Aggregator *dataaggregator.Aggregator
}

func (p *Planner) aggregator() *dataaggregator.Aggregator {
	if p.Aggregator == nil {
		return &dataaggregator.GlobalAggregator
	}

	return p.Aggregator
}

func (p *Planner) Plan(request Request) (*Result, error) {
	originStop, err := dataaggregator.LookupFrom[*ctdf.Stop](p.aggregator(), query.Stop{Name: request.From})
	if err != nil {
		return nil, err
	}

	destinationStop, err := dataaggregator.LookupFrom[*ctdf.Stop](p.aggregator(), query.Stop{Name: request.To})
	if err != nil {
		return nil, err
	}

	records, err := dataaggregator.LookupFrom[[]*ctdf.JourneyRecord](p.aggregator(), query.Journeys{
		OriginStop:      originStop,
		DestinationStop: destinationStop,
		Count:           request.Count,
		DepartureTime:   request.DepartureTime,
	})
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("origin", originStop.PrimaryIdentifier).
		Str("destination", destinationStop.PrimaryIdentifier).
		Int("journeys", len(records)).
		Msg("Fetched bus journeys")

	return &Result{
		OriginStop:      originStop,
		DestinationStop: destinationStop,
		DepartureTime:   request.DepartureTime,
		Location:        p.Builder.Location,
		Board:           p.Builder.Build(records),
	}, nil
}
