package connections

import (
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/iter"
	"github.com/travigo/ferrybus/pkg/ctdf"
)

type Board struct {
	Ferries []*ctdf.FerryBoard

	// Records that were skipped because they couldnt be turned into a journey
	Rejected []*ctdf.MalformedJourneyError
}

// Served returns only the ferries that at least one bus connects to
func (b *Board) Served() []*ctdf.FerryBoard {
	served := []*ctdf.FerryBoard{}

	for _, ferry := range b.Ferries {
		if len(ferry.Buses) > 0 {
			served = append(served, ferry)
		}
	}

	return served
}

type matchResult struct {
	assignments []Assignment
	err         error
}

type Builder struct {
	Matcher  *Matcher
	Location *time.Location
}

func NewBuilder(config Config) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	location, err := config.Location()
	if err != nil {
		return nil, err
	}

	return &Builder{
		Matcher: &Matcher{
			Schedule:      GenerateFerrySchedule(config.FerryMinutes),
			MinTravelTime: config.MinTravelTime(),
		},
		Location: location,
	}, nil
}

// Build matches every record against the ferry schedule. Malformed records are skipped and
// reported in Board.Rejected, the rest of the batch is still matched.
func (b *Builder) Build(records []*ctdf.JourneyRecord) *Board {
	board := &Board{
		Rejected: []*ctdf.MalformedJourneyError{},
	}

	var journeys []*ctdf.Journey

	for index, record := range records {
		journey, err := ctdf.NewJourney(index, record, b.Location)
		if err != nil {
			var malformed *ctdf.MalformedJourneyError
			if !errors.As(err, &malformed) {
				malformed = &ctdf.MalformedJourneyError{Index: index, Reason: err.Error(), Err: err}
			}

			log.Warn().Int("index", malformed.Index).Str("reason", malformed.Reason).Msg("Skipping malformed journey")
			board.Rejected = append(board.Rejected, malformed)
			continue
		}

		journeys = append(journeys, journey)
	}

	results := iter.Map(journeys, func(journey **ctdf.Journey) matchResult {
		assignments, err := b.Matcher.Match(*journey)
		return matchResult{assignments: assignments, err: err}
	})

	journeyAssignments := make([][]Assignment, 0, len(results))

	for i, result := range results {
		if result.err != nil {
			malformed := &ctdf.MalformedJourneyError{
				Index:  journeys[i].Index,
				Reason: "could not build bus assignment",
				Err:    result.err,
			}

			log.Warn().Err(result.err).Int("index", malformed.Index).Msg("Skipping unmatchable journey")
			board.Rejected = append(board.Rejected, malformed)
			continue
		}

		journeyAssignments = append(journeyAssignments, result.assignments)
	}

	board.Ferries = Assemble(b.Matcher.Schedule, journeyAssignments)

	log.Debug().
		Int("records", len(records)).
		Int("journeys", len(journeys)).
		Int("rejected", len(board.Rejected)).
		Msg("Built ferry board")

	return board
}
