package connections

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/ferrybus/pkg/ctdf"
)

// Assemble groups the assignments of every journey under their ferry departure.
// There is one board per scheduled departure, including empty ones, in schedule order.
// Within a board buses keep the order of the journeys they came from.
func Assemble(schedule []ctdf.FerryDeparture, journeyAssignments [][]Assignment) []*ctdf.FerryBoard {
	boards := make([]*ctdf.FerryBoard, 0, len(schedule))
	boardsByDeparture := map[ctdf.FerryDeparture]*ctdf.FerryBoard{}

	for _, departure := range schedule {
		board := ctdf.NewFerryBoard(departure)

		boards = append(boards, board)
		boardsByDeparture[departure] = board
	}

	for _, assignments := range journeyAssignments {
		for _, assignment := range assignments {
			board, exists := boardsByDeparture[assignment.Departure]
			if !exists {
				log.Warn().Str("departure", assignment.Departure.String()).Msg("Assignment for a ferry outside the schedule")
				continue
			}

			board.Buses = append(board.Buses, assignment.Bus)
		}
	}

	return boards
}
