package ctdf

import "time"

// BusAssignment says that the passengers of a bus journey can catch a specific ferry
type BusAssignment struct {
	Name        string `groups:"basic,detailed" json:"name" csv:"bus"`
	Origin      string `groups:"basic,detailed" json:"origin" csv:"origin"`
	Destination string `groups:"basic,detailed" json:"destination" csv:"destination"`

	Dep string `groups:"basic,detailed" json:"dep" csv:"dep"`
	Arr string `groups:"basic,detailed" json:"arr" csv:"arr"`

	FirstPossible bool `groups:"basic,detailed" json:"first_possible" csv:"first_possible"`

	JourneyIndex  int       `groups:"detailed" json:"journey_index" csv:"-"`
	DepartureTime time.Time `groups:"detailed" json:"departure_time" csv:"-"`
	ArrivalTime   time.Time `groups:"detailed" json:"arrival_time" csv:"-"`
	FerryTime     time.Time `groups:"detailed" json:"ferry_time" csv:"-"`
	TravelTime    string    `groups:"detailed" json:"duration" csv:"-"`
}

// FerryBoard lists every bus that connects to a single ferry departure
type FerryBoard struct {
	Departure FerryDeparture `json:"-"`

	FerryDep string           `groups:"basic,detailed" json:"ferry_dep"`
	Buses    []*BusAssignment `groups:"basic,detailed" json:"buses"`
}

func NewFerryBoard(departure FerryDeparture) *FerryBoard {
	return &FerryBoard{
		Departure: departure,
		FerryDep:  departure.String(),
		Buses:     []*BusAssignment{},
	}
}

// FerryBoardRow is the flattened form of a board entry used for tabular exports
type FerryBoardRow struct {
	FerryDep string `csv:"ferry_dep"`

	BusAssignment
}

func FlattenFerryBoards(boards []*FerryBoard) []*FerryBoardRow {
	var rows []*FerryBoardRow

	for _, board := range boards {
		for _, bus := range board.Buses {
			rows = append(rows, &FerryBoardRow{
				FerryDep:      board.FerryDep,
				BusAssignment: *bus,
			})
		}
	}

	return rows
}
