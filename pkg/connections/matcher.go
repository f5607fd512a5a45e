package connections

import (
	"time"

	"github.com/jinzhu/copier"
	"github.com/travigo/ferrybus/pkg/ctdf"
)

// Assignment pairs a bus with one of the ferry departures it can reach
type Assignment struct {
	Departure ctdf.FerryDeparture
	Bus       *ctdf.BusAssignment
}

type Matcher struct {
	Schedule      []ctdf.FerryDeparture
	MinTravelTime time.Duration
}

// IsFeasible reports whether the journeys passengers can catch the ferry.
// The ferry is always pinned to the calendar day of the bus departure, so a journey
// crossing midnight never reaches a ferry on the following day. A departure whose wall
// clock time does not exist on that day never sails.
func (m *Matcher) IsFeasible(journey *ctdf.Journey, departure ctdf.FerryDeparture) bool {
	ferryTime, ok := departure.On(journey.DepartureTime)
	if !ok {
		return false
	}

	return !ferryTime.Before(journey.DepartureTime) && !ferryTime.Add(m.MinTravelTime).After(journey.ArrivalTime)
}

func (m *Matcher) FeasibleDepartures(journey *ctdf.Journey) []ctdf.FerryDeparture {
	var feasible []ctdf.FerryDeparture

	for _, departure := range m.Schedule {
		if m.IsFeasible(journey, departure) {
			feasible = append(feasible, departure)
		}
	}

	return feasible
}

// Match returns one assignment per feasible ferry departure, in schedule order.
// Only the chronologically earliest of them is flagged as the first possible ferry.
func (m *Matcher) Match(journey *ctdf.Journey) ([]Assignment, error) {
	feasible := m.FeasibleDepartures(journey)
	if len(feasible) == 0 {
		return nil, nil
	}

	earliest := feasible[0]
	for _, departure := range feasible[1:] {
		if departure.Before(earliest) {
			earliest = departure
		}
	}

	assignments := make([]Assignment, 0, len(feasible))

	for _, departure := range feasible {
		bus, err := newBusAssignment(journey, departure, departure == earliest)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, Assignment{
			Departure: departure,
			Bus:       bus,
		})
	}

	return assignments, nil
}

func newBusAssignment(journey *ctdf.Journey, departure ctdf.FerryDeparture, firstPossible bool) (*ctdf.BusAssignment, error) {
	bus := &ctdf.BusAssignment{}
	if err := copier.Copy(bus, journey); err != nil {
		return nil, err
	}

	ferryTime, _ := departure.On(journey.DepartureTime)

	bus.Dep = journey.DepartureTime.Format(ctdf.FerryTimeFormat)
	bus.Arr = journey.ArrivalTime.Format(ctdf.FerryTimeFormat)
	bus.FirstPossible = firstPossible
	bus.JourneyIndex = journey.Index
	bus.FerryTime = ferryTime
	bus.TravelTime = journey.FormatDuration()

	return bus, nil
}
