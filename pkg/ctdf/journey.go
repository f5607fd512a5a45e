package ctdf

import (
	"fmt"
	"time"
)

const DefaultJourneyName = "Bus"

// JourneyRecord is a journey as returned by a journey planner, before it has been validated
type JourneyRecord struct {
	Legs []*JourneyLeg
}

type JourneyLeg struct {
	Mode     string
	LineName string

	OriginName      string
	DestinationName string

	// RFC3339 timestamps, empty when the planner didnt provide one
	Departure string
	Arrival   string
}

// Journey is a validated bus trip reduced to its first and last leg
type Journey struct {
	Index int

	Name        string
	Origin      string
	Destination string

	DepartureTime time.Time
	ArrivalTime   time.Time
}

// NewJourney validates a record and reduces it to a Journey. Intermediate legs are ignored.
// Timestamps are converted into location so date pinning and formatting happen there.
func NewJourney(index int, record *JourneyRecord, location *time.Location) (*Journey, error) {
	if record == nil || len(record.Legs) == 0 {
		return nil, &MalformedJourneyError{Index: index, Reason: "journey has no legs"}
	}

	firstLeg := record.Legs[0]
	lastLeg := record.Legs[len(record.Legs)-1]

	if firstLeg == nil || lastLeg == nil {
		return nil, &MalformedJourneyError{Index: index, Reason: "journey has an empty leg"}
	}

	if firstLeg.Departure == "" {
		return nil, &MalformedJourneyError{Index: index, Reason: "first leg has no departure time"}
	}
	if lastLeg.Arrival == "" {
		return nil, &MalformedJourneyError{Index: index, Reason: "last leg has no arrival time"}
	}

	departureTime, err := time.Parse(time.RFC3339, firstLeg.Departure)
	if err != nil {
		return nil, &MalformedJourneyError{Index: index, Reason: fmt.Sprintf("invalid departure time %q", firstLeg.Departure), Err: err}
	}
	arrivalTime, err := time.Parse(time.RFC3339, lastLeg.Arrival)
	if err != nil {
		return nil, &MalformedJourneyError{Index: index, Reason: fmt.Sprintf("invalid arrival time %q", lastLeg.Arrival), Err: err}
	}

	if arrivalTime.Before(departureTime) {
		return nil, &MalformedJourneyError{Index: index, Reason: "arrival is before departure"}
	}

	if location == nil {
		location = time.UTC
	}

	name := firstLeg.LineName
	if name == "" {
		name = firstLeg.Mode
	}
	if name == "" {
		name = DefaultJourneyName
	}

	return &Journey{
		Index:         index,
		Name:          name,
		Origin:        firstLeg.OriginName,
		Destination:   lastLeg.DestinationName,
		DepartureTime: departureTime.In(location),
		ArrivalTime:   arrivalTime.In(location),
	}, nil
}

func (j *Journey) Duration() time.Duration {
	return j.ArrivalTime.Sub(j.DepartureTime)
}

// FormatDuration renders the journey length as "1h 05m"
func (j *Journey) FormatDuration() string {
	minutes := int(j.Duration().Minutes())

	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
