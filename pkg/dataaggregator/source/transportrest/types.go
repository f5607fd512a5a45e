package transportrest

import "github.com/travigo/ferrybus/pkg/ctdf"

type location struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`

	Location *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

func (l *location) toStop(queryName string) *ctdf.Stop {
	stop := &ctdf.Stop{
		PrimaryIdentifier: l.ID,
		PrimaryName:       l.Name,
		Query:             queryName,
	}

	if l.Location != nil {
		stop.Location = &ctdf.Location{
			Latitude:  l.Location.Latitude,
			Longitude: l.Location.Longitude,
		}
	}

	return stop
}

type journeysResponse struct {
	Journeys []*journey `json:"journeys"`
}

type journey struct {
	Legs []*leg `json:"legs"`
}

type leg struct {
	Origin      *place `json:"origin"`
	Destination *place `json:"destination"`

	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`

	Mode    string `json:"mode"`
	Walking bool   `json:"walking"`

	Line *struct {
		Name        string `json:"name"`
		Mode        string `json:"mode"`
		ProductName string `json:"productName"`
	} `json:"line"`
}

type place struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (j *journey) toJourneyRecord() *ctdf.JourneyRecord {
	record := &ctdf.JourneyRecord{}

	if j == nil {
		return record
	}

	for _, l := range j.Legs {
		if l == nil {
			record.Legs = append(record.Legs, nil)
			continue
		}

		journeyLeg := &ctdf.JourneyLeg{
			Mode:      l.Mode,
			Departure: l.Departure,
			Arrival:   l.Arrival,
		}

		if l.Line != nil {
			journeyLeg.LineName = l.Line.Name

			if journeyLeg.Mode == "" {
				journeyLeg.Mode = l.Line.Mode
			}
		}
		if journeyLeg.Mode == "" && l.Walking {
			journeyLeg.Mode = "walking"
		}

		if l.Origin != nil {
			journeyLeg.OriginName = l.Origin.Name
		}
		if l.Destination != nil {
			journeyLeg.DestinationName = l.Destination.Name
		}

		record.Legs = append(record.Legs, journeyLeg)
	}

	return record
}
