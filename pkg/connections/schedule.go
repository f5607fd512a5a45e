package connections

import (
	"github.com/travigo/ferrybus/pkg/ctdf"
	"golang.org/x/exp/slices"
)

// GenerateFerrySchedule returns every daily ferry departure in chronological order,
// one for each hour of the day at each of the given minutes
func GenerateFerrySchedule(minutes []int) []ctdf.FerryDeparture {
	sortedMinutes := slices.Clone(minutes)
	slices.Sort(sortedMinutes)

	schedule := make([]ctdf.FerryDeparture, 0, 24*len(sortedMinutes))

	for hour := 0; hour < 24; hour++ {
		for _, minute := range sortedMinutes {
			schedule = append(schedule, ctdf.FerryDeparture{
				Hour:   hour,
				Minute: minute,
			})
		}
	}

	return schedule
}
