package ctdf

import (
	"fmt"
	"time"

	"github.com/travigo/ferrybus/pkg/util"
)

const FerryTimeFormat = "15:04"

// FerryDeparture is one departure of the recurring daily ferry timetable. It has no date,
// callers pin it to a day with On.
type FerryDeparture struct {
	Hour   int
	Minute int
}

func (f FerryDeparture) MinuteOfDay() int {
	return f.Hour*60 + f.Minute
}

func (f FerryDeparture) Before(other FerryDeparture) bool {
	return f.MinuteOfDay() < other.MinuteOfDay()
}

// On returns the ferry instant on the calendar day of date, in date's location.
// ok is false when that wall clock time does not exist on the day, eg. inside a
// daylight saving gap.
func (f FerryDeparture) On(date time.Time) (ferryTime time.Time, ok bool) {
	ferryTime = util.DateAtClock(date, f.Hour, f.Minute)

	return ferryTime, ferryTime.Hour() == f.Hour && ferryTime.Minute() == f.Minute
}

func (f FerryDeparture) String() string {
	return fmt.Sprintf("%02d:%02d", f.Hour, f.Minute)
}
