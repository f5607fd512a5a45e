package query

import (
	"time"

	"github.com/travigo/ferrybus/pkg/ctdf"
)

type Journeys struct {
	OriginStop      *ctdf.Stop
	DestinationStop *ctdf.Stop

	Count         int
	DepartureTime time.Time
}
