package global

import (
	"github.com/travigo/ferrybus/pkg/dataaggregator"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source/cachedresults"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source/transportrest"
	"github.com/travigo/ferrybus/pkg/redis_client"
	"github.com/travigo/ferrybus/pkg/util"
)

// Setup registers the journey sources on the global aggregator. The Redis journey cache is
// only put in front of transport.rest when a Redis client has been connected.
func Setup() {
	dataaggregator.GlobalAggregator = dataaggregator.Aggregator{}

	env := util.GetEnvironmentVariables()

	transportRestSource := transportrest.NewSource(env["FERRYBUS_TRANSPORT_REST_URL"])

	if redis_client.Client != nil {
		dataaggregator.GlobalAggregator.RegisterSource(
			cachedresults.NewSource(transportRestSource, redis_client.Client, cachedresults.DefaultExpiration),
		)
	}

	dataaggregator.GlobalAggregator.RegisterSource(transportRestSource)
}
