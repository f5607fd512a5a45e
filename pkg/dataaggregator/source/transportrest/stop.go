package transportrest

import (
	"errors"
	"net/url"
	"strings"

	"github.com/travigo/ferrybus/pkg/ctdf"
	"github.com/travigo/ferrybus/pkg/dataaggregator/query"
	"github.com/travigo/ferrybus/pkg/dataaggregator/source"
)

func (s Source) StopQuery(q query.Stop) (*ctdf.Stop, error) {
	name := strings.TrimSpace(q.Name)
	if name == "" {
		return nil, &source.ResolutionError{Name: q.Name, Err: errors.New("empty place name")}
	}

	params := url.Values{}
	params.Set("query", name)
	params.Set("results", "1")

	var locations []location
	if err := s.get("/locations", params, &locations); err != nil {
		return nil, &source.SourceError{Operation: "locations", Err: err}
	}

	if len(locations) == 0 || locations[0].ID == "" {
		return nil, &source.ResolutionError{Name: q.Name}
	}

	return locations[0].toStop(q.Name), nil
}
