package dataaggregator

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog/log"
)

type Aggregator struct {
	Sources []DataSource
}

var GlobalAggregator Aggregator

var NoMatchingSourceError = errors.New("failed to find a matching Data Source for type")

func (a *Aggregator) RegisterSource(source DataSource) {
	a.Sources = append(a.Sources, source)

	log.Debug().Str("name", source.GetName()).Msg("Registering new Data Source")
}

// Lookup runs the query against the first globally registered source that supports T
func Lookup[T any](query any) (T, error) {
	return LookupFrom[T](&GlobalAggregator, query)
}

func LookupFrom[T any](aggregator *Aggregator, query any) (T, error) {
	var empty T

	lookupType := reflect.TypeOf(*new(T))
	if lookupType.Kind() == reflect.Pointer {
		lookupType = lookupType.Elem()
	}

	for _, source := range aggregator.Sources {
		matches := false

		for _, supportedType := range source.Supports() {
			if lookupType == supportedType {
				matches = true
				break
			}
		}

		if matches {
			returnValue, returnError := source.Lookup(query)

			typedValue, ok := returnValue.(T)
			if !ok {
				if returnError == nil {
					returnError = fmt.Errorf("%s returned %T for %T", source.GetName(), returnValue, query)
				}

				return empty, returnError
			}

			return typedValue, returnError
		}
	}

	return empty, NoMatchingSourceError
}
