package source

import (
	"errors"
	"fmt"
)

var UnsupportedSourceError = errors.New("unsupported source for this query")

// ResolutionError is returned when a place name cant be mapped to a stop
type ResolutionError struct {
	Name string
	Err  error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not resolve stop %q: %s", e.Name, e.Err)
	}

	return fmt.Sprintf("could not resolve stop %q", e.Name)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

// SourceError is returned when the journey source cant be reached or returns something unreadable
type SourceError struct {
	Operation string
	Err       error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("journey source %s failed: %s", e.Operation, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
