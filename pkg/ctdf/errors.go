package ctdf

import "fmt"

// MalformedJourneyError reports a journey record that cant be matched against the ferry schedule
type MalformedJourneyError struct {
	Index  int
	Reason string
	Err    error
}

func (e *MalformedJourneyError) Error() string {
	return fmt.Sprintf("malformed journey %d: %s", e.Index, e.Reason)
}

func (e *MalformedJourneyError) Unwrap() error {
	return e.Err
}
