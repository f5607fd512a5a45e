package ctdf

type Stop struct {
	PrimaryIdentifier string `groups:"basic" json:"id"`
	PrimaryName       string `groups:"basic" json:"name"`

	// The free text the stop was resolved from
	Query string `groups:"detailed" json:"query"`

	Location *Location `groups:"detailed" json:"location,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
