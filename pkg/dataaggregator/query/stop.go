package query

// Stop resolves a free text place name into a single stop
type Stop struct {
	Name string
}
