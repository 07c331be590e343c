package station

// Station is a fixed pickup/return location for fleet vehicles.
// Stations are externally sourced and immutable once fetched.
type Station struct {
	ID   string
	Name string
}
