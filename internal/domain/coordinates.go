package domain

// Immutable geographic coordinates (latitude, longitude, WGS 84).
type Coordinates struct {
	Lat float64
	Lon float64
}
