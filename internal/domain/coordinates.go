package domain

// Immutable geographic coordinates.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lng, lat] for external routing API compatibility.
func (c Coordinates) LngLatList() []float64 { return []float64{c.Lng, c.Lat} }
