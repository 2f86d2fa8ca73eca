package types

// Coords is a validated latitude/longitude pair in decimal degrees.
// Values are only built by coordinates.Validate, which guarantees both
// components are finite and within geographic bounds.
type Coords struct {
	Latitude  float64 `json:"latitude" example:"39.11539" doc:"Latitude in decimal degrees"`
	Longitude float64 `json:"longitude" example:"-107.6584" doc:"Longitude in decimal degrees"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}
