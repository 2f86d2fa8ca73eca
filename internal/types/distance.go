package types

import "fmt"

const MetersPerKilometer = 1000

// Distance is a great-circle distance between two points
type Distance struct {
	Meters float64
}

func NewDistanceFromMeters(meters float64) Distance {
	return Distance{
		Meters: meters,
	}
}

// Kilometers returns the distance in kilometers
func (d Distance) Kilometers() float64 {
	return d.Meters / MetersPerKilometer
}

// String renders the distance in kilometers with three decimals, e.g. "877.000km"
func (d Distance) String() string {
	return fmt.Sprintf("%.3fkm", d.Kilometers())
}
