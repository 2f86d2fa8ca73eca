package distance

import (
	"math"

	"haversine/internal/types"
)

// EarthRadiusMeters is the mean earth radius used for the spherical model
const EarthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance between two validated points
// on a sphere of radius EarthRadiusMeters. Inputs are trusted and not
// re-validated. Identical points yield a zero distance.
func Haversine(a, b types.Coords) types.Distance {
	phi1 := degreesToRadians(a.Latitude)
	phi2 := degreesToRadians(b.Latitude)
	deltaPhi := degreesToRadians(b.Latitude - a.Latitude)
	deltaLambda := degreesToRadians(b.Longitude - a.Longitude)

	sinHalfDeltaPhi := math.Sin(deltaPhi / 2)
	sinHalfDeltaLambda := math.Sin(deltaLambda / 2)

	h := sinHalfDeltaPhi*sinHalfDeltaPhi +
		math.Cos(phi1)*math.Cos(phi2)*sinHalfDeltaLambda*sinHalfDeltaLambda
	// rounding can push h just past 1 for near-antipodal points
	h = math.Min(h, 1)

	centralAngle := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return types.NewDistanceFromMeters(EarthRadiusMeters * centralAngle)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
