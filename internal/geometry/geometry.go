// Package geometry converts evaluated coordinate pairs into GeoJSON
package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"haversine/internal/types"
)

// ToPoint converts coordinates to an orb point, which is ordered [lon, lat]
func ToPoint(c types.Coords) orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// NewDistanceFeatureCollection builds a collection with one Point feature
// per input, named "A" and "B", and a LineString feature between them
// carrying the formatted and numeric distance.
func NewDistanceFeatureCollection(a, b types.Coords, d types.Distance) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	pointA := geojson.NewFeature(ToPoint(a))
	pointA.Properties["name"] = "A"
	fc.Append(pointA)

	pointB := geojson.NewFeature(ToPoint(b))
	pointB.Properties["name"] = "B"
	fc.Append(pointB)

	line := geojson.NewFeature(orb.LineString{ToPoint(a), ToPoint(b)})
	line.Properties["distance"] = d.String()
	line.Properties["meters"] = d.Meters
	line.Properties["kilometers"] = d.Kilometers()
	fc.Append(line)

	return fc
}
