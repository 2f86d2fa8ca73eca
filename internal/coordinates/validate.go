package coordinates

import (
	"math"
	"strings"

	"haversine/internal/types"
)

const (
	Separator    = ","
	MaxLatitude  = 90.0
	MaxLongitude = 180.0
)

// Validate parses a raw "latitude,longitude" string into coordinates.
//
// Checks run in a fixed order and the first failure is returned:
// emptiness, comma count, latitude parse, longitude parse, latitude range,
// longitude range. The returned error is always a *ValidationError.
func Validate(raw string) (types.Coords, error) {
	segments := strings.Split(raw, Separator)

	if strings.TrimSpace(raw) == "" || strings.TrimSpace(segments[0]) == "" {
		return types.Coords{}, newValidationError(InputNeeded)
	}

	switch {
	case len(segments) < 2:
		return types.Coords{}, newValidationError(CommaNeeded)
	case len(segments) > 2:
		return types.Coords{}, newValidationError(TooManyCommas)
	}

	lat, err := ParseLeadingFloat(segments[0])
	if err != nil {
		return types.Coords{}, newValidationError(LatNotValidNumber)
	}

	lon, err := ParseLeadingFloat(segments[1])
	if err != nil {
		return types.Coords{}, newValidationError(LonNotValidNumber)
	}

	if math.Abs(lat) > MaxLatitude {
		return types.Coords{}, newValidationError(NotInLatRange)
	}

	if math.Abs(lon) > MaxLongitude {
		return types.Coords{}, newValidationError(NotInLonRange)
	}

	return types.NewCoords(lat, lon), nil
}
