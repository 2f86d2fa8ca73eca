package distance

import (
	"errors"
	"log/slog"

	"haversine/internal/coordinates"
	"haversine/internal/types"
)

const (
	PointA = "A"
	PointB = "B"
)

// Result is a successful evaluation of two raw coordinate strings
type Result struct {
	PointA   types.Coords
	PointB   types.Coords
	Distance types.Distance
}

// Service evaluates pairs of user-supplied coordinate strings
type Service interface {
	// Evaluate validates rawA then rawB and returns the distance between them.
	// The first validation failure is returned as a *coordinates.ValidationError
	// with Point set, and rawB is not examined when rawA fails.
	Evaluate(rawA, rawB string) (*Result, error)
}

// distanceService implements the Service interface
type distanceService struct {
	logger *slog.Logger
}

func NewDistanceService(logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &distanceService{
		logger: logger.With("component", "distance-service"),
	}
}

func (s *distanceService) Evaluate(rawA, rawB string) (*Result, error) {
	a, err := validatePoint(PointA, rawA)
	if err != nil {
		s.logRejected(PointA, rawA, err)
		return nil, err
	}

	b, err := validatePoint(PointB, rawB)
	if err != nil {
		s.logRejected(PointB, rawB, err)
		return nil, err
	}

	d := Haversine(a, b)

	s.logger.Debug("computed distance",
		"point_a", rawA,
		"point_b", rawB,
		"meters", d.Meters,
	)

	return &Result{
		PointA:   a,
		PointB:   b,
		Distance: d,
	}, nil
}

func validatePoint(point, raw string) (types.Coords, error) {
	c, err := coordinates.Validate(raw)
	if err != nil {
		var verr *coordinates.ValidationError
		if errors.As(err, &verr) {
			verr.Point = point
		}
		return types.Coords{}, err
	}
	return c, nil
}

func (s *distanceService) logRejected(point, raw string, err error) {
	s.logger.Debug("rejected coordinate input",
		"point", point,
		"input", raw,
		"error", err,
	)
}
