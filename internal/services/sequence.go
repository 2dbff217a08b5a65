package services

import (
	"errors"

	"trailer-routing-service/internal/domain"
)

// ErrEmptyRoute signals a request without a usable origin or destination.
var ErrEmptyRoute = errors.New("route requires both an origin and a destination")

// SequenceWaypoints assembles the ordered coordinate sequence for the
// directions request: origin first, stops in their given order, destination
// last. Stop order is never reordered or optimized.
func SequenceWaypoints(
	origin *domain.Coordinates,
	stops []domain.Stop,
	destination *domain.Coordinates,
) ([]domain.Coordinates, error) {
	if origin == nil || destination == nil {
		return nil, ErrEmptyRoute
	}

	out := make([]domain.Coordinates, 0, len(stops)+2)
	out = append(out, *origin)
	for _, s := range stops {
		out = append(out, s.Coord)
	}
	out = append(out, *destination)

	return out, nil
}
