package ports

import (
	"context"
	"fmt"

	"trailer-routing-service/internal/domain"
)

// DirectionsErrorKind classifies routed-path failures.
type DirectionsErrorKind string

const (
	DirectionsNoRouteFound        DirectionsErrorKind = "no_route_found"
	DirectionsProviderUnavailable DirectionsErrorKind = "provider_unavailable"
)

// DirectionsError is returned when the provider cannot produce a path.
type DirectionsError struct {
	Kind DirectionsErrorKind
	Err  error
}

func (e *DirectionsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("directions: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("directions: %s", e.Kind)
}

func (e *DirectionsError) Unwrap() error { return e.Err }

// RouteOptions are road preferences forwarded to the provider.
type RouteOptions struct {
	AvoidFerries bool
	AvoidTolls   bool
}

// LegMetrics carries the provider-reported cost of one route leg.
type LegMetrics struct {
	DistanceMeters  int
	DurationSeconds int
}

// RouteResult is the provider response for a full waypoint sequence:
// one geometry plus N-1 leg metrics for N waypoints.
type RouteResult struct {
	Geometry []domain.Coordinates
	Legs     []LegMetrics
}

// Contract for retrieving a routed driving path across ordered waypoints.
type DirectionsProvider interface {
	// FetchRoute issues a single request covering all waypoints (>= 2).
	FetchRoute(ctx context.Context, waypoints []domain.Coordinates, opts RouteOptions) (RouteResult, error)
}
