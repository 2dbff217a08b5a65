package mapbox

import (
	"context"
	"fmt"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
)

// MockGeocoder resolves queries from a fixed table.
type MockGeocoder struct {
	Coords map[string]domain.Coordinates
	Errs   map[string]error
	Calls  []string
}

func NewMockGeocoder(coords map[string]domain.Coordinates) *MockGeocoder {
	return &MockGeocoder{Coords: coords}
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (domain.Coordinates, error) {
	m.Calls = append(m.Calls, query)
	if err, ok := m.Errs[query]; ok {
		return domain.Coordinates{}, err
	}
	c, ok := m.Coords[query]
	if !ok {
		return domain.Coordinates{}, &ports.GeocodeError{Kind: ports.GeocodeNotFound, Query: query}
	}
	return c, nil
}

// MockDirections returns a canned route result.
type MockDirections struct {
	Result ports.RouteResult
	Err    error
	Calls  int
}

func (m *MockDirections) FetchRoute(
	ctx context.Context,
	waypoints []domain.Coordinates,
	opts ports.RouteOptions,
) (ports.RouteResult, error) {
	m.Calls++
	if m.Err != nil {
		return ports.RouteResult{}, m.Err
	}
	if len(m.Result.Legs) != len(waypoints)-1 {
		return ports.RouteResult{}, fmt.Errorf("mock directions: %d legs configured for %d waypoints", len(m.Result.Legs), len(waypoints))
	}
	return m.Result, nil
}
