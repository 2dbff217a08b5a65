package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
)

// blockingGeocoder counts concurrent calls and optionally fails one query.
type blockingGeocoder struct {
	mu         sync.Mutex
	inFlight   int
	maxSeen    int
	coords     map[string]domain.Coordinates
	failQuery  string
	failWith   error
	totalCalls int
}

func (g *blockingGeocoder) Geocode(ctx context.Context, query string) (domain.Coordinates, error) {
	g.mu.Lock()
	g.inFlight++
	g.totalCalls++
	if g.inFlight > g.maxSeen {
		g.maxSeen = g.inFlight
	}
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.inFlight--
		g.mu.Unlock()
	}()

	if query == g.failQuery {
		return domain.Coordinates{}, g.failWith
	}
	return g.coords[query], nil
}

func TestResolveLocationsAll(t *testing.T) {
	g := &blockingGeocoder{coords: map[string]domain.Coordinates{
		"origin":      {Lon: 1, Lat: 1},
		"stop":        {Lon: 2, Lat: 2},
		"destination": {Lon: 3, Lat: 3},
	}}

	got, err := ResolveLocations(context.Background(), g, []string{"origin", "stop", "destination"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("resolved = %d, want 3", len(got))
	}
	if got["stop"] != (domain.Coordinates{Lon: 2, Lat: 2}) {
		t.Fatalf("stop = %+v", got["stop"])
	}
}

func TestResolveLocationsFailsWholeBatch(t *testing.T) {
	g := &blockingGeocoder{
		coords:    map[string]domain.Coordinates{"origin": {Lon: 1, Lat: 1}},
		failQuery: "destination",
		failWith:  &ports.GeocodeError{Kind: ports.GeocodeNotFound, Query: "destination"},
	}

	_, err := ResolveLocations(context.Background(), g, []string{"origin", "destination"})

	var ge *ports.GeocodeError
	if !errors.As(err, &ge) || ge.Kind != ports.GeocodeNotFound {
		t.Fatalf("err = %v, want GeocodeNotFound", err)
	}
}

func TestResolveLocationsRejectsEmptyQuery(t *testing.T) {
	g := &blockingGeocoder{coords: map[string]domain.Coordinates{}}

	_, err := ResolveLocations(context.Background(), g, []string{"origin", "   "})

	var ge *ports.GeocodeError
	if !errors.As(err, &ge) || ge.Kind != ports.GeocodeMalformed {
		t.Fatalf("err = %v, want GeocodeMalformed", err)
	}
	if g.totalCalls != 0 {
		t.Fatalf("geocoder called %d times before validation", g.totalCalls)
	}
}

func TestResolveLocationsDeduplicates(t *testing.T) {
	g := &blockingGeocoder{coords: map[string]domain.Coordinates{"same": {Lon: 1, Lat: 1}}}

	got, err := ResolveLocations(context.Background(), g, []string{"same", "same", "same"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.totalCalls != 1 {
		t.Fatalf("geocoder calls = %d, want 1", g.totalCalls)
	}
	if len(got) != 1 {
		t.Fatalf("resolved = %d, want 1", len(got))
	}
}

func TestResolveLocationsBoundedConcurrency(t *testing.T) {
	coords := map[string]domain.Coordinates{}
	queries := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		q := string(rune('a' + i))
		coords[q] = domain.Coordinates{Lon: float64(i), Lat: float64(i)}
		queries = append(queries, q)
	}
	g := &blockingGeocoder{coords: coords}

	if _, err := ResolveLocations(context.Background(), g, queries); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.maxSeen > 5 {
		t.Fatalf("max concurrent lookups = %d, want <= 5", g.maxSeen)
	}
}
