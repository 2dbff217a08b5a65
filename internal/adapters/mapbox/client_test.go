package mapbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-token", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.baseURL = srv.URL
	return c, srv
}

func TestGeocodeFirstFeatureWins(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("access_token"); got != "test-token" {
			t.Errorf("access_token = %q", got)
		}
		w.Write([]byte(`{"features":[{"center":[46.68,24.71]},{"center":[0,0]}]}`))
	}))

	coord, err := c.Geocode(context.Background(), "  Riyadh,   King Fahd  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if coord.Lon != 46.68 || coord.Lat != 24.71 {
		t.Fatalf("coord = %+v, want lon=46.68 lat=24.71", coord)
	}
}

func TestGeocodeNotFound(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))

	_, err := c.Geocode(context.Background(), "nowhere")
	var ge *ports.GeocodeError
	if !errors.As(err, &ge) || ge.Kind != ports.GeocodeNotFound {
		t.Fatalf("err = %v, want GeocodeNotFound", err)
	}
}

func TestGeocodeMalformedQuery(t *testing.T) {
	c, err := NewClient("test-token", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = c.Geocode(context.Background(), "   ")
	var ge *ports.GeocodeError
	if !errors.As(err, &ge) || ge.Kind != ports.GeocodeMalformed {
		t.Fatalf("err = %v, want GeocodeMalformed", err)
	}
}

func TestGeocodeRetriesServerErrors(t *testing.T) {
	attempts := 0
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"features":[{"center":[39.19,21.49]}]}`))
	}))

	coord, err := c.Geocode(context.Background(), "Jeddah")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("attempts = %d, want 3", attempts)
	}
	if coord.Lat != 21.49 {
		t.Fatalf("coord = %+v", coord)
	}
}

func TestFetchRouteDecodesLegsAndGeometry(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"code": "Ok",
			"routes": [{
				"geometry": {"coordinates": [[46.68,24.71],[44.0,23.0],[39.19,21.49]]},
				"legs": [
					{"distance": 500000.4, "duration": 18000.6},
					{"distance": 350000.0, "duration": 12600.0}
				]
			}]
		}`))
	}))

	waypoints := []domain.Coordinates{
		{Lon: 46.68, Lat: 24.71},
		{Lon: 44.0, Lat: 23.0},
		{Lon: 39.19, Lat: 21.49},
	}
	res, err := c.FetchRoute(context.Background(), waypoints, ports.RouteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Geometry) != 3 {
		t.Fatalf("geometry length = %d, want 3", len(res.Geometry))
	}
	if len(res.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(res.Legs))
	}
	if res.Legs[0].DistanceMeters != 500000 {
		t.Fatalf("leg 0 distance = %d, want 500000 (rounded)", res.Legs[0].DistanceMeters)
	}
	if res.Legs[1].DurationSeconds != 12600 {
		t.Fatalf("leg 1 duration = %d, want 12600", res.Legs[1].DurationSeconds)
	}
}

func TestFetchRouteNoRoute(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":"NoRoute","routes":[]}`))
	}))

	waypoints := []domain.Coordinates{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}
	_, err := c.FetchRoute(context.Background(), waypoints, ports.RouteOptions{})
	var de *ports.DirectionsError
	if !errors.As(err, &de) || de.Kind != ports.DirectionsNoRouteFound {
		t.Fatalf("err = %v, want DirectionsNoRouteFound", err)
	}
}

func TestFetchRouteForwardsExcludeOptions(t *testing.T) {
	var gotExclude string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotExclude = r.URL.Query().Get("exclude")
		w.Write([]byte(`{"code":"Ok","routes":[{"geometry":{"coordinates":[[0,0],[1,1]]},"legs":[{"distance":1,"duration":1}]}]}`))
	}))

	waypoints := []domain.Coordinates{{Lon: 0, Lat: 0}, {Lon: 1, Lat: 1}}
	_, err := c.FetchRoute(context.Background(), waypoints, ports.RouteOptions{AvoidFerries: true, AvoidTolls: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotExclude != "ferry,toll" {
		t.Fatalf("exclude = %q, want %q", gotExclude, "ferry,toll")
	}
}
