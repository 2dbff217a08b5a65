package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/platform/obs"
	"trailer-routing-service/internal/ports"
)

type directionsResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"legs"`
	} `json:"routes"`
}

// FetchRoute requests a single driving route across the full waypoint
// sequence from the Mapbox directions API. The provider returns one geometry
// and N-1 legs for N waypoints.
func (c *Client) FetchRoute(
	ctx context.Context,
	waypoints []domain.Coordinates,
	opts ports.RouteOptions,
) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "mapbox.FetchRoute")(&err)

	if len(waypoints) < 2 {
		return ports.RouteResult{}, fmt.Errorf("fetch route: need at least 2 waypoints, got %d", len(waypoints))
	}

	// Mapbox expects "lng,lat;lng,lat;..." in the path.
	parts := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		parts = append(parts, fmt.Sprintf("%f,%f", w.Lon, w.Lat))
	}
	endpoint := fmt.Sprintf("%s/directions/v5/%s/%s", c.baseURL, c.profile, strings.Join(parts, ";"))

	exclude := make([]string, 0, 2)
	if opts.AvoidFerries {
		exclude = append(exclude, "ferry")
	}
	if opts.AvoidTolls {
		exclude = append(exclude, "toll")
	}

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("access_token", c.token)
		q.Set("geometries", "geojson")
		q.Set("overview", "full")
		if len(exclude) > 0 {
			q.Set("exclude", strings.Join(exclude, ","))
		}
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.RouteResult{}, ctxErr
		}
		return ports.RouteResult{}, &ports.DirectionsError{Kind: ports.DirectionsProviderUnavailable, Err: err}
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.RouteResult{}, &ports.DirectionsError{
			Kind: ports.DirectionsProviderUnavailable,
			Err:  fmt.Errorf("decode directions response: %w", err),
		}
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.RouteResult{}, &ports.DirectionsError{
			Kind: ports.DirectionsNoRouteFound,
			Err:  fmt.Errorf("provider code %q", decoded.Code),
		}
	}

	route := decoded.Routes[0]

	if len(route.Legs) != len(waypoints)-1 {
		return ports.RouteResult{}, &ports.DirectionsError{
			Kind: ports.DirectionsProviderUnavailable,
			Err:  fmt.Errorf("expected %d legs, got %d", len(waypoints)-1, len(route.Legs)),
		}
	}

	geometry := make([]domain.Coordinates, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) != 2 {
			return ports.RouteResult{}, &ports.DirectionsError{
				Kind: ports.DirectionsProviderUnavailable,
				Err:  fmt.Errorf("invalid geometry pair of length %d", len(pair)),
			}
		}
		geometry = append(geometry, domain.Coordinates{Lon: pair[0], Lat: pair[1]})
	}

	legs := make([]ports.LegMetrics, 0, len(route.Legs))
	for _, l := range route.Legs {
		// Mapbox returns float metrics; round to integers for domain consistency.
		legs = append(legs, ports.LegMetrics{
			DistanceMeters:  int(math.Round(l.Distance)),
			DurationSeconds: int(math.Round(l.Duration)),
		})
	}

	return ports.RouteResult{Geometry: geometry, Legs: legs}, nil
}
