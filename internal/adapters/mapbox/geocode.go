package mapbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/platform/obs"
	"trailer-routing-service/internal/ports"
)

type geocodeResponse struct {
	Features []struct {
		Center []float64 `json:"center"`
	} `json:"features"`
}

// Geocode resolves one free-text query to its best-match coordinates using
// the Mapbox geocoding API (first feature's center wins). Results are served
// from the persistent cache when available.
func (c *Client) Geocode(ctx context.Context, query string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "mapbox.Geocode")(&err)

	norm := c.normalize(query)
	if norm == "" {
		return domain.Coordinates{}, &ports.GeocodeError{Kind: ports.GeocodeMalformed, Query: query}
	}

	if c.geocodeCache != nil {
		hits, err := c.geocodeCache.GetMany(ctx, []string{norm})
		if err != nil {
			return domain.Coordinates{}, fmt.Errorf("geocode cache read: %w", err)
		}
		if coord, ok := hits[norm]; ok {
			return coord, nil
		}
	}

	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json", c.baseURL, url.PathEscape(norm))

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("access_token", c.token)
		q.Set("limit", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return domain.Coordinates{}, ctxErr
		}
		return domain.Coordinates{}, &ports.GeocodeError{Kind: ports.GeocodeProviderUnavailable, Query: norm, Err: err}
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, &ports.GeocodeError{
			Kind:  ports.GeocodeProviderUnavailable,
			Query: norm,
			Err:   fmt.Errorf("decode geocode response: %w", err),
		}
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, &ports.GeocodeError{Kind: ports.GeocodeNotFound, Query: norm}
	}

	center := decoded.Features[0].Center
	if len(center) != 2 {
		return domain.Coordinates{}, &ports.GeocodeError{
			Kind:  ports.GeocodeProviderUnavailable,
			Query: norm,
			Err:   errors.New("invalid coordinate format"),
		}
	}

	coord := domain.Coordinates{Lon: center[0], Lat: center[1]}

	// Cache failures never fail a successful resolution.
	if c.geocodeCache != nil {
		if err := c.geocodeCache.PutMany(ctx, map[string]domain.Coordinates{norm: coord}); err != nil {
			log.Printf("geocode cache write failed: %v", err)
		}
	}

	return coord, nil
}
