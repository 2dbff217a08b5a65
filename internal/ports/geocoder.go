package ports

import (
	"context"
	"fmt"

	"trailer-routing-service/internal/domain"
)

// GeocodeErrorKind classifies geocoding failures.
type GeocodeErrorKind string

const (
	GeocodeNotFound            GeocodeErrorKind = "not_found"
	GeocodeProviderUnavailable GeocodeErrorKind = "provider_unavailable"
	GeocodeMalformed           GeocodeErrorKind = "malformed"
)

// GeocodeError is returned when a free-text location cannot be resolved.
type GeocodeError struct {
	Kind  GeocodeErrorKind
	Query string
	Err   error
}

func (e *GeocodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("geocode %q: %s: %v", e.Query, e.Kind, e.Err)
	}
	return fmt.Sprintf("geocode %q: %s", e.Query, e.Kind)
}

func (e *GeocodeError) Unwrap() error { return e.Err }

// Contract for resolving a free-text location into coordinates.
type Geocoder interface {
	// Resolve one query to its best-match coordinates.
	Geocode(ctx context.Context, query string) (domain.Coordinates, error)
}
