package ports

import (
	"context"

	"trailer-routing-service/internal/domain"
)

// Port: a persistent cache mapping normalized geocode queries to coordinates.
// Implementations must tolerate batches with duplicates and empty strings.
type GeocodeCache interface {
	// Fetch cached coordinates for the given queries; misses are absent keys.
	GetMany(ctx context.Context, queries []string) (map[string]domain.Coordinates, error)
	// Store query -> coordinate mappings.
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
