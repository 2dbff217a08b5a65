package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
)

type resolveResult struct {
	query string
	coord domain.Coordinates
	err   error
}

// ResolveLocations geocodes every query concurrently (fan-out/fan-in) and
// fails the whole batch on the first resolution failure: partial routes are
// never planned. In-flight lookups are cancelled once one fails.
func ResolveLocations(
	ctx context.Context,
	geocoder ports.Geocoder,
	queries []string,
) (map[string]domain.Coordinates, error) {
	seen := make(map[string]struct{}, len(queries))
	uniq := make([]string, 0, len(queries))
	for _, q := range queries {
		if strings.TrimSpace(q) == "" {
			return nil, &ports.GeocodeError{Kind: ports.GeocodeMalformed, Query: q}
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		uniq = append(uniq, q)
	}

	if len(uniq) == 0 {
		return map[string]domain.Coordinates{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 5)
	resultsCh := make(chan resolveResult, len(uniq))
	var wg sync.WaitGroup

	for _, q := range uniq {
		wg.Add(1)
		go func(query string) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			if err := ctx.Err(); err != nil {
				resultsCh <- resolveResult{query: query, err: err}
				return
			}

			coord, err := geocoder.Geocode(ctx, query)
			if err != nil {
				resultsCh <- resolveResult{query: query, err: fmt.Errorf("resolve locations: %w", err)}
				cancel()
				return
			}

			resultsCh <- resolveResult{query: query, coord: coord}
		}(q)
	}

	wg.Wait()
	close(resultsCh)

	out := make(map[string]domain.Coordinates, len(uniq))
	var firstErr error
	for res := range resultsCh {
		if res.err != nil {
			// Cancellation noise from siblings never masks the root failure.
			if firstErr == nil || (errors.Is(firstErr, context.Canceled) && !errors.Is(res.err, context.Canceled)) {
				firstErr = res.err
			}
			continue
		}
		out[res.query] = res.coord
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}
