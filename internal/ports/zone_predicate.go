package ports

import "trailer-routing-service/internal/domain"

// ZonePredicate decides whether the path of a leg (approximated by its two
// endpoint waypoints) crosses a zone's geography. Injected so the evaluator
// stays independent of the geometric model.
type ZonePredicate func(from, to domain.Coordinates, zone domain.Zone) bool
