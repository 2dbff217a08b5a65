package services

import (
	"fmt"
	"time"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
)

// RestBreakDuration is the fixed pause inserted when cumulative driving
// reaches the mandatory rest threshold.
const RestBreakDuration = 45 * time.Minute

// ActiveZone pairs a zone with the restriction window in effect for this
// request (default or user override).
type ActiveZone struct {
	Zone   domain.Zone
	Window domain.Window
}

type EvaluateRequest struct {
	Waypoints []domain.Coordinates
	// Legs carry provider metrics; timing fields are ignored on input.
	Legs []domain.Leg
	// Stops align with interior waypoints: waypoint i (1..len) is Stops[i-1].
	Stops []domain.Stop
	Zones []ActiveZone
	// RestHours is the mandatory rest threshold in driving hours; 0 disables it.
	RestHours  int
	DepartAt   time.Time
	Intersects ports.ZonePredicate
}

// Evaluate walks the legs in order with a running clock starting at DepartAt,
// checking each arrival against every intersecting zone's window and
// enforcing the mandatory rest rule. It returns the verdict together with a
// new leg slice whose departure and arrival estimates reflect dwell times and
// inserted rest breaks.
//
// The result is deterministic: identical inputs produce identical verdicts
// and identical leg timings. Inputs are never mutated.
func Evaluate(req EvaluateRequest) (domain.Verdict, []domain.Leg, error) {
	for i, leg := range req.Legs {
		if leg.FromIndex < 0 || leg.FromIndex >= len(req.Waypoints) ||
			leg.ToIndex < 0 || leg.ToIndex >= len(req.Waypoints) {
			return domain.Verdict{}, nil, fmt.Errorf(
				"evaluate: leg %d references waypoints %d -> %d outside 0..%d",
				i, leg.FromIndex, leg.ToIndex, len(req.Waypoints)-1,
			)
		}
	}

	threshold := time.Duration(req.RestHours) * time.Hour

	clock := req.DepartAt
	drivingSinceRest := time.Duration(0)
	violations := []domain.Violation{}
	out := make([]domain.Leg, len(req.Legs))

	for i, leg := range req.Legs {
		driving := time.Duration(leg.DurationSeconds) * time.Second

		// A break is taken at the waypoint before any leg whose driving would
		// push the running total past the threshold. The first leg of a haul
		// never rests: there is nothing to rest from yet.
		leg.RestBefore = false
		if threshold > 0 && drivingSinceRest > 0 && drivingSinceRest+driving >= threshold {
			leg.RestBefore = true
			clock = clock.Add(RestBreakDuration)
			drivingSinceRest = 0
		}

		leg.DepartAt = clock
		arrive := clock.Add(driving)
		leg.ArriveAt = arrive

		// Breaks happen at waypoints, so a single leg longer than the
		// threshold cannot be driven legally.
		if threshold > 0 && driving > threshold {
			violations = append(violations, domain.Violation{
				Source:   domain.ViolationSourceRestHours,
				LegIndex: i,
				ArriveAt: arrive,
				Reason:   "leg driving time exceeds the mandatory rest threshold with no stop to break at",
			})
		}

		from := req.Waypoints[leg.FromIndex]
		to := req.Waypoints[leg.ToIndex]
		arriveAtDay := domain.TimeOfDayFrom(arrive)

		for _, az := range req.Zones {
			if req.Intersects == nil || !req.Intersects(from, to, az.Zone) {
				continue
			}
			if az.Window.Contains(arriveAtDay) {
				violations = append(violations, domain.Violation{
					Source:   string(az.Zone.ID),
					LegIndex: i,
					ArriveAt: arrive,
					Reason:   "zone-time-restricted",
				})
			}
		}

		clock = arrive
		drivingSinceRest += driving

		// Dwell at an interior stop; a dwell at least as long as a rest break
		// also counts as one.
		if leg.ToIndex >= 1 && leg.ToIndex <= len(req.Stops) {
			dwell := time.Duration(req.Stops[leg.ToIndex-1].DwellMinutes) * time.Minute
			clock = clock.Add(dwell)
			if dwell >= RestBreakDuration {
				drivingSinceRest = 0
			}
		}

		out[i] = leg
	}

	verdict := domain.Verdict{
		Feasible:   len(violations) == 0,
		Violations: violations,
	}

	return verdict, out, nil
}
