package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
)

// ZoneSelection is the per-zone form state: whether the zone is evaluated,
// and an optional window override replacing the registry default.
type ZoneSelection struct {
	Active bool
	Window *domain.Window
}

type StopInput struct {
	Query        string
	DwellMinutes int
}

type PlanTripRequest struct {
	Origin      string
	Destination string
	Stops       []StopInput
	Vehicle     domain.VehicleProfile
	Zones       map[domain.ZoneID]ZoneSelection
	RestHours   int
	DepartAt    time.Time

	FuelPricePerLiter        float64
	FuelEfficiencyKmPerLiter float64
	AvoidFerries             bool
	AvoidTolls               bool
}

type PlanTripDeps struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Intersects ports.ZonePredicate
}

// PlanTrip runs the full pipeline: resolve -> sequence -> fetch -> evaluate
// -> assemble. Any geocode or directions failure aborts the whole request;
// constraint violations do not, they ride along on the returned plan.
func PlanTrip(ctx context.Context, req PlanTripRequest, deps PlanTripDeps) (*domain.RoutePlan, error) {
	origin := strings.TrimSpace(req.Origin)
	destination := strings.TrimSpace(req.Destination)
	if origin == "" || destination == "" {
		return nil, ErrEmptyRoute
	}

	queries := make([]string, 0, len(req.Stops)+2)
	queries = append(queries, origin)
	for _, s := range req.Stops {
		queries = append(queries, s.Query)
	}
	queries = append(queries, destination)

	resolved, err := ResolveLocations(ctx, deps.Geocoder, queries)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	coordFor := func(q string) (domain.Coordinates, error) {
		c, ok := resolved[q]
		if !ok {
			return domain.Coordinates{}, fmt.Errorf("plan trip: missing coordinate for %q", q)
		}
		return c, nil
	}

	originCoord, err := coordFor(origin)
	if err != nil {
		return nil, err
	}
	destinationCoord, err := coordFor(destination)
	if err != nil {
		return nil, err
	}

	stops := make([]domain.Stop, 0, len(req.Stops))
	for _, s := range req.Stops {
		c, err := coordFor(s.Query)
		if err != nil {
			return nil, err
		}
		stops = append(stops, domain.Stop{
			Query:        s.Query,
			Coord:        c,
			DwellMinutes: s.DwellMinutes,
		})
	}

	waypoints, err := SequenceWaypoints(&originCoord, stops, &destinationCoord)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	route, err := deps.Directions.FetchRoute(ctx, waypoints, ports.RouteOptions{
		AvoidFerries: req.AvoidFerries,
		AvoidTolls:   req.AvoidTolls,
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	legs := make([]domain.Leg, 0, len(route.Legs))
	for i, m := range route.Legs {
		legs = append(legs, domain.Leg{
			FromIndex:       i,
			ToIndex:         i + 1,
			DistanceMeters:  m.DistanceMeters,
			DurationSeconds: m.DurationSeconds,
		})
	}

	verdict, legs, err := Evaluate(EvaluateRequest{
		Waypoints:  waypoints,
		Legs:       legs,
		Stops:      stops,
		Zones:      activeZones(req.Vehicle, req.Zones),
		RestHours:  req.RestHours,
		DepartAt:   req.DepartAt,
		Intersects: deps.Intersects,
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	plan, err := Assemble(AssembleRequest{
		Waypoints:                waypoints,
		Stops:                    stops,
		Legs:                     legs,
		Geometry:                 route.Geometry,
		Verdict:                  verdict,
		FuelPricePerLiter:        req.FuelPricePerLiter,
		FuelEfficiencyKmPerLiter: req.FuelEfficiencyKmPerLiter,
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	return plan, nil
}

// activeZones selects the zones to evaluate in catalog order so verdicts stay
// deterministic. Zone restrictions apply to the trailer class only.
func activeZones(vehicle domain.VehicleProfile, selections map[domain.ZoneID]ZoneSelection) []ActiveZone {
	if !vehicle.SubjectToZoneRestrictions() {
		return nil
	}

	out := make([]ActiveZone, 0, len(selections))
	for _, id := range domain.AllZoneIDs() {
		sel, ok := selections[id]
		if !ok || !sel.Active {
			continue
		}

		zone, ok := domain.ZoneByID(id)
		if !ok {
			continue
		}

		window := zone.DefaultWindow
		if sel.Window != nil {
			window = *sel.Window
		}

		out = append(out, ActiveZone{Zone: zone, Window: window})
	}

	return out
}
