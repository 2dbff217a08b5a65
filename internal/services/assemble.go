package services

import (
	"errors"
	"strconv"

	"trailer-routing-service/internal/domain"
)

// ErrMalformedRoute signals structurally inconsistent assembler inputs.
var ErrMalformedRoute = errors.New("malformed route: inconsistent waypoints, legs, or geometry")

type AssembleRequest struct {
	Waypoints []domain.Coordinates
	Stops     []domain.Stop
	Legs      []domain.Leg
	Geometry  []domain.Coordinates
	Verdict   domain.Verdict

	// Optional fuel economics; cost is reported only when both are set.
	FuelPricePerLiter        float64
	FuelEfficiencyKmPerLiter float64
}

// Assemble combines geometry, markers, and evaluator output into a single
// render-ready plan. Pure combination: it fails only on structural
// inconsistency.
func Assemble(req AssembleRequest) (*domain.RoutePlan, error) {
	if len(req.Waypoints) < 2 ||
		len(req.Legs) != len(req.Waypoints)-1 ||
		len(req.Stops) != len(req.Waypoints)-2 ||
		len(req.Geometry) == 0 {
		return nil, ErrMalformedRoute
	}

	markers := make([]domain.Marker, 0, len(req.Waypoints))
	for i, w := range req.Waypoints {
		var label string
		switch i {
		case 0:
			label = "A"
		case len(req.Waypoints) - 1:
			label = "B"
		default:
			label = strconv.Itoa(i)
		}
		markers = append(markers, domain.Marker{Label: label, Coord: w})
	}

	totalDistance := 0
	totalDuration := 0
	for _, l := range req.Legs {
		totalDistance += l.DistanceMeters
		totalDuration += l.DurationSeconds
	}

	fuelCost := 0.0
	if req.FuelPricePerLiter > 0 && req.FuelEfficiencyKmPerLiter > 0 {
		distanceKm := float64(totalDistance) / 1000
		fuelCost = distanceKm / req.FuelEfficiencyKmPerLiter * req.FuelPricePerLiter
	}

	return &domain.RoutePlan{
		Waypoints:            req.Waypoints,
		Stops:                req.Stops,
		Legs:                 req.Legs,
		Geometry:             req.Geometry,
		Markers:              markers,
		Verdict:              req.Verdict,
		TotalDistanceMeters:  totalDistance,
		TotalDurationSeconds: totalDuration,
		FuelCost:             fuelCost,
	}, nil
}
