package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"trailer-routing-service/internal/api/dto"
	"trailer-routing-service/internal/domain"
	"trailer-routing-service/internal/ports"
	"trailer-routing-service/internal/services"
)

type RouteHandler struct {
	Geocoder   ports.Geocoder
	Directions ports.DirectionsProvider
	Intersects ports.ZonePredicate
}

// Plan runs the full route-planning pipeline for one form submission.
// Provider failures abort with a single user-facing message; an infeasible
// route is still a 200 carrying its violations.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	svcReq, err := toPlanTripRequest(req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := services.PlanTrip(r.Context(), svcReq, services.PlanTripDeps{
		Geocoder:   h.Geocoder,
		Directions: h.Directions,
		Intersects: h.Intersects,
	})
	if err != nil {
		status, msg := planErrorResponse(err)
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(plan))
}

func toPlanTripRequest(req dto.RouteRequest) (services.PlanTripRequest, error) {
	vehicleType := domain.VehicleType(req.Vehicle.Type)
	switch vehicleType {
	case domain.VehicleTrailer, domain.VehicleFiveAxleTrailer, "":
	default:
		return services.PlanTripRequest{}, fmt.Errorf("unknown vehicle type %q", req.Vehicle.Type)
	}
	if req.Vehicle.AxleCount != 0 && req.Vehicle.AxleCount < 2 {
		return services.PlanTripRequest{}, errors.New("axle_count must be at least 2")
	}
	if req.MandatoryRestHours < 0 || req.MandatoryRestHours > 24 {
		return services.PlanTripRequest{}, errors.New("mandatory_rest_hours must be between 0 and 24")
	}

	stops := make([]services.StopInput, 0, len(req.Stops))
	for _, s := range req.Stops {
		if s.DurationMinutes < 0 {
			return services.PlanTripRequest{}, errors.New("stop duration_minutes must not be negative")
		}
		stops = append(stops, services.StopInput{Query: s.Location, DwellMinutes: s.DurationMinutes})
	}

	zones := make(map[domain.ZoneID]services.ZoneSelection, len(req.ProhibitedZones))
	for rawID, sel := range req.ProhibitedZones {
		id := domain.ZoneID(rawID)
		if _, ok := domain.ZoneByID(id); !ok {
			return services.PlanTripRequest{}, fmt.Errorf("unknown zone %q", rawID)
		}

		selection := services.ZoneSelection{Active: sel.Active}
		if sel.Start != "" || sel.End != "" {
			start, err := domain.ParseTimeOfDay(sel.Start)
			if err != nil {
				return services.PlanTripRequest{}, fmt.Errorf("zone %q: %w", rawID, err)
			}
			end, err := domain.ParseTimeOfDay(sel.End)
			if err != nil {
				return services.PlanTripRequest{}, fmt.Errorf("zone %q: %w", rawID, err)
			}
			selection.Window = &domain.Window{Start: start, End: end}
		}
		zones[id] = selection
	}

	departAt := time.Now()
	if req.DepartAt != nil {
		departAt = *req.DepartAt
	}

	return services.PlanTripRequest{
		Origin:      req.OriginAddress,
		Destination: req.DestinationAddress,
		Stops:       stops,
		Vehicle: domain.VehicleProfile{
			Type:      vehicleType,
			AxleCount: req.Vehicle.AxleCount,
			Dimensions: domain.Dimensions{
				Length: req.Vehicle.Dimensions.LengthMeters,
				Width:  req.Vehicle.Dimensions.WidthMeters,
				Height: req.Vehicle.Dimensions.HeightMeters,
			},
			GrossWeightTons: req.Vehicle.GrossWeightTons,
			MaxLoadTons:     req.Vehicle.MaxLoadTons,
		},
		Zones:                    zones,
		RestHours:                req.MandatoryRestHours,
		DepartAt:                 departAt,
		FuelPricePerLiter:        req.FuelPricePerLiter,
		FuelEfficiencyKmPerLiter: req.FuelEfficiencyKmPerLiter,
		AvoidFerries:             req.AvoidFerries,
		AvoidTolls:               req.AvoidTolls,
	}, nil
}

// planErrorResponse maps pipeline failures to a status and a single
// user-facing message; the underlying kind stays in the logs.
func planErrorResponse(err error) (int, string) {
	var ge *ports.GeocodeError
	if errors.As(err, &ge) {
		switch ge.Kind {
		case ports.GeocodeProviderUnavailable:
			return http.StatusBadGateway, "geocoding provider unavailable"
		default:
			return http.StatusUnprocessableEntity, "could not resolve one or more addresses"
		}
	}

	var de *ports.DirectionsError
	if errors.As(err, &de) {
		switch de.Kind {
		case ports.DirectionsProviderUnavailable:
			return http.StatusBadGateway, "directions provider unavailable"
		default:
			return http.StatusUnprocessableEntity, "no drivable route found between the given locations"
		}
	}

	if errors.Is(err, services.ErrEmptyRoute) {
		return http.StatusBadRequest, "origin and destination are required"
	}
	if errors.Is(err, services.ErrMalformedRoute) {
		return http.StatusBadGateway, "directions provider returned an inconsistent route"
	}

	return http.StatusInternalServerError, "internal server error"
}

func toRouteResponse(plan *domain.RoutePlan) dto.RouteResponse {
	violations := make([]dto.ViolationResponse, 0, len(plan.Verdict.Violations))
	for _, v := range plan.Verdict.Violations {
		violations = append(violations, dto.ViolationResponse{
			Source:   v.Source,
			LegIndex: v.LegIndex,
			ArriveAt: v.ArriveAt,
			Reason:   v.Reason,
		})
	}

	geometry := make([][]float64, 0, len(plan.Geometry))
	for _, c := range plan.Geometry {
		geometry = append(geometry, c.CoordsToList())
	}

	markers := make([]dto.MarkerResponse, 0, len(plan.Markers))
	for _, m := range plan.Markers {
		markers = append(markers, dto.MarkerResponse{Label: m.Label, Lon: m.Coord.Lon, Lat: m.Coord.Lat})
	}

	legs := make([]dto.LegResponse, 0, len(plan.Legs))
	for _, l := range plan.Legs {
		legs = append(legs, dto.LegResponse{
			FromIndex:       l.FromIndex,
			ToIndex:         l.ToIndex,
			DistanceMeters:  l.DistanceMeters,
			DurationSeconds: l.DurationSeconds,
			DepartAt:        l.DepartAt,
			ArriveAt:        l.ArriveAt,
			RestBefore:      l.RestBefore,
		})
	}

	return dto.RouteResponse{
		Feasible:             plan.Verdict.Feasible,
		Violations:           violations,
		Geometry:             geometry,
		Markers:              markers,
		Legs:                 legs,
		TotalDistanceMeters:  plan.TotalDistanceMeters,
		TotalDurationSeconds: plan.TotalDurationSeconds,
		FuelCost:             plan.FuelCost,
	}
}
