package domain

import "time"

// Stop is an intermediate halt between origin and destination.
// DwellMinutes is stationary time at the stop, never travel time.
type Stop struct {
	Query        string
	Coord        Coordinates
	DwellMinutes int
}

// Leg is one segment of a route between two consecutive waypoints.
// DepartAt/ArriveAt are filled by constraint evaluation; RestBefore marks a
// mandatory driver rest inserted before this leg started.
type Leg struct {
	FromIndex       int
	ToIndex         int
	DistanceMeters  int
	DurationSeconds int
	DepartAt        time.Time
	ArriveAt        time.Time
	RestBefore      bool
}

// ViolationSourceRestHours marks a violation caused by the driver rest rule
// rather than by a zone window.
const ViolationSourceRestHours = "restHours"

// Violation explains one reason a route is infeasible as planned.
type Violation struct {
	Source   string
	LegIndex int
	ArriveAt time.Time
	Reason   string
}

// Verdict is the feasibility result of evaluating a route. An infeasible
// route is still renderable; the violations tell the user what to adjust.
type Verdict struct {
	Feasible   bool
	Violations []Violation
}

// Marker is a labeled waypoint for the render boundary
// ("A" origin, "1..N" stops, "B" destination).
type Marker struct {
	Label string
	Coord Coordinates
}

// RoutePlan is the render-ready result of a planning request.
// It is immutable planning data and contains no side effects.
type RoutePlan struct {
	Waypoints            []Coordinates
	Stops                []Stop
	Legs                 []Leg
	Geometry             []Coordinates
	Markers              []Marker
	Verdict              Verdict
	TotalDistanceMeters  int
	TotalDurationSeconds int
	FuelCost             float64
}
