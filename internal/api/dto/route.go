package dto

import "time"

type StopRequest struct {
	Location        string `json:"location"`
	DurationMinutes int    `json:"duration_minutes"`
}

type DimensionsRequest struct {
	LengthMeters float64 `json:"length_m"`
	WidthMeters  float64 `json:"width_m"`
	HeightMeters float64 `json:"height_m"`
}

type VehicleRequest struct {
	Type            string            `json:"type"`
	AxleCount       int               `json:"axle_count"`
	Dimensions      DimensionsRequest `json:"dimensions"`
	GrossWeightTons float64           `json:"gross_weight_tons"`
	MaxLoadTons     float64           `json:"max_load_tons"`
}

// ZoneSelectionRequest merges the form's activation checkbox with its window
// override. Empty start/end fall back to the registry default.
type ZoneSelectionRequest struct {
	Active bool   `json:"active"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

type RouteRequest struct {
	OriginAddress      string                          `json:"origin_address"`
	DestinationAddress string                          `json:"destination_address"`
	Vehicle            VehicleRequest                  `json:"vehicle"`
	Stops              []StopRequest                   `json:"stops"`
	ProhibitedZones    map[string]ZoneSelectionRequest `json:"prohibited_zones"`
	MandatoryRestHours int                             `json:"mandatory_rest_hours"`
	DepartAt           *time.Time                      `json:"depart_at"`

	FuelPricePerLiter        float64 `json:"fuel_price_per_liter"`
	FuelEfficiencyKmPerLiter float64 `json:"fuel_efficiency_km_per_liter"`
	AvoidFerries             bool    `json:"avoid_ferries"`
	AvoidTolls               bool    `json:"avoid_tolls"`
}

type MarkerResponse struct {
	Label string  `json:"label"`
	Lon   float64 `json:"lon"`
	Lat   float64 `json:"lat"`
}

type LegResponse struct {
	FromIndex       int       `json:"from_index"`
	ToIndex         int       `json:"to_index"`
	DistanceMeters  int       `json:"distance_meters"`
	DurationSeconds int       `json:"duration_seconds"`
	DepartAt        time.Time `json:"depart_at"`
	ArriveAt        time.Time `json:"arrive_at"`
	RestBefore      bool      `json:"rest_before"`
}

type ViolationResponse struct {
	Source   string    `json:"source"`
	LegIndex int       `json:"leg_index"`
	ArriveAt time.Time `json:"arrive_at"`
	Reason   string    `json:"reason"`
}

type RouteResponse struct {
	Feasible             bool                `json:"feasible"`
	Violations           []ViolationResponse `json:"violations"`
	Geometry             [][]float64         `json:"geometry"`
	Markers              []MarkerResponse    `json:"markers"`
	Legs                 []LegResponse       `json:"legs"`
	TotalDistanceMeters  int                 `json:"total_distance_meters"`
	TotalDurationSeconds int                 `json:"total_duration_seconds"`
	FuelCost             float64             `json:"fuel_cost,omitempty"`
}

type ZoneResponse struct {
	ID           string `json:"id"`
	Label        string `json:"label"`
	DefaultStart string `json:"default_start"`
	DefaultEnd   string `json:"default_end"`
}

type ListZonesResponse struct {
	Zones []ZoneResponse `json:"zones"`
}
