package domain

// VehicleType matches the vehicle classes offered by the input form.
type VehicleType string

const (
	VehicleFiveAxleTrailer VehicleType = "5-axle-trailer"
	VehicleTrailer         VehicleType = "trailer"
)

// Dimensions of the vehicle in meters.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// VehicleProfile describes the truck being routed. Zone entry restrictions
// currently apply to the trailer class only.
type VehicleProfile struct {
	Type            VehicleType
	AxleCount       int
	Dimensions      Dimensions
	GrossWeightTons float64
	MaxLoadTons     float64
}

// SubjectToZoneRestrictions reports whether zone windows are evaluated for
// this vehicle class.
func (v VehicleProfile) SubjectToZoneRestrictions() bool {
	return v.Type == VehicleTrailer
}
