package domain

// ZoneID identifies one of the fixed restricted-entry zones.
// The catalog is closed: every ID maps to exactly one Zone.
type ZoneID string

const (
	ZoneMakkah          ZoneID = "makkah"
	ZoneMedina          ZoneID = "medina"
	ZoneRiyadhCenter    ZoneID = "riyadhCenter"
	ZoneEasternProvince ZoneID = "easternProvince"
	ZoneJeddah          ZoneID = "jeddah"
)

// AllZoneIDs lists the catalog in a stable order.
func AllZoneIDs() []ZoneID {
	return []ZoneID{ZoneMakkah, ZoneMedina, ZoneRiyadhCenter, ZoneEasternProvince, ZoneJeddah}
}

// Zone is one named restricted-entry area. Geometry is approximated as a
// circle around the zone center; entry restrictions apply inside the circle
// during the configured daily window.
type Zone struct {
	ID            ZoneID
	Label         string
	DefaultWindow Window
	Center        Coordinates
	RadiusMeters  float64
}

// Fixed catalog. Eastern Province defaults to an empty window (Start == End),
// meaning it restricts nothing until the caller supplies an explicit window.
var zones = map[ZoneID]Zone{
	ZoneMakkah: {
		ID:            ZoneMakkah,
		Label:         "Makkah",
		DefaultWindow: Window{Start: 0, End: 23*60 + 59},
		Center:        Coordinates{Lon: 39.8579, Lat: 21.3891},
		RadiusMeters:  20000,
	},
	ZoneMedina: {
		ID:            ZoneMedina,
		Label:         "Medina",
		DefaultWindow: Window{Start: 0, End: 23*60 + 59},
		Center:        Coordinates{Lon: 39.5692, Lat: 24.5247},
		RadiusMeters:  20000,
	},
	ZoneRiyadhCenter: {
		ID:            ZoneRiyadhCenter,
		Label:         "Riyadh Center",
		DefaultWindow: Window{Start: 6 * 60, End: 21 * 60},
		Center:        Coordinates{Lon: 46.6753, Lat: 24.7136},
		RadiusMeters:  15000,
	},
	ZoneEasternProvince: {
		ID:            ZoneEasternProvince,
		Label:         "Eastern Province",
		DefaultWindow: Window{Start: 0, End: 0},
		Center:        Coordinates{Lon: 50.0888, Lat: 26.4207},
		RadiusMeters:  60000,
	},
	ZoneJeddah: {
		ID:            ZoneJeddah,
		Label:         "Jeddah",
		DefaultWindow: Window{Start: 9 * 60, End: 19 * 60},
		Center:        Coordinates{Lon: 39.1925, Lat: 21.4858},
		RadiusMeters:  25000,
	},
}

// ZoneByID looks up a zone in the fixed catalog. The boolean is false only
// for identifiers outside the closed enum.
func ZoneByID(id ZoneID) (Zone, bool) {
	z, ok := zones[id]
	return z, ok
}

// DefaultWindows returns the default restriction window per zone.
func DefaultWindows() map[ZoneID]Window {
	out := make(map[ZoneID]Window, len(zones))
	for id, z := range zones {
		out[id] = z.DefaultWindow
	}
	return out
}
