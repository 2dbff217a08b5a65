package spatial

import (
	"github.com/golang/geo/s2"

	"trailer-routing-service/internal/domain"
)

const earthRadiusMeters = 6371000.0

// HaversineDistance returns the great-circle distance between two points in meters.
func HaversineDistance(a, b domain.Coordinates) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lon)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lon)
	return p1.Distance(p2).Radians() * earthRadiusMeters
}

// LegIntersectsZone reports whether the great-circle segment between two
// waypoints passes through the zone's circle. The zone catalog models each
// zone as a center plus radius; the minimum distance from the center to the
// segment decides containment.
func LegIntersectsZone(from, to domain.Coordinates, zone domain.Zone) bool {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(zone.Center.Lat, zone.Center.Lon))
	a := s2.PointFromLatLng(s2.LatLngFromDegrees(from.Lat, from.Lon))
	b := s2.PointFromLatLng(s2.LatLngFromDegrees(to.Lat, to.Lon))

	dist := s2.DistanceFromSegment(center, a, b)
	return dist.Radians()*earthRadiusMeters <= zone.RadiusMeters
}
