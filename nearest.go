package countries

import (
	"math"

	geohash "github.com/TomiHiltunen/geohash-golang"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// earthRadiusKm is the mean Earth radius used to turn angles into kilometres.
const earthRadiusKm = 6371.0088

// latLng returns the record's reference point, if it has a valid one.
func (r *CountryRecord) latLng() (s2.LatLng, bool) {
	if len(r.LatLng) != 2 {
		return s2.LatLng{}, false
	}
	ll := s2.LatLngFromDegrees(r.LatLng[0], r.LatLng[1])
	return ll, ll.IsValid()
}

// LatLng returns the country's reference point in degrees.
func (c Country) LatLng() (lat, lng float64, ok bool) {
	ll, ok := c.rec.latLng()
	if !ok {
		return 0, 0, false
	}
	return ll.Lat.Degrees(), ll.Lng.Degrees(), true
}

// Geohash encodes the country's reference point as a geohash of the given
// precision. Empty when the country has no reference point.
func (c Country) Geohash(precision int) string {
	lat, lng, ok := c.LatLng()
	if !ok || precision <= 0 {
		return ""
	}
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// DistanceKm returns the great-circle distance between the reference points
// of c and other. ok is false when either lacks a reference point.
func (c Country) DistanceKm(other Country) (km float64, ok bool) {
	a, okA := c.rec.latLng()
	b, okB := other.rec.latLng()
	if !okA || !okB {
		return 0, false
	}
	return a.Distance(b).Radians() * earthRadiusKm, true
}

// Nearest returns the country whose reference point is closest to the given
// coordinates. Reference points are country centroids, so this is a coarse
// hint, not a point-in-polygon test. Ties go to the earlier record.
func (r *Repository) Nearest(lat, lng float64) (Country, bool) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return Country{}, false
	}
	query := s2.LatLngFromDegrees(lat, lng)
	if !query.IsValid() {
		return Country{}, false
	}

	best := -1
	var bestDist s1.Angle
	for i := range r.records {
		ll, ok := r.records[i].latLng()
		if !ok {
			continue
		}
		if d := query.Distance(ll); best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Country{}, false
	}
	return Country{rec: &r.records[best]}, true
}
