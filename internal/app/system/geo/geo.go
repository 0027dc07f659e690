// internal/app/system/geo/geo.go
package geo

import (
	"errors"
	"strconv"
)

// MongoDB geospatial queries take coordinates longitude-first. A caller
// that transposes lat/lng gets silently wrong results from $near, so the
// parse step range-checks both axes instead of trusting the input.

var (
	// ErrBadLongitude is returned for an unparseable or out-of-range longitude.
	ErrBadLongitude = errors.New("longitude must be a number between -180 and 180")
	// ErrBadLatitude is returned for an unparseable or out-of-range latitude.
	ErrBadLatitude = errors.New("latitude must be a number between -90 and 90")
)

// ParseLngLat parses the separate lng/lat query parameters into a
// longitude-first coordinate pair.
func ParseLngLat(lngStr, latStr string) (lng, lat float64, err error) {
	lng, err = strconv.ParseFloat(lngStr, 64)
	if err != nil || lng < -180 || lng > 180 {
		return 0, 0, ErrBadLongitude
	}
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, ErrBadLatitude
	}
	return lng, lat, nil
}

// ValidatePair checks an already-assembled longitude-first pair, for form
// submissions that post coordinates as floats.
func ValidatePair(lng, lat float64) error {
	if lng < -180 || lng > 180 {
		return ErrBadLongitude
	}
	if lat < -90 || lat > 90 {
		return ErrBadLatitude
	}
	return nil
}
