// file: internals/features/apartments/apartments/service/geo.go
package service

import (
	"github.com/mmcloughlin/geohash"
)

const (
	StoredPrecision  = 7 // ~150m cell
	DefaultPrecision = 6 // ~1.2km cell for nearby lookups
)

// Encode returns the stored geohash, or nil when a coordinate is missing/out of range.
func Encode(lat, lng *float64) *string {
	if lat == nil || lng == nil {
		return nil
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return nil
	}
	h := geohash.EncodeWithPrecision(*lat, *lng, StoredPrecision)
	return &h
}

// ClampPrecision keeps nearby precision within what is stored.
func ClampPrecision(p int) int {
	if p <= 0 {
		return DefaultPrecision
	}
	if p > StoredPrecision {
		return StoredPrecision
	}
	return p
}

// NearbyCells returns the center cell followed by its 8 neighbours.
func NearbyCells(lat, lng float64, precision int) []string {
	center := geohash.EncodeWithPrecision(lat, lng, uint(ClampPrecision(precision)))
	return append([]string{center}, geohash.Neighbors(center)...)
}
