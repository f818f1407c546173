package matching

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(a, b Location) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// DistanceCap is either Capped(km) or Uncapped. The zero value is Uncapped.
type DistanceCap struct {
	capped bool
	km     float64
}

// Capped returns a cap at maxKm; distances at or beyond it score 0.
func Capped(maxKm float64) DistanceCap { return DistanceCap{capped: true, km: maxKm} }

// Uncapped returns a cap-less option; the score decays exponentially.
func Uncapped() DistanceCap { return DistanceCap{} }

// Max returns the cap and whether one is set.
func (c DistanceCap) Max() (float64, bool) { return c.km, c.capped }

func (c DistanceCap) String() string {
	if !c.capped {
		return "uncapped"
	}
	return strconv.FormatFloat(c.km, 'f', -1, 64) + "km"
}

// ParseDistanceCap accepts "none", "uncapped" or "off" for Uncapped, and a
// positive number of kilometres for Capped.
func ParseDistanceCap(s string) (DistanceCap, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "none", "uncapped", "off", "":
		return Uncapped(), nil
	default:
		km, err := strconv.ParseFloat(strings.TrimSuffix(v, "km"), 64)
		if err != nil || km <= 0 || math.IsInf(km, 0) || math.IsNaN(km) {
			return DistanceCap{}, fmt.Errorf("%w: %q", ErrInvalidDistanceCap, s)
		}
		return Capped(km), nil
	}
}
