package utm

import (
	"math"

	"github.com/golang/geo/s1"
)

// Zone bounds.
const (
	MinZone = 1
	MaxZone = 60
)

// ZoneOption selects the zone used for a forward conversion. The zero value
// derives the zone from the longitude.
type ZoneOption struct {
	zone int
	set  bool
}

// AutoZone derives the zone from the longitude being converted.
func AutoZone() ZoneOption { return ZoneOption{} }

// InZone forces the conversion into zone. The zone is validated when the
// option is used, not here.
func InZone(zone int) ZoneOption { return ZoneOption{zone: zone, set: true} }

// Get returns the explicit zone and whether one was given.
func (o ZoneOption) Get() (int, bool) { return o.zone, o.set }

// resolve returns the zone to use for longitude lon in degrees.
func (o ZoneOption) resolve(lon float64) int {
	if o.set {
		return o.zone
	}
	return ZoneOf(lon)
}

// ZoneOf returns floor((lon+180)/6)+1 for lon in degrees. The result is in
// [1,60] for lon in [-180,180); lon == 180 yields 61, which the forward
// conversion rejects.
func ZoneOf(lon float64) int {
	return int(math.Floor((lon+180.0)/6.0)) + 1
}

// ValidZone reports whether zone is in [1,60].
func ValidZone(zone int) bool {
	return zone >= MinZone && zone <= MaxZone
}

// CentralMeridian returns the central meridian of zone, -183+6*zone degrees.
// zone is not validated.
func CentralMeridian(zone int) s1.Angle {
	return s1.Angle(degToRad(-183.0 + float64(6*zone)))
}
