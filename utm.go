// Package utm converts WGS84 latitude/longitude to Universal Transverse
// Mercator coordinates and back.
package utm

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	default:
		return "?"
	}
}

// Coord is a UTM coordinate
type Coord struct {
	Zone       int
	Hemisphere Hemisphere
	Easting    float64
	Northing   float64
}

func (c Coord) String() string {
	return fmt.Sprintf("%d%s %.2fmE %.2fmN", c.Zone, c.Hemisphere, c.Easting, c.Northing)
}

// LatLonToUTM converts a latitude and longitude in degrees to UTM easting
// and northing in meters. With AutoZone the zone is derived from lon; an
// explicit or derived zone outside [1,60] fails with an InvalidZone *Error.
//
// A point whose projected northing is negative is given the southern
// hemisphere false northing and reported as HemisphereSouth.
func LatLonToUTM(lat, lon float64, zone ZoneOption) (Coord, error) {
	z := zone.resolve(lon)
	if !ValidZone(z) {
		return Coord{}, &Error{Kind: InvalidZone, Zone: z}
	}

	transverseMercator := NewTransverseMercator(CentralMeridian(z))
	m := transverseMercator.ConvertFromGeodetic(s2.LatLng{
		Lat: s1.Angle(degToRad(lat)),
		Lng: s1.Angle(degToRad(lon)),
	})

	c := Coord{
		Zone:       z,
		Hemisphere: HemisphereNorth,
		Easting:    m.Easting*ScaleFactor + FalseEasting,
		Northing:   m.Northing * ScaleFactor,
	}
	if c.Northing < 0 {
		c.Northing += FalseNorthingSouth
		c.Hemisphere = HemisphereSouth
	}
	return c, nil
}

// FromGeodetic is LatLonToUTM for an s2.LatLng.
func FromGeodetic(geodeticCoordinates s2.LatLng, zone ZoneOption) (Coord, error) {
	return LatLonToUTM(geodeticCoordinates.Lat.Degrees(), geodeticCoordinates.Lng.Degrees(), zone)
}

// LatLonToUTMInto is LatLonToUTM writing into caller owned destinations.
// It returns the zone used. A nil destination fails with InvalidOutput
// before anything else is checked, and nothing is written on failure.
func LatLonToUTMInto(lat, lon float64, zone ZoneOption, easting, northing *float64) (int, error) {
	if easting == nil || northing == nil {
		return 0, &Error{Kind: InvalidOutput}
	}
	c, err := LatLonToUTM(lat, lon, zone)
	if err != nil {
		return 0, err
	}
	*easting = c.Easting
	*northing = c.Northing
	return c.Zone, nil
}

// UTMToLatLon converts a UTM easting and northing in meters to latitude and
// longitude in degrees. south selects the southern hemisphere false
// northing.
//
// zone is not range checked: a zone outside [1,60] gives a central meridian
// outside [-177,177] and a result with no geographic meaning.
func UTMToLatLon(easting, northing float64, zone int, south bool) (lat, lon float64) {
	if south {
		northing -= FalseNorthingSouth
	}
	m := MapCoords{
		Easting:  (easting - FalseEasting) / ScaleFactor,
		Northing: northing / ScaleFactor,
	}

	transverseMercator := NewTransverseMercator(CentralMeridian(zone))
	ll := transverseMercator.ConvertToGeodetic(m)
	return radToDeg(ll.Lat.Radians()), radToDeg(ll.Lng.Radians())
}

// ToGeodetic is UTMToLatLon for a Coord.
func ToGeodetic(utmCoordinates Coord) s2.LatLng {
	lat, lon := UTMToLatLon(utmCoordinates.Easting, utmCoordinates.Northing,
		utmCoordinates.Zone, utmCoordinates.Hemisphere == HemisphereSouth)
	return s2.LatLngFromDegrees(lat, lon)
}

// UTMToLatLonInto is UTMToLatLon writing into caller owned destinations. It
// fails only with InvalidOutput, when a destination is nil.
func UTMToLatLonInto(easting, northing float64, zone int, south bool, lat, lon *float64) error {
	if lat == nil || lon == nil {
		return &Error{Kind: InvalidOutput}
	}
	*lat, *lon = UTMToLatLon(easting, northing, zone, south)
	return nil
}
