package utm

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// MapCoords is a raw transverse Mercator coordinate in meters, before the
// UTM scale factor and false origin are applied.
type MapCoords struct {
	Easting  float64
	Northing float64
}

// TransverseMercator provides conversions between geodetic coordinates
// (latitude and longitude) and unscaled Transverse Mercator projection
// coordinates about a single central meridian on the WGS84 ellipsoid.
//
// The series are the ones given in Hoffmann-Wellenhof, Lichtenegger and
// Collins, GPS: Theory and Practice, 3rd ed. (1994), truncated at the 8th
// power of the longitude (or easting) offset. They are accurate within a
// UTM zone and degrade silently further from the central meridian.
type TransverseMercator struct {
	centralMeridian float64 // radians
}

// NewTransverseMercator constructs a converter about centralMeridian.
func NewTransverseMercator(centralMeridian s1.Angle) TransverseMercator {
	return TransverseMercator{centralMeridian: centralMeridian.Radians()}
}

// CentralMeridian returns the meridian the projection is centered on.
func (t TransverseMercator) CentralMeridian() s1.Angle {
	return s1.Angle(t.centralMeridian)
}

// ConvertFromGeodetic projects geodeticCoordinates.
func (t TransverseMercator) ConvertFromGeodetic(geodeticCoordinates s2.LatLng) MapCoords {
	var c MapCoords
	c.Easting, c.Northing = mapLatLonToXY(geodeticCoordinates.Lat.Radians(),
		geodeticCoordinates.Lng.Radians(), t.centralMeridian)
	return c
}

// ConvertToGeodetic inverts ConvertFromGeodetic.
func (t TransverseMercator) ConvertToGeodetic(mapProjectionCoordinates MapCoords) s2.LatLng {
	phi, lambda := mapXYToLatLon(mapProjectionCoordinates.Easting,
		mapProjectionCoordinates.Northing, t.centralMeridian)
	return s2.LatLng{Lat: s1.Angle(phi), Lng: s1.Angle(lambda)}
}

// arcAlpha is the leading coefficient shared by the meridian arc and the
// footpoint latitude series.
func arcAlpha() float64 {
	n2 := helmertN * helmertN
	n4 := n2 * n2
	return ((SemiMajorAxis + SemiMinorAxis) / 2.0) * (1.0 + n2/4.0 + n4/64.0)
}

// arcLengthOfMeridian returns the ellipsoidal distance in meters from the
// equator to latitude phi (radians). The sign follows phi.
func arcLengthOfMeridian(phi float64) float64 {
	n := helmertN
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	alpha := arcAlpha()
	beta := (-3.0 * n / 2.0) + (9.0 * n3 / 16.0) + (-3.0 * n5 / 32.0)
	gamma := (15.0 * n2 / 16.0) + (-15.0 * n4 / 32.0)
	delta := (-35.0 * n3 / 48.0) + (105.0 * n5 / 256.0)
	epsilon := 315.0 * n4 / 512.0

	return alpha * (phi +
		beta*math.Sin(2.0*phi) +
		gamma*math.Sin(4.0*phi) +
		delta*math.Sin(6.0*phi) +
		epsilon*math.Sin(8.0*phi))
}

// footpointLatitude returns the latitude (radians) of the point on the
// central meridian whose arc length is the unscaled northing y.
func footpointLatitude(y float64) float64 {
	n := helmertN
	n2 := n * n
	n3 := n2 * n
	n4 := n3 * n
	n5 := n4 * n

	yRect := y / arcAlpha()

	beta := (3.0 * n / 2.0) + (-27.0 * n3 / 32.0) + (269.0 * n5 / 512.0)
	gamma := (21.0 * n2 / 16.0) + (-55.0 * n4 / 32.0)
	delta := (151.0 * n3 / 96.0) + (-417.0 * n5 / 128.0)
	epsilon := 1097.0 * n4 / 512.0

	return yRect +
		beta*math.Sin(2.0*yRect) +
		gamma*math.Sin(4.0*yRect) +
		delta*math.Sin(6.0*yRect) +
		epsilon*math.Sin(8.0*yRect)
}

// mapLatLonToXY projects (phi, lambda) about lambda0, all in radians, and
// returns the unscaled easting and northing in meters.
func mapLatLonToXY(phi, lambda, lambda0 float64) (x, y float64) {
	c := math.Cos(phi)
	c2 := c * c
	nu2 := ep2 * c2
	N := (SemiMajorAxis * SemiMajorAxis) / (SemiMinorAxis * math.Sqrt(1+nu2))

	t := math.Tan(phi)
	t2 := t * t
	t4 := t2 * t2
	t6 := t4 * t2

	l := lambda - lambda0

	// l**1 and l**2 have coefficients of 1.0
	l3coef := 1.0 - t2 + nu2
	l4coef := 5.0 - t2 + 9*nu2 + 4.0*(nu2*nu2)
	l5coef := 5.0 - 18.0*t2 + t4 + 14.0*nu2 - 58.0*t2*nu2
	l6coef := 61.0 - 58.0*t2 + t4 + 270.0*nu2 - 330.0*t2*nu2
	l7coef := 61.0 - 479.0*t2 + 179.0*t4 - t6
	l8coef := 1385.0 - 3111.0*t2 + 543.0*t4 - t6

	// powers of cos(phi) * l
	cl := c * l
	cl2 := cl * cl
	cl3 := cl2 * cl
	cl4 := cl2 * cl2
	cl5 := cl4 * cl
	cl6 := cl4 * cl2
	cl7 := cl6 * cl
	cl8 := cl4 * cl4

	x = N*cl +
		N/6.0*l3coef*cl3 +
		N/120.0*l5coef*cl5 +
		N/5040.0*l7coef*cl7

	y = arcLengthOfMeridian(phi) +
		t/2.0*N*cl2 +
		t/24.0*N*l4coef*cl4 +
		t/720.0*N*l6coef*cl6 +
		t/40320.0*N*l8coef*cl8
	return x, y
}

// mapXYToLatLon inverts mapLatLonToXY. x and y are unscaled meters, lambda0
// and the results are radians.
func mapXYToLatLon(x, y, lambda0 float64) (phi, lambda float64) {
	phif := footpointLatitude(y)

	cf := math.Cos(phif)
	nuf2 := ep2 * cf * cf
	Nf := (SemiMajorAxis * SemiMajorAxis) / (SemiMinorAxis * math.Sqrt(1+nuf2))

	tf := math.Tan(phif)
	tf2 := tf * tf
	tf4 := tf2 * tf2
	tf6 := tf4 * tf2

	// fractional coefficients for x**n
	Nfpow := Nf
	x1frac := 1.0 / (Nfpow * cf)
	Nfpow *= Nf
	x2frac := tf / (2.0 * Nfpow)
	Nfpow *= Nf
	x3frac := 1.0 / (6.0 * Nfpow * cf)
	Nfpow *= Nf
	x4frac := tf / (24.0 * Nfpow)
	Nfpow *= Nf
	x5frac := 1.0 / (120.0 * Nfpow * cf)
	Nfpow *= Nf
	x6frac := tf / (720.0 * Nfpow)
	Nfpow *= Nf
	x7frac := 1.0 / (5040.0 * Nfpow * cf)
	Nfpow *= Nf
	x8frac := tf / (40320.0 * Nfpow)

	// polynomial coefficients for x**n; x**1 has none
	x2poly := -1.0 - nuf2
	x3poly := -1.0 - 2*tf2 - nuf2
	x4poly := 5.0 + 3.0*tf2 + 6.0*nuf2 - 6.0*tf2*nuf2 -
		3.0*(nuf2*nuf2) - 9.0*tf2*(nuf2*nuf2)
	x5poly := 5.0 + 28.0*tf2 + 24.0*tf4 + 6.0*nuf2 + 8.0*tf2*nuf2
	x6poly := -61.0 - 90.0*tf2 - 45.0*tf4 - 107.0*nuf2 + 162.0*tf2*nuf2
	x7poly := -61.0 - 662.0*tf2 - 1320.0*tf4 - 720.0*tf6
	x8poly := 1385.0 + 3633.0*tf2 + 4095.0*tf4 + 1575*tf6

	xx2 := x * x
	xx3 := xx2 * x
	xx4 := xx2 * xx2
	xx5 := xx4 * x
	xx6 := xx4 * xx2
	xx7 := xx6 * x
	xx8 := xx4 * xx4

	phi = phif +
		x2frac*x2poly*xx2 +
		x4frac*x4poly*xx4 +
		x6frac*x6poly*xx6 +
		x8frac*x8poly*xx8

	lambda = lambda0 +
		x1frac*x +
		x3frac*x3poly*xx3 +
		x5frac*x5poly*xx5 +
		x7frac*x7poly*xx7
	return phi, lambda
}
