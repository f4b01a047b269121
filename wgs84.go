package utm

import "math"

// WGS84 ellipsoid axes in meters.
const (
	SemiMajorAxis = 6378137.0
	SemiMinorAxis = 6356752.314
)

// ScaleFactor is the UTM scale factor along the central meridian.
const ScaleFactor = 0.9996

// FalseEasting is added to every easting so the central meridian maps to
// 500 km.
const FalseEasting = 500000.0

// FalseNorthingSouth is added to southern hemisphere northings.
const FalseNorthingSouth = 10000000.0

// Helmert's n, shared by the meridian arc and footpoint series.
const helmertN = (SemiMajorAxis - SemiMinorAxis) / (SemiMajorAxis + SemiMinorAxis)

// second eccentricity squared
const ep2 = (SemiMajorAxis*SemiMajorAxis - SemiMinorAxis*SemiMinorAxis) /
	(SemiMinorAxis * SemiMinorAxis)

func degToRad(deg float64) float64 { return deg / 180.0 * math.Pi }

func radToDeg(rad float64) float64 { return rad / math.Pi * 180.0 }
