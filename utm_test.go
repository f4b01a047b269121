package utm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/utm"
)

const toleranceDeg = 1e-6
const toleranceM = 0.01

func TestUTMToLatLonNorth(t *testing.T) {
	cases := []struct {
		easting, northing float64
		zone              int
		lat, lon          float64
	}{
		{234000, 712398, 24, 6.439349839009083, -41.40485722864011},
		{498129, 3908457, 3, 35.319332918415085, -165.02058402610695},
		{649282, 1293870, 54, 11.701152956338074, 142.3697214371168},
		{344509, 90812, 12, 0.8213581392892807, -112.397361571286},
		{240989, 1298731, 26, 11.738499978895081, -29.37642755394301},
		{500918, 5001989, 29, 45.1713809074954, -8.988317635735969},
	}
	for _, c := range cases {
		lat, lon := utm.UTMToLatLon(c.easting, c.northing, c.zone, false)
		if math.Abs(lat-c.lat) > toleranceDeg || math.Abs(lon-c.lon) > toleranceDeg {
			t.Fatalf("%v %v zone %d: expected %.9f %.9f, got %.9f %.9f",
				c.easting, c.northing, c.zone, c.lat, c.lon, lat, lon)
		}
	}
}

func TestUTMToLatLonSouth(t *testing.T) {
	cases := []struct {
		easting, northing float64
		zone              int
		lat, lon          float64
	}{
		{364980, 1239888, 6, -78.84668384971482, -153.2641590470919},
		{801239, 8102939, 48, -17.13840803300152, 107.83117176701103},
		{350029, 2193879, 17, -70.31677158840408, -84.99200976423859},
		{698711, 4028939, 27, -53.84996759976053, -17.97896312219287},
		{246098, 9007879, 44, -8.968079052679851, 78.6907948671293},
		{355987, 3451980, 60, -59.047252269304884, 174.4895290221281},
	}
	for _, c := range cases {
		lat, lon := utm.UTMToLatLon(c.easting, c.northing, c.zone, true)
		if math.Abs(lat-c.lat) > toleranceDeg || math.Abs(lon-c.lon) > toleranceDeg {
			t.Fatalf("%v %v zone %d: expected %.9f %.9f, got %.9f %.9f",
				c.easting, c.northing, c.zone, c.lat, c.lon, lat, lon)
		}
	}
}

func TestUTMToLatLonInto(t *testing.T) {
	var lat, lon float64
	if err := utm.UTMToLatLonInto(355987, 3451980, 60, true, &lat, nil); !errors.Is(err, utm.ErrInvalidOutput) {
		t.Fatalf("expected invalid output, got %v", err)
	}
	if err := utm.UTMToLatLonInto(355987, 3451980, 60, true, nil, &lon); !errors.Is(err, utm.ErrInvalidOutput) {
		t.Fatalf("expected invalid output, got %v", err)
	}
	if err := utm.UTMToLatLonInto(355987, 3451980, 60, true, nil, nil); !errors.Is(err, utm.ErrInvalidOutput) {
		t.Fatalf("expected invalid output, got %v", err)
	}
	if lat != 0 || lon != 0 {
		t.Fatalf("expected outputs untouched, got %f %f", lat, lon)
	}

	if err := utm.UTMToLatLonInto(355987, 3451980, 60, true, &lat, &lon); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(lat+59.047252269304884) > toleranceDeg || math.Abs(lon-174.4895290221281) > toleranceDeg {
		t.Fatalf("got %f %f", lat, lon)
	}
}

func TestUTMToLatLonUncheckedZone(t *testing.T) {
	// out of range zones are not rejected on the inverse path
	var lat, lon float64
	if err := utm.UTMToLatLonInto(500000, 1000000, 61, false, &lat, &lon); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if math.Abs(lon-183) > toleranceDeg {
		t.Fatalf("expected central meridian 183, got %f", lon)
	}
}

type forwardCase struct {
	lat, lon          float64
	zone              int
	easting, northing float64
}

func checkForward(t *testing.T, c forwardCase, opt utm.ZoneOption) {
	t.Helper()
	uc, err := utm.LatLonToUTM(c.lat, c.lon, opt)
	if err != nil {
		t.Fatalf("%f %f: unexpected error: %s", c.lat, c.lon, err)
	}
	if uc.Zone != c.zone {
		t.Fatalf("%f %f: expected zone %d, got %d", c.lat, c.lon, c.zone, uc.Zone)
	}
	if math.Abs(uc.Easting-c.easting) > toleranceM || math.Abs(uc.Northing-c.northing) > toleranceM {
		t.Fatalf("%f %f: expected %.2f %.2f, got %.2f %.2f",
			c.lat, c.lon, c.easting, c.northing, uc.Easting, uc.Northing)
	}
}

func TestLatLonToUTMAutoZone(t *testing.T) {
	for _, c := range []forwardCase{
		{-28.234982, 79.293801, 44, 332593.76, 6875587.59},
		{89.123980, 1.238790, 31, 496994.11, 9900204.20},
		{29.109890, -9.237811, 29, 476861.73, 3220183.95},
		{34.123080, 19.237891, 34, 337498.55, 3777205.02},
		{-33.298711, 127.000999, 52, 313878.33, 6313814.18},
		{60.109830, 18.238791, 34, 346526.84, 6666849.93},
	} {
		checkForward(t, c, utm.AutoZone())
	}
}

func TestLatLonToUTMExplicitZone(t *testing.T) {
	for _, c := range []forwardCase{
		{87.012113, 133.198711, 53, 489518.85, 9664537.05},
		{45.333988, -134.982133, 8, 501399.99, 5020053.48},
		{-27.298790, 89.011000, 45, 699015.55, 6978868.08},
		{-78.123978, 11.037809, 32, 546806.68, 1326979.69},
		{32.871032, -10.923898, 29, 320002.44, 3638630.26},
		{0.129899, -178.129381, 1, 374320.30, 14360.55},
	} {
		checkForward(t, c, utm.InZone(c.zone))
	}
}

func TestLatLonToUTMInvalidZone(t *testing.T) {
	for _, zone := range []int{0, 61, 78, -3} {
		_, err := utm.LatLonToUTM(0.129899, -178.129381, utm.InZone(zone))
		if !errors.Is(err, utm.ErrInvalidZone) {
			t.Fatalf("zone %d: expected invalid zone, got %v", zone, err)
		}
		var ze *utm.Error
		if !errors.As(err, &ze) || ze.Zone != zone {
			t.Fatalf("zone %d: expected offending zone in error, got %v", zone, err)
		}

		easting, northing := -1.0, -1.0
		_, err = utm.LatLonToUTMInto(0.129899, -178.129381, utm.InZone(zone), &easting, &northing)
		if !errors.Is(err, utm.ErrInvalidZone) {
			t.Fatalf("zone %d: expected invalid zone, got %v", zone, err)
		}
		if easting != -1 || northing != -1 {
			t.Fatalf("zone %d: outputs written on failure", zone)
		}
	}

	// the derived zone for longitude 180 is 61
	if _, err := utm.LatLonToUTM(10, 180, utm.AutoZone()); !errors.Is(err, utm.ErrInvalidZone) {
		t.Fatalf("expected invalid zone at longitude 180, got %v", err)
	}
}

func TestLatLonToUTMInto(t *testing.T) {
	var easting, northing float64
	for _, opt := range []utm.ZoneOption{utm.AutoZone(), utm.InZone(0), utm.InZone(78)} {
		if _, err := utm.LatLonToUTMInto(0.129899, -178.129381, opt, nil, &northing); !errors.Is(err, utm.ErrInvalidOutput) {
			t.Fatalf("expected invalid output, got %v", err)
		}
		if _, err := utm.LatLonToUTMInto(0.129899, -178.129381, opt, &easting, nil); !errors.Is(err, utm.ErrInvalidOutput) {
			t.Fatalf("expected invalid output, got %v", err)
		}
		if _, err := utm.LatLonToUTMInto(0.129899, -178.129381, opt, nil, nil); !errors.Is(err, utm.ErrInvalidOutput) {
			t.Fatalf("expected invalid output, got %v", err)
		}
	}
	if easting != 0 || northing != 0 {
		t.Fatalf("outputs written on failure")
	}

	zone, err := utm.LatLonToUTMInto(-28.234982, 79.293801, utm.AutoZone(), &easting, &northing)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if zone != 44 || math.Abs(easting-332593.76) > toleranceM || math.Abs(northing-6875587.59) > toleranceM {
		t.Fatalf("got zone %d %f %f", zone, easting, northing)
	}
}

func TestLatLonToUTMHemisphere(t *testing.T) {
	for lat := -80.0; lat <= 84; lat += 0.5 {
		uc, err := utm.LatLonToUTM(lat, 15, utm.AutoZone())
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if uc.Northing < 0 {
			t.Fatalf("%f: negative northing %f", lat, uc.Northing)
		}
		want := utm.HemisphereNorth
		if lat < 0 {
			want = utm.HemisphereSouth
		}
		if uc.Hemisphere != want {
			t.Fatalf("%f: expected hemisphere %s, got %s", lat, want, uc.Hemisphere)
		}
	}
}

func TestZoneOf(t *testing.T) {
	for lon := -180.0; lon < 180; lon += 0.25 {
		zone := utm.ZoneOf(lon)
		if zone != int(math.Floor((lon+180)/6))+1 {
			t.Fatalf("%f: got zone %d", lon, zone)
		}
		if !utm.ValidZone(zone) {
			t.Fatalf("%f: zone %d out of range", lon, zone)
		}
		uc, err := utm.LatLonToUTM(10, lon, utm.AutoZone())
		if err != nil || uc.Zone != zone {
			t.Fatalf("%f: expected zone %d, got %d (%v)", lon, zone, uc.Zone, err)
		}
	}
	if z, ok := utm.InZone(7).Get(); !ok || z != 7 {
		t.Fatalf("expected explicit zone 7, got %d %v", z, ok)
	}
	if _, ok := (utm.ZoneOption{}).Get(); ok {
		t.Fatalf("expected the zero option to derive the zone")
	}
	if got := utm.CentralMeridian(31).Degrees(); math.Abs(got-3) > 1e-12 {
		t.Fatalf("expected central meridian 3, got %f", got)
	}
}

func TestUTMRoundTrip(t *testing.T) {
	const latInc = 0.5
	const lngInc = 0.5
	for lng := -180.0; lng < 180; lng += lngInc {
		for lat := -80.0; lat <= 84; lat += latInc {
			uc, err := utm.LatLonToUTM(lat, lng, utm.AutoZone())
			if err != nil {
				t.Fatalf("unexpected error at %f %f: %s", lat, lng, err)
			}
			lat2, lng2 := utm.UTMToLatLon(uc.Easting, uc.Northing, uc.Zone, uc.Hemisphere == utm.HemisphereSouth)
			if math.Abs(lat-lat2) > toleranceDeg || math.Abs(lng-lng2) > toleranceDeg {
				t.Fatalf("expected %f %f, got %f %f", lat, lng, lat2, lng2)
			}

			uc2, err := utm.LatLonToUTM(lat2, lng2, utm.InZone(uc.Zone))
			if err != nil {
				t.Fatalf("unexpected error at %f %f: %s", lat2, lng2, err)
			}
			if math.Abs(uc.Easting-uc2.Easting) > toleranceM || math.Abs(uc.Northing-uc2.Northing) > toleranceM {
				t.Fatalf("expected %s, got %s", uc, uc2)
			}
		}
	}
}

func TestGeodeticRoundTrip(t *testing.T) {
	for lng := -177.5; lng < 180; lng += 5 {
		for lat := -79.5; lat < 84; lat += 3 {
			geo := s2.LatLngFromDegrees(lat, lng)
			uc, err := utm.FromGeodetic(geo, utm.AutoZone())
			if err != nil {
				t.Fatalf("unexpected error at %s: %s", geo, err)
			}
			geo2 := utm.ToGeodetic(uc)
			if geo.Distance(geo2) > s1.Angle(toleranceDeg)*s1.Degree {
				t.Fatalf("expected %s, got %s", geo, geo2)
			}
		}
	}
}

func TestCoordString(t *testing.T) {
	uc := utm.Coord{Zone: 44, Hemisphere: utm.HemisphereSouth, Easting: 332593.761, Northing: 6875587.589}
	if got, want := uc.String(), "44S 332593.76mE 6875587.59mN"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
