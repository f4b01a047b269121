package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tzneal/utm"
	"github.com/tzneal/utm/internal/logging"
)

type inverseResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func newInverseCmd(a *app) *cobra.Command {
	var easting, northing float64
	var zone int
	var south bool

	cmd := &cobra.Command{
		Use:     "inverse",
		Short:   "Convert UTM easting/northing to latitude/longitude in degrees",
		Example: `  utmconv inverse --easting=234000 --northing=712398 --zone=24`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !utm.ValidZone(zone) {
				// the library accepts any zone here; warn rather than fail
				a.log.WithField("zone", zone).Warn("zone outside 1-60, result has no geographic meaning")
			}

			lat, lon := utm.UTMToLatLon(easting, northing, zone, south)
			a.log.WithFields(logging.Fields{
				"easting":  easting,
				"northing": northing,
				"zone":     zone,
				"south":    south,
				"lat":      lat,
				"lon":      lon,
			}).Debug("inverse conversion")

			return a.render(cmd, inverseResult{Latitude: lat, Longitude: lon},
				fmt.Sprintf("%.9f %.9f", lat, lon))
		},
	}

	cmd.Flags().Float64Var(&easting, "easting", 0, "easting in meters")
	cmd.Flags().Float64Var(&northing, "northing", 0, "northing in meters")
	cmd.Flags().IntVar(&zone, "zone", 0, "UTM zone 1-60")
	cmd.Flags().BoolVar(&south, "south", false, "coordinate is in the southern hemisphere")
	_ = cmd.MarkFlagRequired("easting")
	_ = cmd.MarkFlagRequired("northing")
	_ = cmd.MarkFlagRequired("zone")
	return cmd
}
