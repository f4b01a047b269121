package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tzneal/utm"
	"github.com/tzneal/utm/internal/logging"
)

type forwardResult struct {
	Zone       int     `json:"zone"`
	Hemisphere string  `json:"hemisphere"`
	Easting    float64 `json:"easting"`
	Northing   float64 `json:"northing"`
}

func newForwardCmd(a *app) *cobra.Command {
	var lat, lon float64
	var zone int

	cmd := &cobra.Command{
		Use:   "forward",
		Short: "Convert latitude/longitude in degrees to UTM",
		Example: `  utmconv forward --lat=-28.234982 --lon=79.293801
  utmconv forward --lat=45.333988 --lon=-134.982133 --zone=8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt := utm.AutoZone()
			if cmd.Flags().Changed("zone") {
				opt = utm.InZone(zone)
			}

			c, err := utm.LatLonToUTM(lat, lon, opt)
			if err != nil {
				a.log.WithFields(logging.Fields{"lat": lat, "lon": lon, "zone": zone}).Error("forward conversion failed")
				return fmt.Errorf("converting %f,%f: %w", lat, lon, err)
			}
			a.log.WithFields(logging.Fields{
				"lat":      lat,
				"lon":      lon,
				"zone":     c.Zone,
				"easting":  c.Easting,
				"northing": c.Northing,
			}).Debug("forward conversion")

			return a.render(cmd, forwardResult{
				Zone:       c.Zone,
				Hemisphere: c.Hemisphere.String(),
				Easting:    c.Easting,
				Northing:   c.Northing,
			}, c.String())
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	cmd.Flags().IntVar(&zone, "zone", 0, "UTM zone 1-60 (default derived from --lon)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
