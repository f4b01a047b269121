package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tzneal/utm"
)

type zoneResult struct {
	Zone            int     `json:"zone"`
	CentralMeridian float64 `json:"central_meridian"`
}

func newZoneCmd(a *app) *cobra.Command {
	var lon float64

	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Show the UTM zone and central meridian for a longitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := utm.ZoneOf(lon)
			if !utm.ValidZone(zone) {
				return fmt.Errorf("longitude %f: %w", lon, &utm.Error{Kind: utm.InvalidZone, Zone: zone})
			}
			cm := utm.CentralMeridian(zone).Degrees()
			return a.render(cmd, zoneResult{Zone: zone, CentralMeridian: cm},
				fmt.Sprintf("%d %.6f", zone, cm))
		},
	}

	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}
