package cli

import (
	"context"
	"errors"

	"github.com/limbo/fittrack/internal/poller"
	"github.com/spf13/cobra"
)

func (a *App) pollLocationCmd() *cobra.Command {
	var (
		lat, lon float64
		once     bool
	)
	cmd := &cobra.Command{
		Use:   "poll-location",
		Short: "Post the device location periodically while running",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
				user, err := a.backend.GetUser(ctx, phone)
				if err != nil {
					return err
				}
				if user.Latitude == nil || user.Longitude == nil {
					return errors.New("no home location on your profile, pass --lat and --lon")
				}
				lat, lon = *user.Latitude, *user.Longitude
			}
			p := poller.New(phone, a.cfg.LocationInterval, poller.StaticSource{Latitude: lat, Longitude: lon}, a.backend)
			if once {
				if !p.Tick(ctx) {
					return errors.New("posting location failed")
				}
				a.printf("Location posted\n")
				return nil
			}
			err = p.Run(ctx)
			if errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude to report")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude to report")
	cmd.Flags().BoolVar(&once, "once", false, "post a single location and exit")
	return cmd
}
