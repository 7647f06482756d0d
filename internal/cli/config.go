package cli

import (
	"fmt"
	"io"

	"github.com/limbo/fittrack/internal/clientcfg"
	"github.com/spf13/cobra"
)

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Client configuration",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := *a.cfg
				if cfg.OpenCageKey != "" {
					cfg.OpenCageKey = "********"
				}
				return a.emit(cfg, func(w io.Writer) {
					fmt.Fprintf(w, "api:        %s\n", cfg.APIBaseURL)
					fmt.Fprintf(w, "ai:         %s\n", cfg.AIURL)
					fmt.Fprintf(w, "geocoder:   %s\n", cfg.GeocoderURL)
					fmt.Fprintf(w, "db:         %s\n", cfg.DBPath)
					fmt.Fprintf(w, "interval:   %s\n", cfg.LocationInterval)
					fmt.Fprintf(w, "timeout:    %s\n", cfg.RequestTimeout)
					fmt.Fprintf(w, "utc offset: %+d\n", cfg.TZOffsetHours)
				})
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the effective configuration to the config file",
			RunE: func(cmd *cobra.Command, args []string) error {
				path := a.cfgPath
				if path == "" {
					path = clientcfg.DefaultPath()
				}
				if err := clientcfg.Save(path, a.cfg); err != nil {
					return err
				}
				a.printf("Wrote %s\n", path)
				return nil
			},
		},
	)
	return cmd
}
