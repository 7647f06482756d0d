package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
)

func (a *App) devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage paired devices",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List paired devices",
			RunE: func(cmd *cobra.Command, args []string) error {
				phone, err := a.session(cmd.Context())
				if err != nil {
					return err
				}
				list, err := a.devices.List(cmd.Context(), phone)
				if err != nil {
					if len(list) == 0 {
						return err
					}
					a.printf("Backend unreachable, showing cached devices\n")
				}
				return a.emit(list, func(w io.Writer) { renderDevices(w, list) })
			},
		},
		&cobra.Command{
			Use:   "scan",
			Short: "Look for nearby devices",
			RunE: func(cmd *cobra.Command, args []string) error {
				a.printf("Scanning...\n")
				found, err := a.scanner.Scan(cmd.Context())
				if err != nil {
					return err
				}
				return a.emit(found, func(w io.Writer) {
					for _, d := range found {
						fmt.Fprintf(w, "  %s  %s\n", d.ID, d.Name)
					}
				})
			},
		},
		a.devicesPairCmd(),
		&cobra.Command{
			Use:   "mode <device-id> <Input|Output|Both>",
			Short: "Change a device's mode",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				phone, err := a.session(cmd.Context())
				if err != nil {
					return err
				}
				d, err := a.devices.SetMode(cmd.Context(), phone, args[0], args[1])
				if err != nil {
					return err
				}
				a.printf("Device mode updated to %s\n", d.Mode)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <device-id>",
			Short: "Unpair a device",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				phone, err := a.session(cmd.Context())
				if err != nil {
					return err
				}
				if err = a.devices.Remove(cmd.Context(), phone, args[0]); err != nil {
					return err
				}
				a.printf("Device removed\n")
				return nil
			},
		},
	)
	return cmd
}

func (a *App) devicesPairCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "pair <device-id>",
		Short: "Pair a nearby device under a name of your choice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			nearby, err := a.scanner.Find(ctx, args[0])
			if err != nil {
				return err
			}
			if name, err = a.prompt("Device name", name); err != nil {
				return err
			}
			d, err := a.devices.Pair(ctx, phone, nearby, name)
			if err != nil {
				return err
			}
			a.printf("Device added successfully!\n")
			return a.emit(d, func(w io.Writer) { renderDevices(w, []*entity.Device{d}) })
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name for the device")
	return cmd
}

func renderDevices(w io.Writer, list []*entity.Device) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No paired devices")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, d := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.DeviceID, d.DeviceName, d.Mode)
	}
	tw.Flush()
}
