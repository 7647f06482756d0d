package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *App) notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Push notification settings",
	}
	var platform, token string
	register := &cobra.Command{
		Use:   "register",
		Short: "Register a device push token for goal notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			endpoint, err := a.backend.RegisterPushToken(cmd.Context(), phone, platform, token)
			if err != nil {
				return err
			}
			return a.emit(endpoint, func(w io.Writer) {
				fmt.Fprintf(w, "Push token registered (%s)\n", endpoint.Platform)
			})
		},
	}
	register.Flags().StringVar(&platform, "platform", "fcm", "push platform")
	register.Flags().StringVar(&token, "token", "", "device push token")
	_ = register.MarkFlagRequired("token")
	cmd.AddCommand(register)
	return cmd
}
