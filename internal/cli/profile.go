package cli

import (
	"fmt"
	"io"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/flow"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/spf13/cobra"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit your profile",
	}
	cmd.AddCommand(a.profileShowCmd(), a.profileEditCmd())
	return cmd
}

func (a *App) profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			user, err := a.backend.GetUser(cmd.Context(), phone)
			if err != nil {
				return err
			}
			return a.emit(user, func(w io.Writer) { renderProfile(w, user) })
		},
	}
}

func (a *App) profileEditCmd() *cobra.Command {
	var (
		firstName, lastName, postalCode string
		height, weight, weightGoal      float64
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change profile fields; only the given flags are updated",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.session(ctx)
			if err != nil {
				return err
			}
			upd := &client.ProfileUpdate{}
			flags := cmd.Flags()
			if flags.Changed("first-name") {
				upd.FirstName = &firstName
			}
			if flags.Changed("last-name") {
				upd.LastName = &lastName
			}
			if flags.Changed("height") {
				upd.Height = &height
			}
			if flags.Changed("weight") {
				upd.Weight = &weight
			}
			if flags.Changed("weight-goal") {
				upd.WeightGoal = &weightGoal
			}
			if flags.Changed("postal-code") {
				lat, lon, looked, err := flow.NewPostalCodeWatcher(a.geo).Feed(ctx, postalCode)
				if err != nil {
					return err
				}
				if !looked {
					return flow.ErrInvalidPostcode
				}
				upd.Latitude, upd.Longitude = &lat, &lon
			}
			user, err := a.backend.UpdateUser(ctx, phone, upd)
			if err != nil {
				return err
			}
			if upd.Weight != nil {
				a.recordWeight(cmd, phone, *upd.Weight)
			}
			return a.emit(user, func(w io.Writer) { renderProfile(w, user) })
		},
	}
	cmd.Flags().StringVar(&firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "last name")
	cmd.Flags().Float64Var(&height, "height", 0, "height in cm")
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kg")
	cmd.Flags().Float64Var(&weightGoal, "weight-goal", 0, "target weight in kg")
	cmd.Flags().StringVar(&postalCode, "postal-code", "", "6 digit postal code of your home")
	return cmd
}

// recordWeight copies a new weight into today's daily record for the weight chart.
func (a *App) recordWeight(cmd *cobra.Command, phone string, weight float64) {
	today := a.now().In(a.cfg.Location()).Format(entity.RecordDateLayout)
	_, err := a.backend.PutDailyRecord(cmd.Context(), phone, today, &client.DailyRecordInput{Weight: &weight})
	if err != nil {
		a.printf("Could not update today's weight: %s\n", err)
	}
}

func renderProfile(w io.Writer, u *entity.User) {
	if u == nil {
		return
	}
	fmt.Fprintf(w, "%s %s (%s)\n", u.FirstName, u.LastName, u.PhoneNumber)
	fmt.Fprintf(w, "  Height: %.1f cm\n", u.Height)
	fmt.Fprintf(w, "  Weight: %.1f kg\n", u.Weight)
	if u.WeightGoal != nil {
		fmt.Fprintf(w, "  Goal:   %.1f kg\n", *u.WeightGoal)
	}
	if u.Latitude != nil && u.Longitude != nil {
		fmt.Fprintf(w, "  Home:   %.4f, %.4f\n", *u.Latitude, *u.Longitude)
	}
}
