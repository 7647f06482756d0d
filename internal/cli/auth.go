package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/limbo/fittrack/internal/flow"
	"github.com/spf13/cobra"
)

func (a *App) loginCmd() *cobra.Command {
	var phone, code string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with phone number and one-time passcode",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			phone, err := a.prompt("Phone number", phone)
			if err != nil {
				return err
			}
			login := flow.NewLogin(a.backend, a.store)
			ch, err := login.SendOTP(ctx, phone)
			if err != nil {
				return err
			}
			a.printf("Passcode sent, valid until %s\n", ch.ExpiresAt.In(a.cfg.Location()).Format("15:04"))
			code, err := a.prompt("Passcode", code)
			if err != nil {
				return err
			}
			res, err := login.Verify(ctx, code)
			if err != nil {
				if errors.Is(err, flow.ErrInvalidOTP) {
					return errors.New("invalid OTP, please try again")
				}
				return err
			}
			if res.NeedsSignup {
				a.printf("No profile for %s yet, let's create one.\n", res.PhoneNumber)
				return a.runSignup(cmd, &flow.SignupForm{PhoneNumber: res.PhoneNumber})
			}
			a.ensureToday(ctx, res.PhoneNumber)
			a.printf("Welcome back, %s!\n", res.User.FirstName)
			return nil
		},
	}
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&code, "code", "", "one-time passcode")
	return cmd
}

func (a *App) signupCmd() *cobra.Command {
	form := &flow.SignupForm{}
	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create the profile of the logged in phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			form.PhoneNumber = phone
			return a.runSignup(cmd, form)
		},
	}
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&form.Height, "height", "", "height in cm")
	cmd.Flags().StringVar(&form.Weight, "weight", "", "weight in kg")
	cmd.Flags().StringVar(&form.PostalCode, "postal-code", "", "6 digit postal code, used for your home location")
	return cmd
}

func (a *App) runSignup(cmd *cobra.Command, form *flow.SignupForm) error {
	var err error
	fields := []struct {
		label string
		value *string
	}{
		{"First name", &form.FirstName},
		{"Last name", &form.LastName},
		{"Height (cm)", &form.Height},
		{"Weight (kg)", &form.Weight},
	}
	for _, f := range fields {
		if *f.value, err = a.prompt(f.label, *f.value); err != nil {
			return err
		}
	}
	if !cmd.Flags().Changed("postal-code") && form.PostalCode == "" {
		if form.PostalCode, err = a.prompt("Postal code (optional)", ""); err != nil {
			return err
		}
	}
	user, err := flow.Signup(cmd.Context(), a.backend, a.geo, form)
	if err != nil {
		return err
	}
	a.ensureToday(cmd.Context(), user.PhoneNumber)
	return a.emit(user, func(w io.Writer) {
		fmt.Fprintf(w, "Signed up as %s %s\n", user.FirstName, user.LastName)
	})
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.ClearSession(cmd.Context()); err != nil {
				return err
			}
			a.printf("Logged out\n")
			return nil
		},
	}
}
