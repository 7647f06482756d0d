package flow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
)

const otpLength = 4

// Result of a completed login. NeedsSignup is set when the phone number has
// no profile yet; User is nil in that case.
type Result struct {
	PhoneNumber string
	User        *entity.User
	NeedsSignup bool
}

// Login drives the phone number + passcode exchange.
type Login struct {
	api   AuthAPI
	store SessionStore
	phone string
	sent  *client.OTPChallenge
}

func NewLogin(api AuthAPI, store SessionStore) *Login {
	return &Login{api: api, store: store}
}

func (l *Login) SendOTP(ctx context.Context, phone string) (*client.OTPChallenge, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, ErrIncompleteForm
	}
	ch, err := l.api.SendOTP(ctx, phone)
	if err != nil {
		return nil, err
	}
	l.phone = phone
	l.sent = ch
	return ch, nil
}

func validOTPFormat(code string) bool {
	if len(code) != otpLength {
		return false
	}
	for _, c := range code {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Verify checks the code and stores the session. A phone without a profile
// yields Result.NeedsSignup instead of an error.
func (l *Login) Verify(ctx context.Context, code string) (*Result, error) {
	if l.sent == nil {
		return nil, ErrNoChallenge
	}
	code = strings.TrimSpace(code)
	if !validOTPFormat(code) {
		return nil, ErrInvalidOTP
	}
	res, err := l.api.VerifyOTP(ctx, l.phone, code)
	if err != nil {
		if client.StatusCode(err) == http.StatusUnauthorized {
			return nil, ErrInvalidOTP
		}
		return nil, err
	}
	l.api.SetToken(res.Token)
	if err = l.store.SaveSession(ctx, l.phone, res.Token); err != nil {
		return nil, err
	}
	user, err := l.api.GetUser(ctx, l.phone)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			slog.Debug("login: no profile yet", slog.String("phone", l.phone))
			return &Result{PhoneNumber: l.phone, NeedsSignup: true}, nil
		}
		return nil, err
	}
	return &Result{PhoneNumber: l.phone, User: user}, nil
}

// SignupForm mirrors the signup screen, every value as typed.
type SignupForm struct {
	PhoneNumber string `validate:"required" yaml:"phoneNumber"`
	FirstName   string `validate:"required" yaml:"firstName"`
	LastName    string `validate:"required" yaml:"lastName"`
	Height      string `validate:"required,numeric" yaml:"height"`
	Weight      string `validate:"required,numeric" yaml:"weight"`
	PostalCode  string `validate:"omitempty,len=6,numeric" yaml:"postalCode"`
}

var (
	formValidate *validator.Validate
	formOnce     sync.Once
)

func validateForm(s any) error {
	formOnce.Do(func() {
		formValidate = validator.New()
	})
	if err := formValidate.Struct(s); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return errors.Join(ErrIncompleteForm, fieldErrs)
		}
		return errors.New("form validation unexpected error: " + err.Error())
	}
	return nil
}

// Signup validates the form, resolves the postal code to coordinates when
// one is given and creates the profile.
func Signup(ctx context.Context, api SignupAPI, geo GeocodeLookup, form *SignupForm) (*entity.User, error) {
	trimmed := SignupForm{
		PhoneNumber: strings.TrimSpace(form.PhoneNumber),
		FirstName:   strings.TrimSpace(form.FirstName),
		LastName:    strings.TrimSpace(form.LastName),
		Height:      strings.TrimSpace(form.Height),
		Weight:      strings.TrimSpace(form.Weight),
		PostalCode:  strings.TrimSpace(form.PostalCode),
	}
	if err := validateForm(&trimmed); err != nil {
		return nil, err
	}
	height, _ := strconv.ParseFloat(trimmed.Height, 64)
	weight, _ := strconv.ParseFloat(trimmed.Weight, 64)
	req := &client.SignupRequest{
		PhoneNumber: trimmed.PhoneNumber,
		FirstName:   trimmed.FirstName,
		LastName:    trimmed.LastName,
		Height:      height,
		Weight:      weight,
	}
	if trimmed.PostalCode != "" && geo != nil {
		lat, lon, err := geo.Lookup(ctx, trimmed.PostalCode)
		if err != nil {
			return nil, errors.New("looking up postal code error: " + err.Error())
		}
		req.Latitude, req.Longitude = &lat, &lon
	}
	return api.Signup(ctx, req)
}
