// Package flow holds the client-side workflows that sit between the terminal
// commands and the backend: login, signup, the multi-step activity form and
// the once-a-day bookkeeping.
package flow

import (
	"context"
	"errors"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/pkg/entity"
)

var (
	ErrInvalidOTP      = errors.New("invalid one-time passcode")
	ErrNoChallenge     = errors.New("no passcode was requested for this login")
	ErrIncompleteForm  = errors.New("please fill in all fields")
	ErrNotCalculable   = errors.New("exercise type and a positive duration are required")
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrInvalidPostcode = errors.New("postal code must be 6 digits")
)

type AuthAPI interface {
	SendOTP(ctx context.Context, phone string) (*client.OTPChallenge, error)
	VerifyOTP(ctx context.Context, phone, code string) (*client.VerifyResult, error)
	GetUser(ctx context.Context, phone string) (*entity.User, error)
	SetToken(token string)
}

type SignupAPI interface {
	Signup(ctx context.Context, req *client.SignupRequest) (*entity.User, error)
}

type SessionStore interface {
	SaveSession(ctx context.Context, phone, token string) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

type GeocodeLookup interface {
	Lookup(ctx context.Context, postalCode string) (float64, float64, error)
}

type CalorieCalculator interface {
	CalculateCalories(ctx context.Context, exercise string, duration, intensity int) (float64, error)
}

type ExerciseLister interface {
	LastExercises(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error)
}

type Recommender interface {
	Recommend(ctx context.Context, req *client.RecommendationRequest) (*client.Recommendations, error)
}

type DayEnsurer interface {
	EnsureDay(ctx context.Context, phone, date string) (*entity.DailyRecord, bool, error)
}
