package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

const (
	DefaultLastExercises = 14
	maxLastExercises     = 100

	EventDailyRecordUpdated = "dailyrecord.updated"
)

type RegisterRequest struct {
	PhoneNumber string   `validate:"required,phone"`
	FirstName   string   `validate:"required,max=100"`
	LastName    string   `validate:"required,max=100"`
	Height      float64  `validate:"gte=50,lte=300"`
	Weight      float64  `validate:"gte=20,lte=500"`
	WeightGoal  *float64 `validate:"omitempty,gte=20,lte=500"`
	Latitude    *float64 `validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `validate:"omitempty,gte=-180,lte=180"`
}

// Nil fields are left unchanged
type UpdateProfileRequest struct {
	FirstName  *string  `validate:"omitempty,min=1,max=100"`
	LastName   *string  `validate:"omitempty,min=1,max=100"`
	Height     *float64 `validate:"omitempty,gte=50,lte=300"`
	Weight     *float64 `validate:"omitempty,gte=20,lte=500"`
	WeightGoal *float64 `validate:"omitempty,gte=20,lte=500"`
	Latitude   *float64 `validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `validate:"omitempty,gte=-180,lte=180"`
}

type LocationRequest struct {
	Latitude   float64 `validate:"gte=-90,lte=90"`
	Longitude  float64 `validate:"gte=-180,lte=180"`
	RecordedAt time.Time
}

type ExerciseRequest struct {
	ExerciseType     string  `validate:"required,notblank,max=100"`
	DurationMinutes  int     `validate:"gt=0,lte=1440"`
	CaloriesBurned   int     `validate:"gte=0,lte=2147483647"`
	Intensity        int     `validate:"gte=1,lte=10"`
	Rating           int     `validate:"gte=1,lte=5"`
	DistanceFromHome float64 `validate:"gte=0"`
	// Zero means "now"
	ExerciseDate time.Time
}

type DeviceRequest struct {
	DeviceID   string `validate:"required,max=64"`
	DeviceName string `validate:"required,notblank,max=100"`
	Mode       string `validate:"required,oneof=Input Output Both"`
}

type GoalRequest struct {
	GoalType string `validate:"required,oneof=Weight Steps Calories Custom"`
	Goal     string `validate:"required,notblank,max=200"`
}

type PushTokenRequest struct {
	Platform string `validate:"required,oneof=android ios"`
	Token    string `validate:"required,max=4096"`
}

type VerifyResult struct {
	Token string
	// False when the phone number has no profile yet and signup is required
	Registered bool
}

type UserServiceI interface {
	// Validates profile and creates new user. Returns stored user
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)
	// Applies non-nil fields of req to user's profile
	UpdateProfile(ctx context.Context, phone string, req *UpdateProfileRequest) (*entity.User, error)
	// Stores location ping and moves user's coordinates
	RecordLocation(ctx context.Context, phone string, req *LocationRequest) error
}

type AuthServiceI interface {
	// Creates a new passcode challenge for phone, replacing previous one
	SendOTP(ctx context.Context, phone string) (*entity.OTPChallenge, error)
	// Checks passcode and issues session token. Challenge is consumed on success
	VerifyOTP(ctx context.Context, phone, code string) (*VerifyResult, error)
}

type ExerciseServiceI interface {
	Create(ctx context.Context, phone string, req *ExerciseRequest) (*entity.Exercise, error)
	Get(ctx context.Context, phone string, id int64) (*entity.Exercise, error)
	List(ctx context.Context, phone string) ([]*entity.Exercise, error)
	// Returns at most limit newest exercises. Out-of-range limit means DefaultLastExercises
	Last(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error)
	Update(ctx context.Context, phone string, id int64, req *ExerciseRequest) (*entity.Exercise, error)
	Delete(ctx context.Context, phone string, id int64) error
}

type DailyRecordServiceI interface {
	// Writes non-nil fields of patch, notifies subscribers and checks goals
	Upsert(ctx context.Context, patch *entity.DailyRecordPatch) (*entity.DailyRecord, error)
	List(ctx context.Context, phone string) ([]*entity.DailyRecord, error)
	// Creates record for date (user's local day) if missing. Reports whether it was created
	EnsureDay(ctx context.Context, phone, date string) (*entity.DailyRecord, bool, error)
}

type DeviceServiceI interface {
	Pair(ctx context.Context, phone string, req *DeviceRequest) (*entity.Device, error)
	List(ctx context.Context, phone string) ([]*entity.Device, error)
	Update(ctx context.Context, phone string, req *DeviceRequest) (*entity.Device, error)
	Remove(ctx context.Context, phone, deviceID string) error
}

type GoalServiceI interface {
	Create(ctx context.Context, phone string, req *GoalRequest) (*entity.Goal, error)
	List(ctx context.Context, phone string) ([]*entity.Goal, error)
	Update(ctx context.Context, phone string, id int64, req *GoalRequest) (*entity.Goal, error)
	Delete(ctx context.Context, phone string, id int64) error
}

type PushServiceI interface {
	RegisterToken(ctx context.Context, phone string, req *PushTokenRequest) (*entity.PushEndpoint, error)
	Notify(ctx context.Context, phone, title, body string) error
}

// Publisher delivers record events to live subscribers of a phone number
type Publisher interface {
	Publish(phone string, event entity.RecordEvent)
}

type Notifier interface {
	Notify(ctx context.Context, phone, title, body string) error
}

type TokenGenerator interface {
	GenerateToken(phone string) (string, error)
}
