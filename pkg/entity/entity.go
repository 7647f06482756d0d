package entity

import (
	"time"
)

const (
	// Layout of DailyRecord.RecordDate on the wire and in path values
	RecordDateLayout = "2006-01-02"

	DeviceModeInput  = "Input"
	DeviceModeOutput = "Output"
	DeviceModeBoth   = "Both"

	GoalTypeWeight   = "Weight"
	GoalTypeSteps    = "Steps"
	GoalTypeCalories = "Calories"
	GoalTypeCustom   = "Custom"
)

type User struct {
	PhoneNumber string    `json:"phoneNumber"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Height      float64   `json:"height"`
	Weight      float64   `json:"weight"`
	WeightGoal  *float64  `json:"weightGoal,omitempty"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Exercise struct {
	ID               int64     `json:"id"`
	PhoneNumber      string    `json:"phoneNumber"`
	ExerciseType     string    `json:"exerciseType"`
	DurationMinutes  int       `json:"durationMinutes"`
	CaloriesBurned   int       `json:"caloriesBurned"`
	Intensity        int       `json:"intensity"`
	Rating           int       `json:"rating"`
	DistanceFromHome float64   `json:"distanceFromHome"`
	ExerciseDate     time.Time `json:"exerciseDate"`
}

// DailyRecord is a per-user, per-day aggregate. Nil fields were never reported.
type DailyRecord struct {
	PhoneNumber             string   `json:"phoneNumber"`
	RecordDate              string   `json:"recordDate"`
	TotalSteps              int      `json:"totalSteps"`
	TotalCaloriesBurned     *int     `json:"totalCaloriesBurned"`
	ExerciseDurationMinutes *int     `json:"exerciseDurationMinutes"`
	Weight                  *float64 `json:"weight"`
}

// DailyRecordPatch carries a partial update of a daily record. Nil fields are left untouched.
type DailyRecordPatch struct {
	PhoneNumber             string   `json:"phoneNumber"`
	RecordDate              string   `json:"recordDate"`
	TotalSteps              *int     `json:"totalSteps,omitempty"`
	TotalCaloriesBurned     *int     `json:"totalCaloriesBurned,omitempty"`
	ExerciseDurationMinutes *int     `json:"exerciseDurationMinutes,omitempty"`
	Weight                  *float64 `json:"weight,omitempty"`
}

type Device struct {
	DeviceID    string `json:"deviceId"`
	PhoneNumber string `json:"phoneNumber"`
	DeviceName  string `json:"deviceName"`
	Mode        string `json:"mode"`
}

type Goal struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phoneNumber"`
	GoalType    string `json:"goalType"`
	Goal        string `json:"goal"`
}

type OTPChallenge struct {
	ID          string
	PhoneNumber string
	CodeHash    string
	ExpiresAt   time.Time
}

type PushEndpoint struct {
	ID          int64     `json:"id"`
	PhoneNumber string    `json:"phoneNumber"`
	Platform    string    `json:"platform"`
	TokenHash   string    `json:"-"`
	EndpointARN string    `json:"endpointArn"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type LocationPing struct {
	PhoneNumber string    `json:"phoneNumber"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	RecordedAt  time.Time `json:"recordedAt"`
}

// Event sent to realtime subscribers
type RecordEvent struct {
	Kind   string       `json:"kind"`
	Record *DailyRecord `json:"record"`
}
