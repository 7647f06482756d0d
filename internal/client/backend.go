package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

type OTPChallenge struct {
	ChallengeID string    `json:"challengeId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type VerifyResult struct {
	Token      string `json:"token"`
	Registered bool   `json:"registered"`
}

type SignupRequest struct {
	PhoneNumber string   `json:"phoneNumber" yaml:"phoneNumber"`
	FirstName   string   `json:"firstName" yaml:"firstName"`
	LastName    string   `json:"lastName" yaml:"lastName"`
	Height      float64  `json:"height" yaml:"height"`
	Weight      float64  `json:"weight" yaml:"weight"`
	WeightGoal  *float64 `json:"weightGoal,omitempty" yaml:"weightGoal,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// Nil fields are left unchanged by the backend
type ProfileUpdate struct {
	FirstName  *string  `json:"firstName,omitempty"`
	LastName   *string  `json:"lastName,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	WeightGoal *float64 `json:"weightGoal,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type ExerciseInput struct {
	PhoneNumber      string     `json:"phoneNumber"`
	ExerciseType     string     `json:"exerciseType"`
	DurationMinutes  int        `json:"durationMinutes"`
	CaloriesBurned   int        `json:"caloriesBurned"`
	Intensity        int        `json:"intensity"`
	Rating           int        `json:"rating"`
	DistanceFromHome float64    `json:"distanceFromHome"`
	ExerciseDate     *time.Time `json:"exerciseDate,omitempty"`
}

type DailyRecordInput struct {
	TotalSteps              *int     `json:"totalSteps,omitempty"`
	TotalCaloriesBurned     *int     `json:"totalCaloriesBurned,omitempty"`
	ExerciseDurationMinutes *int     `json:"exerciseDurationMinutes,omitempty"`
	Weight                  *float64 `json:"weight,omitempty"`
}

type ensureDayResponse struct {
	Record  *entity.DailyRecord `json:"record"`
	Created bool                `json:"created"`
}

// Backend is a typed client of the fitness backend REST API.
type Backend struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

func NewBackend(baseURL string, timeout time.Duration) *Backend {
	return &Backend{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(timeout),
	}
}

func (b *Backend) BaseURL() string {
	return b.baseURL
}

func (b *Backend) SetToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.token = token
}

func (b *Backend) Token() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.token
}

func (b *Backend) call(ctx context.Context, method, path string, in, out any) error {
	headers := map[string]string{}
	if token := b.Token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return doJSON(ctx, b.http, method, b.baseURL+"/api"+path, headers, in, out)
}

func (b *Backend) SendOTP(ctx context.Context, phone string) (*OTPChallenge, error) {
	var ch OTPChallenge
	err := b.call(ctx, http.MethodPost, "/auth/otp", map[string]string{"phoneNumber": phone}, &ch)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func (b *Backend) VerifyOTP(ctx context.Context, phone, code string) (*VerifyResult, error) {
	var res VerifyResult
	err := b.call(ctx, http.MethodPost, "/auth/verify", map[string]string{"phoneNumber": phone, "code": code}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (b *Backend) GetUser(ctx context.Context, phone string) (*entity.User, error) {
	var user entity.User
	if err := b.call(ctx, http.MethodGet, "/users/"+url.PathEscape(phone), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *Backend) Signup(ctx context.Context, req *SignupRequest) (*entity.User, error) {
	var user entity.User
	if err := b.call(ctx, http.MethodPost, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *Backend) UpdateUser(ctx context.Context, phone string, upd *ProfileUpdate) (*entity.User, error) {
	var user entity.User
	if err := b.call(ctx, http.MethodPut, "/users/"+url.PathEscape(phone), upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (b *Backend) RecordLocation(ctx context.Context, phone string, lat, lon float64, at time.Time) error {
	body := entity.LocationPing{Latitude: lat, Longitude: lon, RecordedAt: at}
	return b.call(ctx, http.MethodPost, "/users/"+url.PathEscape(phone)+"/location", body, nil)
}

func (b *Backend) ListExercises(ctx context.Context, phone string) ([]*entity.Exercise, error) {
	var exercises []*entity.Exercise
	if err := b.call(ctx, http.MethodGet, "/user-exercises/"+url.PathEscape(phone), nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

// LastExercises returns at most limit newest exercises. limit <= 0 uses the backend default.
func (b *Backend) LastExercises(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error) {
	path := "/user-exercises/last/" + url.PathEscape(phone)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var exercises []*entity.Exercise
	if err := b.call(ctx, http.MethodGet, path, nil, &exercises); err != nil {
		return nil, err
	}
	return exercises, nil
}

func (b *Backend) GetExercise(ctx context.Context, id int64) (*entity.Exercise, error) {
	var ex entity.Exercise
	if err := b.call(ctx, http.MethodGet, "/user-exercises/id/"+strconv.FormatInt(id, 10), nil, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (b *Backend) CreateExercise(ctx context.Context, in *ExerciseInput) (*entity.Exercise, error) {
	var ex entity.Exercise
	if err := b.call(ctx, http.MethodPost, "/user-exercises", in, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (b *Backend) UpdateExercise(ctx context.Context, id int64, in *ExerciseInput) (*entity.Exercise, error) {
	var ex entity.Exercise
	if err := b.call(ctx, http.MethodPut, "/user-exercises/id/"+strconv.FormatInt(id, 10), in, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (b *Backend) DeleteExercise(ctx context.Context, id int64) error {
	return b.call(ctx, http.MethodDelete, "/user-exercises/id/"+strconv.FormatInt(id, 10), nil, nil)
}

func (b *Backend) ListDailyRecords(ctx context.Context, phone string) ([]*entity.DailyRecord, error) {
	var records []*entity.DailyRecord
	if err := b.call(ctx, http.MethodGet, "/dailyrecords/"+url.PathEscape(phone), nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (b *Backend) PutDailyRecord(ctx context.Context, phone, date string, in *DailyRecordInput) (*entity.DailyRecord, error) {
	var rec entity.DailyRecord
	path := "/dailyrecords/" + url.PathEscape(phone) + "/" + url.PathEscape(date)
	if err := b.call(ctx, http.MethodPut, path, in, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// EnsureDay creates the record of the given local date when missing and reports whether it did.
func (b *Backend) EnsureDay(ctx context.Context, phone, date string) (*entity.DailyRecord, bool, error) {
	var resp ensureDayResponse
	path := "/dailyrecords/" + url.PathEscape(phone) + "/today"
	if err := b.call(ctx, http.MethodPost, path, map[string]string{"recordDate": date}, &resp); err != nil {
		return nil, false, err
	}
	return resp.Record, resp.Created, nil
}

func (b *Backend) ListDevices(ctx context.Context, phone string) ([]*entity.Device, error) {
	var devices []*entity.Device
	if err := b.call(ctx, http.MethodGet, "/devices/"+url.PathEscape(phone), nil, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func (b *Backend) PairDevice(ctx context.Context, phone string, d *entity.Device) (*entity.Device, error) {
	var device entity.Device
	if err := b.call(ctx, http.MethodPost, "/devices/"+url.PathEscape(phone), d, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

func (b *Backend) UpdateDevice(ctx context.Context, phone string, d *entity.Device) (*entity.Device, error) {
	var device entity.Device
	path := "/devices/" + url.PathEscape(phone) + "/" + url.PathEscape(d.DeviceID)
	if err := b.call(ctx, http.MethodPut, path, d, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

func (b *Backend) RemoveDevice(ctx context.Context, phone, deviceID string) error {
	return b.call(ctx, http.MethodDelete, "/devices/"+url.PathEscape(phone)+"/"+url.PathEscape(deviceID), nil, nil)
}

func (b *Backend) ListGoals(ctx context.Context, phone string) ([]*entity.Goal, error) {
	var goals []*entity.Goal
	if err := b.call(ctx, http.MethodGet, "/goals/"+url.PathEscape(phone), nil, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (b *Backend) CreateGoal(ctx context.Context, phone, goalType, goal string) (*entity.Goal, error) {
	var g entity.Goal
	body := map[string]string{"goalType": goalType, "goal": goal}
	if err := b.call(ctx, http.MethodPost, "/goals/"+url.PathEscape(phone), body, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (b *Backend) UpdateGoal(ctx context.Context, phone string, id int64, goalType, goal string) (*entity.Goal, error) {
	var g entity.Goal
	body := map[string]string{"goalType": goalType, "goal": goal}
	path := "/goals/" + url.PathEscape(phone) + "/" + strconv.FormatInt(id, 10)
	if err := b.call(ctx, http.MethodPut, path, body, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

func (b *Backend) DeleteGoal(ctx context.Context, phone string, id int64) error {
	return b.call(ctx, http.MethodDelete, "/goals/"+url.PathEscape(phone)+"/"+strconv.FormatInt(id, 10), nil, nil)
}

func (b *Backend) RegisterPushToken(ctx context.Context, phone, platform, token string) (*entity.PushEndpoint, error) {
	var endpoint entity.PushEndpoint
	body := map[string]string{"platform": platform, "token": token}
	if err := b.call(ctx, http.MethodPost, "/push-tokens/"+url.PathEscape(phone), body, &endpoint); err != nil {
		return nil, err
	}
	return &endpoint, nil
}
