package service_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateNotFound
	stateAlreadyExists
	stateUserNotFound
	stateWrongOwner
)

var errDB = errors.New("db error")

// Variables for tests
var (
	testPhone  = "81228470"
	otherPhone = "91234567"
	testUser   = entity.User{
		PhoneNumber: testPhone,
		FirstName:   "Tan",
		LastName:    "Wei",
		Height:      172,
		Weight:      68.5,
	}
	testExercise = entity.Exercise{
		ID:               7,
		PhoneNumber:      testPhone,
		ExerciseType:     "Running",
		DurationMinutes:  30,
		CaloriesBurned:   250,
		Intensity:        5,
		Rating:           4,
		DistanceFromHome: 1.5,
		ExerciseDate:     time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC),
	}
)

type usersRepoMock struct {
	state   mockState
	updated *entity.User
	pings   []*entity.LocationPing
}

func (m *usersRepoMock) Create(ctx context.Context, user *entity.User) error {
	switch m.state {
	case stateAlreadyExists:
		return errorvalues.ErrUserExists
	case stateDBError:
		return errDB
	default:
		return nil
	}
}

func (m *usersRepoMock) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	switch m.state {
	case stateNotFound, stateUserNotFound:
		return nil, errorvalues.ErrUserNotFound
	case stateDBError:
		return nil, errDB
	default:
		if m.updated != nil {
			u := *m.updated
			return &u, nil
		}
		u := testUser
		u.PhoneNumber = phone
		return &u, nil
	}
}

func (m *usersRepoMock) Update(ctx context.Context, user *entity.User) error {
	switch m.state {
	case stateDBError:
		return errDB
	default:
		u := *user
		m.updated = &u
		return nil
	}
}

func (m *usersRepoMock) RecordLocation(ctx context.Context, ping *entity.LocationPing) error {
	switch m.state {
	case stateUserNotFound:
		return errorvalues.ErrUserNotFound
	case stateDBError:
		return errDB
	default:
		m.pings = append(m.pings, ping)
		return nil
	}
}

type exercisesRepoMock struct {
	state     mockState
	lastLimit int
}

func (m *exercisesRepoMock) Create(ctx context.Context, ex *entity.Exercise) (int64, error) {
	switch m.state {
	case stateUserNotFound:
		return 0, errorvalues.ErrUserNotFound
	case stateDBError:
		return 0, errDB
	default:
		return testExercise.ID, nil
	}
}

func (m *exercisesRepoMock) GetByID(ctx context.Context, id int64) (*entity.Exercise, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrExerciseNotFound
	case stateDBError:
		return nil, errDB
	case stateWrongOwner:
		ex := testExercise
		ex.PhoneNumber = otherPhone
		return &ex, nil
	default:
		ex := testExercise
		return &ex, nil
	}
}

func (m *exercisesRepoMock) ListByPhone(ctx context.Context, phone string) ([]*entity.Exercise, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	ex := testExercise
	return []*entity.Exercise{&ex}, nil
}

func (m *exercisesRepoMock) LastByPhone(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error) {
	m.lastLimit = limit
	if m.state == stateDBError {
		return nil, errDB
	}
	return []*entity.Exercise{}, nil
}

func (m *exercisesRepoMock) Update(ctx context.Context, ex *entity.Exercise) error {
	if m.state == stateDBError {
		return errDB
	}
	return nil
}

func (m *exercisesRepoMock) Delete(ctx context.Context, id int64) error {
	if m.state == stateDBError {
		return errDB
	}
	return nil
}

type dailyRecordsRepoMock struct {
	state   mockState
	records map[string]*entity.DailyRecord
}

func newDailyRecordsRepoMock() *dailyRecordsRepoMock {
	return &dailyRecordsRepoMock{records: make(map[string]*entity.DailyRecord)}
}

func (m *dailyRecordsRepoMock) Upsert(ctx context.Context, patch *entity.DailyRecordPatch) (*entity.DailyRecord, error) {
	switch m.state {
	case stateUserNotFound:
		return nil, errorvalues.ErrUserNotFound
	case stateDBError:
		return nil, errDB
	}
	key := patch.PhoneNumber + "/" + patch.RecordDate
	rec, ok := m.records[key]
	if !ok {
		rec = &entity.DailyRecord{PhoneNumber: patch.PhoneNumber, RecordDate: patch.RecordDate}
		m.records[key] = rec
	}
	if patch.TotalSteps != nil {
		rec.TotalSteps = *patch.TotalSteps
	}
	if patch.TotalCaloriesBurned != nil {
		rec.TotalCaloriesBurned = patch.TotalCaloriesBurned
	}
	if patch.ExerciseDurationMinutes != nil {
		rec.ExerciseDurationMinutes = patch.ExerciseDurationMinutes
	}
	if patch.Weight != nil {
		rec.Weight = patch.Weight
	}
	out := *rec
	return &out, nil
}

func (m *dailyRecordsRepoMock) CreateIfMissing(ctx context.Context, rec *entity.DailyRecord) (bool, error) {
	if m.state == stateDBError {
		return false, errDB
	}
	key := rec.PhoneNumber + "/" + rec.RecordDate
	if _, ok := m.records[key]; ok {
		return false, nil
	}
	stored := *rec
	m.records[key] = &stored
	return true, nil
}

func (m *dailyRecordsRepoMock) Get(ctx context.Context, phone string, date time.Time) (*entity.DailyRecord, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	rec, ok := m.records[phone+"/"+date.Format(entity.RecordDateLayout)]
	if !ok {
		return nil, errorvalues.ErrRecordNotFound
	}
	out := *rec
	return &out, nil
}

func (m *dailyRecordsRepoMock) ListByPhone(ctx context.Context, phone string) ([]*entity.DailyRecord, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	records := make([]*entity.DailyRecord, 0, len(m.records))
	for _, rec := range m.records {
		if rec.PhoneNumber == phone {
			records = append(records, rec)
		}
	}
	return records, nil
}

type goalsRepoMock struct {
	state    mockState
	goals    []*entity.Goal
	notified map[string]bool
}

func (m *goalsRepoMock) Create(ctx context.Context, goal *entity.Goal) (int64, error) {
	switch m.state {
	case stateUserNotFound:
		return 0, errorvalues.ErrUserNotFound
	case stateDBError:
		return 0, errDB
	}
	return 3, nil
}

func (m *goalsRepoMock) GetByID(ctx context.Context, id int64) (*entity.Goal, error) {
	switch m.state {
	case stateNotFound:
		return nil, errorvalues.ErrGoalNotFound
	case stateDBError:
		return nil, errDB
	case stateWrongOwner:
		return &entity.Goal{ID: id, PhoneNumber: otherPhone, GoalType: entity.GoalTypeSteps, Goal: "1000"}, nil
	}
	return &entity.Goal{ID: id, PhoneNumber: testPhone, GoalType: entity.GoalTypeSteps, Goal: "1000"}, nil
}

func (m *goalsRepoMock) ListByPhone(ctx context.Context, phone string) ([]*entity.Goal, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return m.goals, nil
}

func (m *goalsRepoMock) Update(ctx context.Context, goal *entity.Goal) error {
	if m.state == stateDBError {
		return errDB
	}
	return nil
}

func (m *goalsRepoMock) Delete(ctx context.Context, id int64) error {
	if m.state == stateDBError {
		return errDB
	}
	return nil
}

func (m *goalsRepoMock) MarkNotified(ctx context.Context, goalID int64, day time.Time) (bool, error) {
	if m.notified == nil {
		m.notified = make(map[string]bool)
	}
	key := day.Format(entity.RecordDateLayout) + "/" + strconv.FormatInt(goalID, 10)
	if m.notified[key] {
		return false, nil
	}
	m.notified[key] = true
	return true, nil
}

type devicesRepoMock struct {
	state mockState
}

func (m *devicesRepoMock) Create(ctx context.Context, device *entity.Device) error {
	switch m.state {
	case stateAlreadyExists:
		return errorvalues.ErrDeviceExists
	case stateDBError:
		return errDB
	}
	return nil
}

func (m *devicesRepoMock) ListByPhone(ctx context.Context, phone string) ([]*entity.Device, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return []*entity.Device{}, nil
}

func (m *devicesRepoMock) Update(ctx context.Context, device *entity.Device) error {
	switch m.state {
	case stateNotFound:
		return errorvalues.ErrDeviceNotFound
	case stateDBError:
		return errDB
	}
	return nil
}

func (m *devicesRepoMock) Delete(ctx context.Context, phone, deviceID string) error {
	switch m.state {
	case stateNotFound:
		return errorvalues.ErrDeviceNotFound
	case stateDBError:
		return errDB
	}
	return nil
}

type otpRepoMock struct {
	state     mockState
	challenge *entity.OTPChallenge
	deleted   bool
}

func (m *otpRepoMock) Save(ctx context.Context, challenge *entity.OTPChallenge) error {
	if m.state == stateDBError {
		return errDB
	}
	m.challenge = challenge
	return nil
}

func (m *otpRepoMock) Find(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	if m.challenge == nil || m.challenge.PhoneNumber != phone {
		return nil, errorvalues.ErrOTPNotFound
	}
	return m.challenge, nil
}

func (m *otpRepoMock) Delete(ctx context.Context, phone string) error {
	m.challenge = nil
	m.deleted = true
	return nil
}

type pushRepoMock struct {
	state     mockState
	endpoints []*entity.PushEndpoint
}

func (m *pushRepoMock) Upsert(ctx context.Context, endpoint *entity.PushEndpoint) error {
	switch m.state {
	case stateUserNotFound:
		return errorvalues.ErrUserNotFound
	case stateDBError:
		return errDB
	}
	m.endpoints = append(m.endpoints, endpoint)
	return nil
}

func (m *pushRepoMock) ListByPhone(ctx context.Context, phone string) ([]*entity.PushEndpoint, error) {
	if m.state == stateDBError {
		return nil, errDB
	}
	return m.endpoints, nil
}

type publisherMock struct {
	mu     sync.Mutex
	events []entity.RecordEvent
}

func (m *publisherMock) Publish(phone string, event entity.RecordEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
}

type notification struct {
	phone, title, body string
}

type notifierMock struct {
	sent []notification
}

func (m *notifierMock) Notify(ctx context.Context, phone, title, body string) error {
	m.sent = append(m.sent, notification{phone, title, body})
	return nil
}

type tokenGeneratorMock struct {
	fail bool
}

func (m *tokenGeneratorMock) GenerateToken(phone string) (string, error) {
	if m.fail {
		return "", errors.New("signing error")
	}
	return "token-" + phone, nil
}
