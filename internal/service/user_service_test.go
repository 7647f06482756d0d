package service_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() *service.RegisterRequest {
	return &service.RegisterRequest{
		PhoneNumber: testPhone,
		FirstName:   testUser.FirstName,
		LastName:    testUser.LastName,
		Height:      testUser.Height,
		Weight:      testUser.Weight,
	}
}

func TestRegister(t *testing.T) {
	mock := &usersRepoMock{state: stateSuccess}
	us := service.NewUserService(mock)
	ctx := context.Background()
	t.Run("registered", func(t *testing.T) {
		user, err := us.Register(ctx, validRegisterRequest())
		require.NoError(t, err)
		assert.Equal(t, testPhone, user.PhoneNumber)
	})
	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name   string
			modify func(r *service.RegisterRequest)
		}{
			{name: "short phone", modify: func(r *service.RegisterRequest) { r.PhoneNumber = "1234" }},
			{name: "letters in phone", modify: func(r *service.RegisterRequest) { r.PhoneNumber = "8122847a" }},
			{name: "no first name", modify: func(r *service.RegisterRequest) { r.FirstName = "" }},
			{name: "tiny height", modify: func(r *service.RegisterRequest) { r.Height = 10 }},
			{name: "huge weight", modify: func(r *service.RegisterRequest) { r.Weight = 900 }},
			{name: "latitude out of range", modify: func(r *service.RegisterRequest) {
				lat := 91.0
				r.Latitude = &lat
			}},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				req := validRegisterRequest()
				tc.modify(req)
				_, err := us.Register(ctx, req)
				assert.ErrorIs(t, err, errorvalues.ErrValidation)
			})
		}
	})
	t.Run("existing user", func(t *testing.T) {
		mock.state = stateAlreadyExists
		_, err := us.Register(ctx, validRegisterRequest())
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := us.Register(ctx, validRegisterRequest())
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})
}

func TestGetByPhone(t *testing.T) {
	mock := &usersRepoMock{state: stateSuccess}
	us := service.NewUserService(mock)
	ctx := context.Background()
	t.Run("found", func(t *testing.T) {
		user, err := us.GetByPhone(ctx, testPhone)
		require.NoError(t, err)
		assert.Equal(t, testUser, *user)
	})
	t.Run("not found", func(t *testing.T) {
		mock.state = stateNotFound
		_, err := us.GetByPhone(ctx, testPhone)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := us.GetByPhone(ctx, testPhone)
		assert.Error(t, err)
	})
}

func TestUpdateProfile(t *testing.T) {
	mock := &usersRepoMock{state: stateSuccess}
	us := service.NewUserService(mock)
	ctx := context.Background()
	t.Run("partial update keeps other fields", func(t *testing.T) {
		weight := 66.0
		lat, lon := 1.3521, 103.8198
		user, err := us.UpdateProfile(ctx, testPhone, &service.UpdateProfileRequest{
			Weight:    &weight,
			Latitude:  &lat,
			Longitude: &lon,
		})
		require.NoError(t, err)
		assert.Equal(t, 66.0, user.Weight)
		assert.Equal(t, testUser.FirstName, user.FirstName)
		assert.Equal(t, testUser.Height, user.Height)
		require.NotNil(t, user.Latitude)
		assert.Equal(t, lat, *user.Latitude)
	})
	t.Run("invalid height", func(t *testing.T) {
		height := 1000.0
		_, err := us.UpdateProfile(ctx, testPhone, &service.UpdateProfileRequest{Height: &height})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.state = stateNotFound
		name := "Lim"
		_, err := us.UpdateProfile(ctx, testPhone, &service.UpdateProfileRequest{FirstName: &name})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestRecordLocation(t *testing.T) {
	mock := &usersRepoMock{state: stateSuccess}
	us := service.NewUserService(mock)
	ctx := context.Background()
	t.Run("recorded with current time", func(t *testing.T) {
		before := time.Now()
		err := us.RecordLocation(ctx, testPhone, &service.LocationRequest{Latitude: 1.35, Longitude: 103.82})
		require.NoError(t, err)
		require.Len(t, mock.pings, 1)
		assert.False(t, mock.pings[0].RecordedAt.Before(before))
		assert.Equal(t, testPhone, mock.pings[0].PhoneNumber)
	})
	t.Run("invalid coordinates", func(t *testing.T) {
		err := us.RecordLocation(ctx, testPhone, &service.LocationRequest{Latitude: 100, Longitude: 103.82})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.state = stateUserNotFound
		err := us.RecordLocation(ctx, testPhone, &service.LocationRequest{Latitude: 1.35, Longitude: 103.82})
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
