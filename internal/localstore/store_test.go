package localstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/limbo/fittrack/internal/localstore"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(filepath.Join(t.TempDir(), "state", "fitness.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKeyValue(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	_, err := s.Get(ctx, localstore.KeyPhoneNumber)
	assert.ErrorIs(t, err, localstore.ErrNotFound)

	require.NoError(t, s.Set(ctx, localstore.KeyPhoneNumber, "81228470"))
	require.NoError(t, s.Set(ctx, localstore.KeyPhoneNumber, "91234567"))
	v, err := s.Get(ctx, localstore.KeyPhoneNumber)
	require.NoError(t, err)
	assert.Equal(t, "91234567", v)

	require.NoError(t, s.Delete(ctx, localstore.KeyPhoneNumber))
	require.NoError(t, s.Delete(ctx, localstore.KeyPhoneNumber))
	_, err = s.Get(ctx, localstore.KeyPhoneNumber)
	assert.ErrorIs(t, err, localstore.ErrNotFound)
}

func TestSession(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	_, _, err := s.Session(ctx)
	assert.ErrorIs(t, err, localstore.ErrNotFound)

	require.NoError(t, s.SaveSession(ctx, "81228470", "tok"))
	require.NoError(t, s.SaveDevice(ctx, &entity.Device{DeviceID: "BT001", DeviceName: "Watch", Mode: entity.DeviceModeBoth}))
	phone, token, err := s.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "81228470", phone)
	assert.Equal(t, "tok", token)

	require.NoError(t, s.ClearSession(ctx))
	_, _, err = s.Session(ctx)
	assert.ErrorIs(t, err, localstore.ErrNotFound)
	devices, err := s.Devices(ctx)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestPairedDevices(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	require.NoError(t, s.SaveDevice(ctx, &entity.Device{DeviceID: "BT002", DeviceName: "Step Counter", Mode: entity.DeviceModeInput}))
	require.NoError(t, s.SaveDevice(ctx, &entity.Device{DeviceID: "BT001", DeviceName: "Band", Mode: entity.DeviceModeInput}))
	require.NoError(t, s.SaveDevice(ctx, &entity.Device{DeviceID: "BT001", DeviceName: "Band", Mode: entity.DeviceModeOutput}))

	devices, err := s.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "Band", devices[0].DeviceName)
	assert.Equal(t, entity.DeviceModeOutput, devices[0].Mode)

	require.NoError(t, s.RemoveDevice(ctx, "BT001"))
	devices, err = s.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "BT002", devices[0].DeviceID)
}

func TestReopenKeepsState(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "fitness.db")
	s, err := localstore.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, localstore.KeyLastOpenDate, "2024-05-01"))
	require.NoError(t, s.Close())

	s, err = localstore.Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, localstore.KeyLastOpenDate)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", v)
}
