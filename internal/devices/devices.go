// Package devices mocks the Bluetooth side of device pairing and the step
// counter. Pairings themselves are stored on the backend and cached locally.
package devices

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/fittrack/pkg/entity"
)

const (
	DefaultScanDelay = 2 * time.Second

	minDailySteps = 2000
	stepRange     = 10000
)

var (
	ErrNameRequired  = errors.New("please select a device and provide a name")
	ErrUnknownMode   = errors.New("mode must be Input, Output or Both")
	ErrNotPaired     = errors.New("device is not paired")
	ErrUnknownDevice = errors.New("device was not found nearby")
)

type Nearby struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Scanner pretends to discover Bluetooth devices.
type Scanner struct {
	Delay time.Duration
}

func NewScanner(delay time.Duration) *Scanner {
	return &Scanner{Delay: delay}
}

func (s *Scanner) Scan(ctx context.Context) ([]Nearby, error) {
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}
	return []Nearby{
		{ID: "BT001", Name: "Nearby Device 1"},
		{ID: "BT002", Name: "Nearby Device 2"},
	}, nil
}

// Find scans and returns the nearby device with the given id.
func (s *Scanner) Find(ctx context.Context, id string) (Nearby, error) {
	found, err := s.Scan(ctx)
	if err != nil {
		return Nearby{}, err
	}
	for _, d := range found {
		if d.ID == id {
			return d, nil
		}
	}
	return Nearby{}, ErrUnknownDevice
}

// StepCounter yields a stable step count per user and date.
type StepCounter struct{}

func (StepCounter) Steps(phone, date string) int {
	h := fnv.New32a()
	h.Write([]byte(phone))
	h.Write([]byte{0})
	h.Write([]byte(date))
	return minDailySteps + int(h.Sum32()%stepRange)
}

func ValidMode(mode string) bool {
	switch mode {
	case entity.DeviceModeInput, entity.DeviceModeOutput, entity.DeviceModeBoth:
		return true
	}
	return false
}

type Registry interface {
	ListDevices(ctx context.Context, phone string) ([]*entity.Device, error)
	PairDevice(ctx context.Context, phone string, d *entity.Device) (*entity.Device, error)
	UpdateDevice(ctx context.Context, phone string, d *entity.Device) (*entity.Device, error)
	RemoveDevice(ctx context.Context, phone, deviceID string) error
}

type Cache interface {
	SaveDevice(ctx context.Context, d *entity.Device) error
	Devices(ctx context.Context) ([]*entity.Device, error)
	RemoveDevice(ctx context.Context, deviceID string) error
}

// Manager keeps backend pairings and the local cache in step.
type Manager struct {
	registry Registry
	cache    Cache
}

func NewManager(registry Registry, cache Cache) *Manager {
	return &Manager{registry: registry, cache: cache}
}

// List fetches pairings from the backend and refreshes the cache. When the
// backend is unreachable the cached list is returned with the error.
func (m *Manager) List(ctx context.Context, phone string) ([]*entity.Device, error) {
	devices, err := m.registry.ListDevices(ctx, phone)
	if err != nil {
		cached, cacheErr := m.cache.Devices(ctx)
		if cacheErr != nil {
			return nil, errors.Join(err, cacheErr)
		}
		return cached, err
	}
	for _, d := range devices {
		if err = m.cache.SaveDevice(ctx, d); err != nil {
			slog.Warn("caching device failed", slog.String("device", d.DeviceID), slog.String("error", err.Error()))
		}
	}
	return devices, nil
}

// Pair registers a nearby device under the given name. New pairings start in Input mode.
func (m *Manager) Pair(ctx context.Context, phone string, nearby Nearby, name string) (*entity.Device, error) {
	name = strings.TrimSpace(name)
	if nearby.ID == "" || name == "" {
		return nil, ErrNameRequired
	}
	device, err := m.registry.PairDevice(ctx, phone, &entity.Device{
		DeviceID:   nearby.ID,
		DeviceName: name,
		Mode:       entity.DeviceModeInput,
	})
	if err != nil {
		return nil, err
	}
	if err = m.cache.SaveDevice(ctx, device); err != nil {
		return device, errors.New("caching paired device error: " + err.Error())
	}
	return device, nil
}

func (m *Manager) SetMode(ctx context.Context, phone, deviceID, mode string) (*entity.Device, error) {
	if !ValidMode(mode) {
		return nil, ErrUnknownMode
	}
	devices, err := m.registry.ListDevices(ctx, phone)
	if err != nil {
		return nil, err
	}
	var current *entity.Device
	for _, d := range devices {
		if d.DeviceID == deviceID {
			current = d
			break
		}
	}
	if current == nil {
		return nil, ErrNotPaired
	}
	updated, err := m.registry.UpdateDevice(ctx, phone, &entity.Device{
		DeviceID:   deviceID,
		DeviceName: current.DeviceName,
		Mode:       mode,
	})
	if err != nil {
		return nil, err
	}
	if err = m.cache.SaveDevice(ctx, updated); err != nil {
		return updated, errors.New("caching device error: " + err.Error())
	}
	return updated, nil
}

func (m *Manager) Remove(ctx context.Context, phone, deviceID string) error {
	if err := m.registry.RemoveDevice(ctx, phone, deviceID); err != nil {
		return err
	}
	if err := m.cache.RemoveDevice(ctx, deviceID); err != nil {
		return errors.New("removing cached device error: " + err.Error())
	}
	return nil
}
