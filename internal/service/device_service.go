package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type DeviceService struct {
	repo repository.DevicesRepositoryI
}

func NewDeviceService(devicesRepo repository.DevicesRepositoryI) *DeviceService {
	if devicesRepo == nil {
		log.Fatal("provided nil devicesRepo")
	}
	return &DeviceService{
		repo: devicesRepo,
	}
}

func (ds *DeviceService) Pair(ctx context.Context, phone string, req *DeviceRequest) (*entity.Device, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	device := &entity.Device{
		DeviceID:    req.DeviceID,
		PhoneNumber: phone,
		DeviceName:  req.DeviceName,
		Mode:        req.Mode,
	}
	err := ds.repo.Create(ctx, device)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrDeviceExists), errors.Is(err, errorvalues.ErrUserNotFound):
			return nil, err
		}
		return nil, errors.New("devices repository error: " + err.Error())
	}
	return device, nil
}

func (ds *DeviceService) List(ctx context.Context, phone string) ([]*entity.Device, error) {
	devices, err := ds.repo.ListByPhone(ctx, phone)
	if err != nil {
		return nil, errors.New("devices repository error: " + err.Error())
	}
	return devices, nil
}

func (ds *DeviceService) Update(ctx context.Context, phone string, req *DeviceRequest) (*entity.Device, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	device := &entity.Device{
		DeviceID:    req.DeviceID,
		PhoneNumber: phone,
		DeviceName:  req.DeviceName,
		Mode:        req.Mode,
	}
	err := ds.repo.Update(ctx, device)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDeviceNotFound) {
			return nil, err
		}
		return nil, errors.New("devices repository error: " + err.Error())
	}
	return device, nil
}

func (ds *DeviceService) Remove(ctx context.Context, phone, deviceID string) error {
	err := ds.repo.Delete(ctx, phone, deviceID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDeviceNotFound) {
			return err
		}
		return errors.New("devices repository error: " + err.Error())
	}
	return nil
}
