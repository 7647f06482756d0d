package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	err := us.repo.Create(ctx, &entity.User{
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Height:      req.Height,
		Weight:      req.Weight,
		WeightGoal:  req.WeightGoal,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return us.GetByPhone(ctx, req.PhoneNumber)
}

func (us *UserService) GetByPhone(ctx context.Context, phone string) (*entity.User, error) {
	user, err := us.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, phone string, req *UpdateProfileRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	user, err := us.GetByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Height != nil {
		user.Height = *req.Height
	}
	if req.Weight != nil {
		user.Weight = *req.Weight
	}
	if req.WeightGoal != nil {
		user.WeightGoal = req.WeightGoal
	}
	if req.Latitude != nil {
		user.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		user.Longitude = req.Longitude
	}
	err = us.repo.Update(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	return us.GetByPhone(ctx, phone)
}

func (us *UserService) RecordLocation(ctx context.Context, phone string, req *LocationRequest) error {
	if err := validateStruct(req); err != nil {
		return err
	}
	recordedAt := req.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	err := us.repo.RecordLocation(ctx, &entity.LocationPing{
		PhoneNumber: phone,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		RecordedAt:  recordedAt,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("users repository error: " + err.Error())
	}
	return nil
}
