package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type ExerciseService struct {
	repo repository.ExercisesRepositoryI
}

func NewExerciseService(exercisesRepo repository.ExercisesRepositoryI) *ExerciseService {
	if exercisesRepo == nil {
		log.Fatal("provided nil exercisesRepo")
	}
	return &ExerciseService{
		repo: exercisesRepo,
	}
}

func (es *ExerciseService) Create(ctx context.Context, phone string, req *ExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	id, err := es.repo.Create(ctx, &entity.Exercise{
		PhoneNumber:      phone,
		ExerciseType:     req.ExerciseType,
		DurationMinutes:  req.DurationMinutes,
		CaloriesBurned:   req.CaloriesBurned,
		Intensity:        req.Intensity,
		Rating:           req.Rating,
		DistanceFromHome: req.DistanceFromHome,
		ExerciseDate:     req.ExerciseDate,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return es.getByID(ctx, id)
}

func (es *ExerciseService) Get(ctx context.Context, phone string, id int64) (*entity.Exercise, error) {
	ex, err := es.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ex.PhoneNumber != phone {
		return nil, errorvalues.ErrWrongOwner
	}
	return ex, nil
}

func (es *ExerciseService) List(ctx context.Context, phone string) ([]*entity.Exercise, error) {
	exercises, err := es.repo.ListByPhone(ctx, phone)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExerciseService) Last(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error) {
	if limit < 1 || limit > maxLastExercises {
		limit = DefaultLastExercises
	}
	exercises, err := es.repo.LastByPhone(ctx, phone, limit)
	if err != nil {
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return exercises, nil
}

func (es *ExerciseService) Update(ctx context.Context, phone string, id int64, req *ExerciseRequest) (*entity.Exercise, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	ex, err := es.Get(ctx, phone, id)
	if err != nil {
		return nil, err
	}
	ex.ExerciseType = req.ExerciseType
	ex.DurationMinutes = req.DurationMinutes
	ex.CaloriesBurned = req.CaloriesBurned
	ex.Intensity = req.Intensity
	ex.Rating = req.Rating
	ex.DistanceFromHome = req.DistanceFromHome
	if !req.ExerciseDate.IsZero() {
		ex.ExerciseDate = req.ExerciseDate
	}
	err = es.repo.Update(ctx, ex)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return ex, nil
}

func (es *ExerciseService) Delete(ctx context.Context, phone string, id int64) error {
	if _, err := es.Get(ctx, phone, id); err != nil {
		return err
	}
	err := es.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return err
		}
		return errors.New("exercises repository error: " + err.Error())
	}
	return nil
}

func (es *ExerciseService) getByID(ctx context.Context, id int64) (*entity.Exercise, error) {
	ex, err := es.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrExerciseNotFound) {
			return nil, err
		}
		return nil, errors.New("exercises repository error: " + err.Error())
	}
	return ex, nil
}
