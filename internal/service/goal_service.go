package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type GoalService struct {
	repo repository.GoalsRepositoryI
}

func NewGoalService(goalsRepo repository.GoalsRepositoryI) *GoalService {
	if goalsRepo == nil {
		log.Fatal("provided nil goalsRepo")
	}
	return &GoalService{
		repo: goalsRepo,
	}
}

func (gs *GoalService) Create(ctx context.Context, phone string, req *GoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal := &entity.Goal{
		PhoneNumber: phone,
		GoalType:    req.GoalType,
		Goal:        req.Goal,
	}
	id, err := gs.repo.Create(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	goal.ID = id
	return goal, nil
}

func (gs *GoalService) List(ctx context.Context, phone string) ([]*entity.Goal, error) {
	goals, err := gs.repo.ListByPhone(ctx, phone)
	if err != nil {
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goals, nil
}

func (gs *GoalService) Update(ctx context.Context, phone string, id int64, req *GoalRequest) (*entity.Goal, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	goal, err := gs.owned(ctx, phone, id)
	if err != nil {
		return nil, err
	}
	goal.GoalType = req.GoalType
	goal.Goal = req.Goal
	err = gs.repo.Update(ctx, goal)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	return goal, nil
}

func (gs *GoalService) Delete(ctx context.Context, phone string, id int64) error {
	if _, err := gs.owned(ctx, phone, id); err != nil {
		return err
	}
	err := gs.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return err
		}
		return errors.New("goals repository error: " + err.Error())
	}
	return nil
}

func (gs *GoalService) owned(ctx context.Context, phone string, id int64) (*entity.Goal, error) {
	goal, err := gs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGoalNotFound) {
			return nil, err
		}
		return nil, errors.New("goals repository error: " + err.Error())
	}
	if goal.PhoneNumber != phone {
		return nil, errorvalues.ErrWrongOwner
	}
	return goal, nil
}
