package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
)

type DailyRecordService struct {
	records   repository.DailyRecordsRepositoryI
	users     repository.UsersRepositoryI
	goals     repository.GoalsRepositoryI
	publisher Publisher
	notifier  Notifier
}

// NewDailyRecordService builds the service. publisher and notifier may be nil.
func NewDailyRecordService(records repository.DailyRecordsRepositoryI, users repository.UsersRepositoryI, goals repository.GoalsRepositoryI, publisher Publisher, notifier Notifier) *DailyRecordService {
	if records == nil || users == nil || goals == nil {
		log.Fatal("provided nil repository to daily record service")
	}
	return &DailyRecordService{
		records:   records,
		users:     users,
		goals:     goals,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (ds *DailyRecordService) Upsert(ctx context.Context, patch *entity.DailyRecordPatch) (*entity.DailyRecord, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	rec, err := ds.records.Upsert(ctx, patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("daily records repository error: " + err.Error())
	}
	ds.publish(rec)
	ds.checkGoals(ctx, rec)
	return rec, nil
}

func (ds *DailyRecordService) List(ctx context.Context, phone string) ([]*entity.DailyRecord, error) {
	records, err := ds.records.ListByPhone(ctx, phone)
	if err != nil {
		return nil, errors.New("daily records repository error: " + err.Error())
	}
	return records, nil
}

func (ds *DailyRecordService) EnsureDay(ctx context.Context, phone, date string) (*entity.DailyRecord, bool, error) {
	day, err := time.Parse(entity.RecordDateLayout, date)
	if err != nil {
		return nil, false, errors.Join(errorvalues.ErrValidation, errors.New("record date must be YYYY-MM-DD"))
	}
	user, err := ds.users.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, false, err
		}
		return nil, false, errors.New("users repository error: " + err.Error())
	}
	weight := user.Weight
	created, err := ds.records.CreateIfMissing(ctx, &entity.DailyRecord{
		PhoneNumber: phone,
		RecordDate:  date,
		Weight:      &weight,
	})
	if err != nil {
		return nil, false, errors.New("daily records repository error: " + err.Error())
	}
	rec, err := ds.records.Get(ctx, phone, day)
	if err != nil {
		return nil, false, errors.New("daily records repository error: " + err.Error())
	}
	if created {
		ds.publish(rec)
	}
	return rec, created, nil
}

func (ds *DailyRecordService) publish(rec *entity.DailyRecord) {
	if ds.publisher == nil {
		return
	}
	ds.publisher.Publish(rec.PhoneNumber, entity.RecordEvent{
		Kind:   EventDailyRecordUpdated,
		Record: rec,
	})
}

// checkGoals pushes a notification for every numeric Steps or Calories goal
// the record reaches, at most once per goal and day. Failures are only logged.
func (ds *DailyRecordService) checkGoals(ctx context.Context, rec *entity.DailyRecord) {
	if ds.notifier == nil {
		return
	}
	logger := slog.Default().With(slog.String("phone", rec.PhoneNumber), slog.String("date", rec.RecordDate))
	goals, err := ds.goals.ListByPhone(ctx, rec.PhoneNumber)
	if err != nil {
		logger.Warn("listing goals for notification failed", slog.String("error", err.Error()))
		return
	}
	day, _ := time.Parse(entity.RecordDateLayout, rec.RecordDate)
	for _, goal := range goals {
		reached, value, ok := goalReached(goal, rec)
		if !ok || !reached {
			continue
		}
		first, err := ds.goals.MarkNotified(ctx, goal.ID, day)
		if err != nil {
			logger.Warn("marking goal notification failed", slog.Int64("goal_id", goal.ID), slog.String("error", err.Error()))
			continue
		}
		if !first {
			continue
		}
		body := fmt.Sprintf("You reached your %s goal of %s today (%d).", strings.ToLower(goal.GoalType), goal.Goal, value)
		if err = ds.notifier.Notify(ctx, rec.PhoneNumber, "Goal reached", body); err != nil {
			logger.Warn("goal notification failed", slog.Int64("goal_id", goal.ID), slog.String("error", err.Error()))
		}
	}
}

// goalReached reports ok=false for goals that can't be measured against a daily record.
func goalReached(goal *entity.Goal, rec *entity.DailyRecord) (reached bool, value int, ok bool) {
	target, err := strconv.ParseFloat(strings.TrimSpace(goal.Goal), 64)
	if err != nil || target <= 0 {
		return false, 0, false
	}
	switch goal.GoalType {
	case entity.GoalTypeSteps:
		value = rec.TotalSteps
	case entity.GoalTypeCalories:
		if rec.TotalCaloriesBurned == nil {
			return false, 0, true
		}
		value = *rec.TotalCaloriesBurned
	default:
		return false, 0, false
	}
	return float64(value) >= target, value, true
}

func validatePatch(patch *entity.DailyRecordPatch) error {
	if patch == nil {
		return errors.Join(errorvalues.ErrValidation, errors.New("empty daily record"))
	}
	var errs []error
	if !ValidPhone(patch.PhoneNumber) {
		errs = append(errs, errors.New("invalid phone number"))
	}
	if _, err := time.Parse(entity.RecordDateLayout, patch.RecordDate); err != nil {
		errs = append(errs, errors.New("record date must be YYYY-MM-DD"))
	}
	counters := []struct {
		name  string
		value *int
	}{
		{"totalSteps", patch.TotalSteps},
		{"totalCaloriesBurned", patch.TotalCaloriesBurned},
		{"exerciseDurationMinutes", patch.ExerciseDurationMinutes},
	}
	for _, c := range counters {
		if c.value != nil && (*c.value < 0 || *c.value > math.MaxInt32) {
			errs = append(errs, errors.New(c.name+" must be within 0.."+strconv.Itoa(math.MaxInt32)))
		}
	}
	if patch.Weight != nil && (*patch.Weight < 20 || *patch.Weight > 500) {
		errs = append(errs, errors.New("weight must be within 20..500"))
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{errorvalues.ErrValidation}, errs...)...)
}
