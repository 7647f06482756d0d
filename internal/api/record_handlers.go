package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

type DailyRecordRequest struct {
	TotalSteps              *int     `json:"totalSteps,omitempty"`
	TotalCaloriesBurned     *int     `json:"totalCaloriesBurned,omitempty"`
	ExerciseDurationMinutes *int     `json:"exerciseDurationMinutes,omitempty"`
	Weight                  *float64 `json:"weight,omitempty"`
}

type EnsureDayRequest struct {
	// User's local date, server date when empty
	RecordDate string `json:"recordDate"`
}

type EnsureDayResponse struct {
	Record  *entity.DailyRecord `json:"record"`
	Created bool                `json:"created"`
}

type DeviceRequest struct {
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
	Mode       string `json:"mode"`
}

type GoalRequest struct {
	GoalType string `json:"goalType"`
	Goal     string `json:"goal"`
}

func (s *Server) ListDailyRecords(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	records, err := s.dailyRecordService.List(ctx, phone)
	if err != nil {
		writeServiceError(w, logger, "listing daily records", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, records)
}

func (s *Server) EnsureDailyRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req EnsureDayRequest
	if err := httputil.DecodeJSON(r, &req); err != nil && !errors.Is(err, httputil.ErrEmptyBody) {
		logger.Error("ensuring daily record error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.RecordDate == "" {
		req.RecordDate = time.Now().Format(entity.RecordDateLayout)
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	rec, created, err := s.dailyRecordService.EnsureDay(ctx, phone, req.RecordDate)
	if err != nil {
		writeServiceError(w, logger, "ensuring daily record", err)
		return
	}
	code := http.StatusOK
	if created {
		code = http.StatusCreated
		logger.Info("daily record created", slog.String("date", rec.RecordDate))
	}
	httputil.WriteJSONResponse(w, code, EnsureDayResponse{Record: rec, Created: created})
}

func (s *Server) UpsertDailyRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req DailyRecordRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("updating daily record error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	rec, err := s.dailyRecordService.Upsert(ctx, &entity.DailyRecordPatch{
		PhoneNumber:             phone,
		RecordDate:              chi.URLParam(r, "date"),
		TotalSteps:              req.TotalSteps,
		TotalCaloriesBurned:     req.TotalCaloriesBurned,
		ExerciseDurationMinutes: req.ExerciseDurationMinutes,
		Weight:                  req.Weight,
	})
	if err != nil {
		writeServiceError(w, logger, "updating daily record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, rec)
	logger.Info("daily record updated", slog.String("date", rec.RecordDate))
}

func (s *Server) ListDevices(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	devices, err := s.deviceService.List(ctx, phone)
	if err != nil {
		writeServiceError(w, logger, "listing devices", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, devices)
}

func (s *Server) PairDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req DeviceRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("pairing device error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	device, err := s.deviceService.Pair(ctx, phone, &service.DeviceRequest{
		DeviceID:   req.DeviceID,
		DeviceName: req.DeviceName,
		Mode:       req.Mode,
	})
	if err != nil {
		writeServiceError(w, logger, "pairing device", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, device)
	logger.Info("device paired", slog.String("device_id", device.DeviceID))
}

func (s *Server) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req DeviceRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("updating device error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	device, err := s.deviceService.Update(ctx, phone, &service.DeviceRequest{
		DeviceID:   chi.URLParam(r, "deviceId"),
		DeviceName: req.DeviceName,
		Mode:       req.Mode,
	})
	if err != nil {
		writeServiceError(w, logger, "updating device", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, device)
}

func (s *Server) RemoveDevice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err := s.deviceService.Remove(ctx, phone, chi.URLParam(r, "deviceId")); err != nil {
		writeServiceError(w, logger, "removing device", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("device removed")
}

func (s *Server) ListGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	goals, err := s.goalService.List(ctx, phone)
	if err != nil {
		writeServiceError(w, logger, "listing goals", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goals)
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req GoalRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("creating goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	goal, err := s.goalService.Create(ctx, phone, &service.GoalRequest{GoalType: req.GoalType, Goal: req.Goal})
	if err != nil {
		writeServiceError(w, logger, "creating goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created", slog.Int64("goal_id", goal.ID))
}

func (s *Server) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Error("updating goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	var req GoalRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("updating goal error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	goal, err := s.goalService.Update(ctx, phone, id, &service.GoalRequest{GoalType: req.GoalType, Goal: req.Goal})
	if err != nil {
		writeServiceError(w, logger, "updating goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, goal)
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		logger.Error("deleting goal error: invalid id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err = s.goalService.Delete(ctx, phone, id); err != nil {
		writeServiceError(w, logger, "deleting goal", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("goal deleted", slog.Int64("goal_id", id))
}
