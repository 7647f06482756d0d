package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

type ExerciseRequest struct {
	PhoneNumber      string    `json:"phoneNumber"`
	ExerciseType     string    `json:"exerciseType"`
	DurationMinutes  int       `json:"durationMinutes"`
	CaloriesBurned   int       `json:"caloriesBurned"`
	Intensity        int       `json:"intensity"`
	Rating           int       `json:"rating"`
	DistanceFromHome float64   `json:"distanceFromHome"`
	ExerciseDate     time.Time `json:"exerciseDate"`
}

func (req *ExerciseRequest) toService() *service.ExerciseRequest {
	return &service.ExerciseRequest{
		ExerciseType:     req.ExerciseType,
		DurationMinutes:  req.DurationMinutes,
		CaloriesBurned:   req.CaloriesBurned,
		Intensity:        req.Intensity,
		Rating:           req.Rating,
		DistanceFromHome: req.DistanceFromHome,
		ExerciseDate:     req.ExerciseDate,
	}
}

func (s *Server) CreateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, err := GetPhoneFromContext(r)
	if err != nil {
		logger.Error("create exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ExerciseRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("create exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	// Body may omit phoneNumber; when present it must be the caller's
	if req.PhoneNumber != "" && req.PhoneNumber != phone {
		logger.Error("create exercise error: foreign phone number")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "access to another user's data is forbidden", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	ex, err := s.exerciseService.Create(ctx, phone, req.toService())
	if err != nil {
		writeServiceError(w, logger, "creating exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, ex)
	logger.Info("exercise created")
}

func (s *Server) ListExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	exercises, err := s.exerciseService.List(ctx, phone)
	if err != nil {
		writeServiceError(w, logger, "listing exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercises)
}

func (s *Server) LastExercises(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = service.DefaultLastExercises
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	exercises, err := s.exerciseService.Last(ctx, phone, limit)
	if err != nil {
		writeServiceError(w, logger, "listing last exercises", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, exercises)
}

func (s *Server) GetExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, id, ok := s.exerciseTarget(w, r)
	if !ok {
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	ex, err := s.exerciseService.Get(ctx, phone, id)
	if err != nil {
		writeServiceError(w, logger, "getting exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ex)
}

func (s *Server) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, id, ok := s.exerciseTarget(w, r)
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("update exercise error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	ex, err := s.exerciseService.Update(ctx, phone, id, req.toService())
	if err != nil {
		writeServiceError(w, logger, "updating exercise", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ex)
	logger.Info("exercise updated")
}

func (s *Server) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, id, ok := s.exerciseTarget(w, r)
	if !ok {
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	if err := s.exerciseService.Delete(ctx, phone, id); err != nil {
		writeServiceError(w, logger, "deleting exercise", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("exercise deleted")
}

func (s *Server) exerciseTarget(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	logger := GetLoggerFromCtx(r.Context())
	phone, err := GetPhoneFromContext(r)
	if err != nil {
		logger.Error("exercise error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return "", 0, false
	}
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		logger.Error("exercise error: invalid id", slog.String("id", chi.URLParam(r, "id")))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid exercise id", nil)
		return "", 0, false
	}
	return phone, id, true
}
