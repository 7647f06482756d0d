package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/httputil"
)

const requestTimeout = 10 * time.Second

type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type SendOTPResponse struct {
	ChallengeID string    `json:"challengeId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
}

type VerifyOTPResponse struct {
	Token      string `json:"token"`
	Registered bool   `json:"registered"`
}

type SignupRequest struct {
	PhoneNumber string   `json:"phoneNumber"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Height      float64  `json:"height"`
	Weight      float64  `json:"weight"`
	WeightGoal  *float64 `json:"weightGoal,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

type UpdateUserRequest struct {
	FirstName  *string  `json:"firstName,omitempty"`
	LastName   *string  `json:"lastName,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	WeightGoal *float64 `json:"weightGoal,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type LocationRequest struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recordedAt"`
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) SendOTP(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SendOTPRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("sending otp error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	challenge, err := s.authService.SendOTP(ctx, req.PhoneNumber)
	if err != nil {
		writeServiceError(w, logger, "sending otp", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, SendOTPResponse{
		ChallengeID: challenge.ID,
		ExpiresAt:   challenge.ExpiresAt,
	})
	logger.Info("otp challenge issued")
}

func (s *Server) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req VerifyOTPRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("verifying otp error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	res, err := s.authService.VerifyOTP(ctx, req.PhoneNumber, req.Code)
	if err != nil {
		writeServiceError(w, logger, "verifying otp", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, VerifyOTPResponse{
		Token:      res.Token,
		Registered: res.Registered,
	})
	logger.Info("otp verified", slog.Bool("registered", res.Registered))
}

func (s *Server) Signup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, err := GetPhoneFromContext(r)
	if err != nil {
		logger.Error("signup error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req SignupRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("signup error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if req.PhoneNumber != phone {
		logger.Error("signup error: phone differs from verified one")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "phone number doesn't match verified one", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
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
		writeServiceError(w, logger, "signup", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, user)
	logger.Info("successful registration")
}

func (s *Server) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.GetByPhone(ctx, phone)
	if err != nil {
		writeServiceError(w, logger, "getting user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req UpdateUserRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("updating user error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, phone, &service.UpdateProfileRequest{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Height:     req.Height,
		Weight:     req.Weight,
		WeightGoal: req.WeightGoal,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	})
	if err != nil {
		writeServiceError(w, logger, "updating user", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

func (s *Server) RecordLocation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req LocationRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("recording location error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	err := s.userService.RecordLocation(ctx, phone, &service.LocationRequest{
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		RecordedAt: req.RecordedAt,
	})
	if err != nil {
		writeServiceError(w, logger, "recording location", err)
		return
	}
	httputil.WriteNoContent(w)
	logger.Info("location recorded")
}

func (s *Server) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	var req struct {
		Platform string `json:"platform"`
		Token    string `json:"token"`
	}
	if err := httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("registering push token error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := contextWithTimeout(r)
	defer cancel()
	endpoint, err := s.pushService.RegisterToken(ctx, phone, &service.PushTokenRequest{
		Platform: req.Platform,
		Token:    req.Token,
	})
	if err != nil {
		writeServiceError(w, logger, "registering push token", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, endpoint)
	logger.Info("push token registered")
}

func (s *Server) Stream(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	phone, _ := GetPhoneFromContext(r)
	if s.streams == nil {
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "realtime updates are disabled", nil)
		return
	}
	logger.Info("realtime subscriber connected")
	if err := s.streams.Serve(w, r, phone); err != nil {
		// Upgrader has already replied to the client
		logger.Error("websocket upgrade error", slog.String("error", err.Error()))
		return
	}
	logger.Info("realtime subscriber disconnected")
}

func contextWithTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: validation", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "validation failed", err)
	case errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrExerciseNotFound),
		errors.Is(err, errorvalues.ErrRecordNotFound),
		errors.Is(err, errorvalues.ErrDeviceNotFound),
		errors.Is(err, errorvalues.ErrGoalNotFound),
		errors.Is(err, errorvalues.ErrOTPNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrUserExists), errors.Is(err, errorvalues.ErrDeviceExists):
		logger.Error(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: wrong owner")
		httputil.WriteErrorResponse(w, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrInvalidOTP), errors.Is(err, errorvalues.ErrOTPExpired):
		logger.Error(op+" error: passcode rejected", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrPushDisabled):
		logger.Error(op + " error: push disabled")
		httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, err.Error(), nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
