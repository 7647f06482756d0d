package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/fittrack/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	authService        service.AuthServiceI
	exerciseService    service.ExerciseServiceI
	dailyRecordService service.DailyRecordServiceI
	deviceService      service.DeviceServiceI
	goalService        service.GoalServiceI
	pushService        service.PushServiceI
	jwtService         JWTServiceI
	streams            StreamServer
	swagger            bool
}

type ServicesList struct {
	UserService        service.UserServiceI
	AuthService        service.AuthServiceI
	ExerciseService    service.ExerciseServiceI
	DailyRecordService service.DailyRecordServiceI
	DeviceService      service.DeviceServiceI
	GoalService        service.GoalServiceI
	PushService        service.PushServiceI
	JwtService         JWTServiceI
	Streams            StreamServer
	// Serves /swagger/* when set
	Swagger bool
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        servicesOptions.UserService,
		authService:        servicesOptions.AuthService,
		exerciseService:    servicesOptions.ExerciseService,
		dailyRecordService: servicesOptions.DailyRecordService,
		deviceService:      servicesOptions.DeviceService,
		goalService:        servicesOptions.GoalService,
		pushService:        servicesOptions.PushService,
		jwtService:         servicesOptions.JwtService,
		streams:            servicesOptions.Streams,
		swagger:            servicesOptions.Swagger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	if s.swagger {
		s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
	s.mx.Route("/api", func(r chi.Router) {
		r.Post("/auth/otp", s.SendOTP)
		r.Post("/auth/verify", s.VerifyOTP)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Post("/users", s.Signup)
			r.Route("/users/{phone}", func(r chi.Router) {
				r.Use(s.PhoneOwnerMiddleware)
				r.Get("/", s.GetUser)
				r.Put("/", s.UpdateUser)
				r.Post("/location", s.RecordLocation)
			})

			r.Route("/user-exercises", func(r chi.Router) {
				r.Post("/", s.CreateExercise)
				r.Route("/id/{id}", func(r chi.Router) {
					r.Get("/", s.GetExercise)
					r.Put("/", s.UpdateExercise)
					r.Delete("/", s.DeleteExercise)
				})
				r.With(s.PhoneOwnerMiddleware).Get("/last/{phone}", s.LastExercises)
				r.With(s.PhoneOwnerMiddleware).Get("/{phone}", s.ListExercises)
			})

			r.Route("/dailyrecords/{phone}", func(r chi.Router) {
				r.Use(s.PhoneOwnerMiddleware)
				r.Get("/", s.ListDailyRecords)
				r.Post("/today", s.EnsureDailyRecord)
				r.Put("/{date}", s.UpsertDailyRecord)
			})

			r.Route("/devices/{phone}", func(r chi.Router) {
				r.Use(s.PhoneOwnerMiddleware)
				r.Get("/", s.ListDevices)
				r.Post("/", s.PairDevice)
				r.Put("/{deviceId}", s.UpdateDevice)
				r.Delete("/{deviceId}", s.RemoveDevice)
			})

			r.Route("/goals/{phone}", func(r chi.Router) {
				r.Use(s.PhoneOwnerMiddleware)
				r.Get("/", s.ListGoals)
				r.Post("/", s.CreateGoal)
				r.Put("/{id}", s.UpdateGoal)
				r.Delete("/{id}", s.DeleteGoal)
			})

			r.With(s.PhoneOwnerMiddleware).Post("/push-tokens/{phone}", s.RegisterPushToken)
			r.With(s.PhoneOwnerMiddleware).Get("/ws/{phone}", s.Stream)
		})
	})
}

// Handler returns the router wrapped with OpenTelemetry instrumentation.
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.mx, "fittrack-api")
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("server stopped")
	return nil
}
