// @title Fitness tracker API
// @description Backend of the fitness tracker: profiles, exercises, daily records, devices and goals
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/limbo/fittrack/docs"
	"github.com/limbo/fittrack/internal/api"
	"github.com/limbo/fittrack/internal/realtime"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/cleanup"
	"github.com/limbo/fittrack/pkg/config"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	level := slog.LevelInfo
	if cfg.GetBool("DEBUG", false) {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetStringOr("POSTGRES_SSLMODE", "disable"),
	}
	if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}
	pool := repository.NewPool(&dbCfg)
	defer cleanup.CleanUp()

	usersRepo := repository.NewUsersRepo(pool)
	goalsRepo := repository.NewGoalsRepo(pool)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var snsClient service.SNSClient
	platformARN := cfg.GetString("SNS_PLATFORM_ARN")
	if platformARN != "" {
		client, err := service.NewSNSClient(ctx, cfg.GetStringOr("AWS_REGION", "ap-southeast-1"))
		if err != nil {
			slog.Error("push notifications disabled", slog.String("error", err.Error()))
		} else {
			snsClient = client
		}
	}
	pushService := service.NewPushService(repository.NewPushRepo(pool), snsClient, platformARN)

	hub := realtime.NewHub()
	cleanup.Register(&cleanup.Job{
		Name: "closing realtime subscribers",
		F: func() error {
			hub.CloseAll()
			return nil
		},
	})

	jwtService := jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", 24*time.Hour))
	serv := api.New(&api.ServicesList{
		UserService: service.NewUserService(usersRepo),
		AuthService: service.NewAuthService(repository.NewOTPRepo(pool), usersRepo, jwtService, service.AuthOptions{
			Code: cfg.GetStringOr("OTP_CODE", service.DefaultOTPCode),
			TTL:  cfg.GetDuration("OTP_TTL", 5*time.Minute),
		}),
		ExerciseService:    service.NewExerciseService(repository.NewExercisesRepo(pool)),
		DailyRecordService: service.NewDailyRecordService(repository.NewDailyRecordsRepo(pool), usersRepo, goalsRepo, hub, pushService),
		DeviceService:      service.NewDeviceService(repository.NewDevicesRepo(pool)),
		GoalService:        service.NewGoalService(goalsRepo),
		PushService:        pushService,
		JwtService:         jwtService,
		Streams:            hub,
		Swagger:            cfg.GetBool("SWAGGER_ENABLED", false),
	})
	err := serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
}
