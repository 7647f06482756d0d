package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (c *testPGConfig) ConnString() string {
	return c.connStr
}

func TestDailyRecordsIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	cfg := setupTestDB(t)
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepo(pool)
	records := repository.NewDailyRecordsRepo(pool)
	goals := repository.NewGoalsRepo(pool)
	require.NoError(t, users.Create(ctx, &entity.User{PhoneNumber: testPhone, FirstName: "Tan", LastName: "Wei", Height: 172, Weight: 68.5}))

	t.Run("create if missing is idempotent", func(t *testing.T) {
		weight := 68.5
		rec := entity.DailyRecord{PhoneNumber: testPhone, RecordDate: "2024-03-10", Weight: &weight}
		created, err := records.CreateIfMissing(ctx, &rec)
		require.NoError(t, err)
		assert.True(t, created)
		created, err = records.CreateIfMissing(ctx, &rec)
		require.NoError(t, err)
		assert.False(t, created)
	})
	t.Run("upsert keeps absent fields", func(t *testing.T) {
		steps, calories, minutes := 3000, 200, 25
		_, err := records.Upsert(ctx, &entity.DailyRecordPatch{PhoneNumber: testPhone, RecordDate: "2024-03-10", TotalSteps: &steps})
		require.NoError(t, err)
		rec, err := records.Upsert(ctx, &entity.DailyRecordPatch{
			PhoneNumber:             testPhone,
			RecordDate:              "2024-03-10",
			TotalCaloriesBurned:     &calories,
			ExerciseDurationMinutes: &minutes,
		})
		require.NoError(t, err)
		assert.Equal(t, 3000, rec.TotalSteps)
		require.NotNil(t, rec.Weight)
		assert.Equal(t, 68.5, *rec.Weight)
		require.NotNil(t, rec.TotalCaloriesBurned)
		assert.Equal(t, 200, *rec.TotalCaloriesBurned)
	})
	t.Run("list and get", func(t *testing.T) {
		steps := 500
		_, err := records.Upsert(ctx, &entity.DailyRecordPatch{PhoneNumber: testPhone, RecordDate: "2024-03-09", TotalSteps: &steps})
		require.NoError(t, err)
		list, err := records.ListByPhone(ctx, testPhone)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "2024-03-09", list[0].RecordDate)
		_, err = records.Get(ctx, testPhone, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
	t.Run("goal notified once per day", func(t *testing.T) {
		id, err := goals.Create(ctx, &entity.Goal{PhoneNumber: testPhone, GoalType: entity.GoalTypeSteps, Goal: "1000"})
		require.NoError(t, err)
		day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		first, err := goals.MarkNotified(ctx, id, day)
		require.NoError(t, err)
		assert.True(t, first)
		second, err := goals.MarkNotified(ctx, id, day)
		require.NoError(t, err)
		assert.False(t, second)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fittrack"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{connStr: connStr}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return cfg
}
