package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPhone = "81228470"
	testUser  = entity.User{
		PhoneNumber: testPhone,
		FirstName:   "Tan",
		LastName:    "Wei",
		Height:      172,
		Weight:      68.5,
	}
)

func TestCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	user := testUser
	query := regexp.QuoteMeta(`INSERT INTO users (phone_number, first_name, last_name, height, weight, weight_goal, latitude, longitude) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`)
	args := []any{user.PhoneNumber, user.FirstName, user.LastName, user.Height, user.Weight, user.WeightGoal, user.Latitude, user.Longitude}
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	t.Run("successfully created", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		err := repo.Create(ctx, &user)
		assert.NoError(t, err)
	})
	t.Run("unique violation error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{
			Code: "23505",
		})
		err := repo.Create(ctx, &user)
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		err := repo.Create(ctx, &user)
		assert.Error(t, err)
	})
	t.Run("nil user", func(t *testing.T) {
		assert.Error(t, repo.Create(ctx, nil))
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindByPhone(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	now := time.Now()
	lat, lon := 1.3521, 103.8198
	user := testUser
	user.Latitude, user.Longitude = &lat, &lon
	user.CreatedAt, user.UpdatedAt = now, now
	columns := []string{"phone_number", "first_name", "last_name", "height", "weight", "weight_goal", "latitude", "longitude", "created_at", "updated_at"}
	query := regexp.QuoteMeta(`SELECT phone_number, first_name, last_name, height, weight, weight_goal, latitude, longitude, created_at, updated_at FROM users WHERE phone_number = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.PhoneNumber).
			WillReturnRows(pgxmock.NewRows(columns).AddRow(user.PhoneNumber, user.FirstName, user.LastName, user.Height, user.Weight, nil, &lat, &lon, now, now))
		result, err := repo.FindByPhone(ctx, user.PhoneNumber)
		require.NoError(t, err)
		assert.Equal(t, user, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.PhoneNumber).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByPhone(ctx, user.PhoneNumber)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(user.PhoneNumber).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindByPhone(ctx, user.PhoneNumber)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestUpdateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	user := testUser
	query := regexp.QuoteMeta(`UPDATE users SET first_name = $1, last_name = $2, height = $3, weight = $4, weight_goal = $5, latitude = $6, longitude = $7, updated_at = NOW() WHERE phone_number = $8;`)
	args := []any{user.FirstName, user.LastName, user.Height, user.Weight, user.WeightGoal, user.Latitude, user.Longitude, user.PhoneNumber}
	t.Run("updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &user))
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &user), errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Update(ctx, &user))
	})
}

func TestRecordLocation(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewUsersRepo(conn)
	ping := entity.LocationPing{
		PhoneNumber: testPhone,
		Latitude:    1.3521,
		Longitude:   103.8198,
		RecordedAt:  time.Now(),
	}
	insertQuery := regexp.QuoteMeta(`INSERT INTO location_pings (phone_number, latitude, longitude, recorded_at) VALUES ($1, $2, $3, $4);`)
	updateQuery := regexp.QuoteMeta(`UPDATE users SET latitude = $1, longitude = $2, updated_at = NOW() WHERE phone_number = $3;`)
	t.Run("recorded", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(insertQuery).
			WithArgs(ping.PhoneNumber, ping.Latitude, ping.Longitude, ping.RecordedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectExec(updateQuery).
			WithArgs(ping.Latitude, ping.Longitude, ping.PhoneNumber).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		conn.ExpectCommit()
		assert.NoError(t, repo.RecordLocation(ctx, &ping))
	})
	t.Run("unknown user", func(t *testing.T) {
		conn.ExpectBegin()
		conn.ExpectExec(insertQuery).
			WithArgs(ping.PhoneNumber, ping.Latitude, ping.Longitude, ping.RecordedAt).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		conn.ExpectRollback()
		assert.ErrorIs(t, repo.RecordLocation(ctx, &ping), errorvalues.ErrUserNotFound)
	})
	t.Run("begin error", func(t *testing.T) {
		conn.ExpectBegin().WillReturnError(errors.New("db error"))
		assert.Error(t, repo.RecordLocation(ctx, &ping))
	})
}
