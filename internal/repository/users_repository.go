package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	_, err := ur.conn.Exec(ctx, `INSERT INTO users (phone_number, first_name, last_name, height, weight, weight_goal, latitude, longitude) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		user.PhoneNumber,
		user.FirstName,
		user.LastName,
		user.Height,
		user.Weight,
		user.WeightGoal,
		user.Latitude,
		user.Longitude,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	return nil
}

func (ur *UsersRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var user entity.User
	row := ur.conn.QueryRow(ctx, `SELECT phone_number, first_name, last_name, height, weight, weight_goal, latitude, longitude, created_at, updated_at FROM users WHERE phone_number = $1;`, phone)
	err := row.Scan(
		&user.PhoneNumber,
		&user.FirstName,
		&user.LastName,
		&user.Height,
		&user.Weight,
		&user.WeightGoal,
		&user.Latitude,
		&user.Longitude,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by phone error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) Update(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET first_name = $1, last_name = $2, height = $3, weight = $4, weight_goal = $5, latitude = $6, longitude = $7, updated_at = NOW() WHERE phone_number = $8;`,
		user.FirstName,
		user.LastName,
		user.Height,
		user.Weight,
		user.WeightGoal,
		user.Latitude,
		user.Longitude,
		user.PhoneNumber,
	)
	if err != nil {
		return errors.New("updating user error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) RecordLocation(ctx context.Context, ping *entity.LocationPing) error {
	tx, err := ur.conn.Begin(ctx)
	if err != nil {
		return errors.New("starting location tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	_, err = tx.Exec(ctx, `INSERT INTO location_pings (phone_number, latitude, longitude, recorded_at) VALUES ($1, $2, $3, $4);`,
		ping.PhoneNumber, ping.Latitude, ping.Longitude, ping.RecordedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("inserting location ping error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `UPDATE users SET latitude = $1, longitude = $2, updated_at = NOW() WHERE phone_number = $3;`,
		ping.Latitude, ping.Longitude, ping.PhoneNumber,
	)
	if err != nil {
		return errors.New("updating user location error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing location tx error: " + err.Error())
	}
	return nil
}
