package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const exerciseColumns = `id, phone_number, exercise_type, duration_minutes, calories_burned, intensity, rating, distance_from_home, exercise_date`

type ExercisesRepository struct {
	conn PgConnection
}

func NewExercisesRepo(conn PgConnection) *ExercisesRepository {
	mustPing(conn, "exercisesRepo")
	return &ExercisesRepository{
		conn: conn,
	}
}

func (er *ExercisesRepository) Create(ctx context.Context, ex *entity.Exercise) (int64, error) {
	date := ex.ExerciseDate
	if date.IsZero() {
		date = time.Now()
	}
	var id int64
	row := er.conn.QueryRow(ctx, `INSERT INTO user_exercises (phone_number, exercise_type, duration_minutes, calories_burned, intensity, rating, distance_from_home, exercise_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;`,
		ex.PhoneNumber,
		ex.ExerciseType,
		ex.DurationMinutes,
		ex.CaloriesBurned,
		ex.Intensity,
		ex.Rating,
		ex.DistanceFromHome,
		date,
	)
	if err := row.Scan(&id); err != nil {
		switch pgErrorCode(err) {
		// FK violation
		case pgForeignKeyViolation:
			return 0, errorvalues.ErrUserNotFound
		}
		return 0, errors.New("creating exercise db error: " + err.Error())
	}
	return id, nil
}

func (er *ExercisesRepository) GetByID(ctx context.Context, id int64) (*entity.Exercise, error) {
	row := er.conn.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM user_exercises WHERE id = $1;`, id)
	ex, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrExerciseNotFound
		}
		return nil, errors.New("getting exercise by id error: " + err.Error())
	}
	return ex, nil
}

func (er *ExercisesRepository) ListByPhone(ctx context.Context, phone string) ([]*entity.Exercise, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+exerciseColumns+` FROM user_exercises WHERE phone_number = $1 ORDER BY exercise_date DESC;`, phone)
	if err != nil {
		return nil, errors.New("listing exercises error: " + err.Error())
	}
	return collectExercises(rows)
}

func (er *ExercisesRepository) LastByPhone(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+exerciseColumns+` FROM user_exercises WHERE phone_number = $1 ORDER BY exercise_date DESC LIMIT $2;`, phone, limit)
	if err != nil {
		return nil, errors.New("listing last exercises error: " + err.Error())
	}
	return collectExercises(rows)
}

func (er *ExercisesRepository) Update(ctx context.Context, ex *entity.Exercise) error {
	ct, err := er.conn.Exec(ctx, `UPDATE user_exercises SET exercise_type = $1, duration_minutes = $2, calories_burned = $3, intensity = $4, rating = $5, distance_from_home = $6, exercise_date = $7 WHERE id = $8;`,
		ex.ExerciseType,
		ex.DurationMinutes,
		ex.CaloriesBurned,
		ex.Intensity,
		ex.Rating,
		ex.DistanceFromHome,
		ex.ExerciseDate,
		ex.ID,
	)
	if err != nil {
		return errors.New("updating exercise error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func (er *ExercisesRepository) Delete(ctx context.Context, id int64) error {
	ct, err := er.conn.Exec(ctx, `DELETE FROM user_exercises WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting exercise error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrExerciseNotFound
	}
	return nil
}

func scanExercise(row pgx.Row) (*entity.Exercise, error) {
	var ex entity.Exercise
	err := row.Scan(
		&ex.ID,
		&ex.PhoneNumber,
		&ex.ExerciseType,
		&ex.DurationMinutes,
		&ex.CaloriesBurned,
		&ex.Intensity,
		&ex.Rating,
		&ex.DistanceFromHome,
		&ex.ExerciseDate,
	)
	if err != nil {
		return nil, err
	}
	return &ex, nil
}

func collectExercises(rows pgx.Rows) ([]*entity.Exercise, error) {
	defer rows.Close()
	exercises := make([]*entity.Exercise, 0)
	for rows.Next() {
		ex, err := scanExercise(rows)
		if err != nil {
			return nil, errors.New("unmarshalling exercise error: " + err.Error())
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning exercises: " + err.Error())
	}
	return exercises, nil
}
