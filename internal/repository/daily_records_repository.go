package repository

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

const dailyRecordColumns = `phone_number, record_date, total_steps, total_calories_burned, exercise_duration_minutes, weight`

type DailyRecordsRepository struct {
	conn PgConnection
}

func NewDailyRecordsRepo(conn PgConnection) *DailyRecordsRepository {
	mustPing(conn, "dailyRecordsRepo")
	return &DailyRecordsRepository{
		conn: conn,
	}
}

// Upsert never resets a stored value to NULL: absent patch fields fall back to
// what the row already holds. Concurrent writers overwrite each other per field.
func (dr *DailyRecordsRepository) Upsert(ctx context.Context, patch *entity.DailyRecordPatch) (*entity.DailyRecord, error) {
	date, err := time.Parse(entity.RecordDateLayout, patch.RecordDate)
	if err != nil {
		return nil, errors.New("invalid record date: " + err.Error())
	}
	steps, err := toInt4(patch.TotalSteps)
	if err != nil {
		return nil, err
	}
	calories, err := toInt4(patch.TotalCaloriesBurned)
	if err != nil {
		return nil, err
	}
	duration, err := toInt4(patch.ExerciseDurationMinutes)
	if err != nil {
		return nil, err
	}
	row := dr.conn.QueryRow(ctx, `INSERT INTO daily_records (`+dailyRecordColumns+`)
		VALUES ($1, $2, COALESCE($3::integer, 0), $4::integer, $5::integer, $6::double precision)
		ON CONFLICT (phone_number, record_date) DO UPDATE SET
			total_steps = COALESCE($3::integer, daily_records.total_steps),
			total_calories_burned = COALESCE($4::integer, daily_records.total_calories_burned),
			exercise_duration_minutes = COALESCE($5::integer, daily_records.exercise_duration_minutes),
			weight = COALESCE($6::double precision, daily_records.weight)
		RETURNING `+dailyRecordColumns+`;`,
		patch.PhoneNumber,
		pgtype.Date{Time: date, Valid: true},
		steps,
		calories,
		duration,
		toFloat8(patch.Weight),
	)
	rec, err := scanDailyRecord(row)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("upserting daily record error: " + err.Error())
	}
	return rec, nil
}

func (dr *DailyRecordsRepository) CreateIfMissing(ctx context.Context, rec *entity.DailyRecord) (bool, error) {
	date, err := time.Parse(entity.RecordDateLayout, rec.RecordDate)
	if err != nil {
		return false, errors.New("invalid record date: " + err.Error())
	}
	ct, err := dr.conn.Exec(ctx, `INSERT INTO daily_records (phone_number, record_date, total_steps, weight) VALUES ($1, $2, $3, $4) ON CONFLICT (phone_number, record_date) DO NOTHING;`,
		rec.PhoneNumber,
		pgtype.Date{Time: date, Valid: true},
		rec.TotalSteps,
		toFloat8(rec.Weight),
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return false, errorvalues.ErrUserNotFound
		}
		return false, errors.New("creating daily record error: " + err.Error())
	}
	return ct.RowsAffected() > 0, nil
}

func (dr *DailyRecordsRepository) Get(ctx context.Context, phone string, date time.Time) (*entity.DailyRecord, error) {
	row := dr.conn.QueryRow(ctx, `SELECT `+dailyRecordColumns+` FROM daily_records WHERE phone_number = $1 AND record_date = $2;`,
		phone, pgtype.Date{Time: date, Valid: true},
	)
	rec, err := scanDailyRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting daily record error: " + err.Error())
	}
	return rec, nil
}

func (dr *DailyRecordsRepository) ListByPhone(ctx context.Context, phone string) ([]*entity.DailyRecord, error) {
	rows, err := dr.conn.Query(ctx, `SELECT `+dailyRecordColumns+` FROM daily_records WHERE phone_number = $1 ORDER BY record_date ASC;`, phone)
	if err != nil {
		return nil, errors.New("listing daily records error: " + err.Error())
	}
	defer rows.Close()
	records := make([]*entity.DailyRecord, 0)
	for rows.Next() {
		rec, err := scanDailyRecord(rows)
		if err != nil {
			return nil, errors.New("unmarshalling daily record error: " + err.Error())
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning daily records: " + err.Error())
	}
	return records, nil
}

func scanDailyRecord(row pgx.Row) (*entity.DailyRecord, error) {
	var (
		rec  entity.DailyRecord
		date time.Time
	)
	err := row.Scan(
		&rec.PhoneNumber,
		&date,
		&rec.TotalSteps,
		&rec.TotalCaloriesBurned,
		&rec.ExerciseDurationMinutes,
		&rec.Weight,
	)
	if err != nil {
		return nil, err
	}
	rec.RecordDate = date.Format(entity.RecordDateLayout)
	return &rec, nil
}

// ErrIntegerOverflow is returned for counters that do not fit a postgres integer
var ErrIntegerOverflow = errors.New("value out of integer range")

func toInt4(v *int) (pgtype.Int4, error) {
	if v == nil {
		return pgtype.Int4{}, nil
	}
	if *v < math.MinInt32 || *v > math.MaxInt32 {
		return pgtype.Int4{}, ErrIntegerOverflow
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}, nil
}

func toFloat8(v *float64) pgtype.Float8 {
	if v == nil {
		return pgtype.Float8{}
	}
	return pgtype.Float8{Float64: *v, Valid: true}
}
