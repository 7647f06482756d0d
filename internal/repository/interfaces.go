package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fittrack/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user. Phone number is the identifier
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by phone number. Used by login lookup and auth middleware
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	// Updates profile fields (names, height, weight, weight goal, coordinates)
	Update(ctx context.Context, user *entity.User) error
	// Stores a location ping and moves user's coordinates to it
	RecordLocation(ctx context.Context, ping *entity.LocationPing) error
}

type ExercisesRepositoryI interface {
	// Creates exercise record. Zero ExerciseDate means "now"
	Create(ctx context.Context, ex *entity.Exercise) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Exercise, error)
	// Lists user's exercises, newest first
	ListByPhone(ctx context.Context, phone string) ([]*entity.Exercise, error)
	// Returns at most limit newest exercises
	LastByPhone(ctx context.Context, phone string, limit int) ([]*entity.Exercise, error)
	Update(ctx context.Context, ex *entity.Exercise) error
	Delete(ctx context.Context, id int64) error
}

type DailyRecordsRepositoryI interface {
	// Inserts or overwrites record for (phone, date). Nil fields keep stored values
	Upsert(ctx context.Context, patch *entity.DailyRecordPatch) (*entity.DailyRecord, error)
	// Inserts record for (phone, date) if it doesn't exist. Reports whether it was created
	CreateIfMissing(ctx context.Context, rec *entity.DailyRecord) (bool, error)
	Get(ctx context.Context, phone string, date time.Time) (*entity.DailyRecord, error)
	// Lists records in ascending date order
	ListByPhone(ctx context.Context, phone string) ([]*entity.DailyRecord, error)
}

type DevicesRepositoryI interface {
	Create(ctx context.Context, device *entity.Device) error
	ListByPhone(ctx context.Context, phone string) ([]*entity.Device, error)
	// Updates name and mode of device
	Update(ctx context.Context, device *entity.Device) error
	Delete(ctx context.Context, phone, deviceID string) error
}

type GoalsRepositoryI interface {
	Create(ctx context.Context, goal *entity.Goal) (int64, error)
	GetByID(ctx context.Context, id int64) (*entity.Goal, error)
	ListByPhone(ctx context.Context, phone string) ([]*entity.Goal, error)
	Update(ctx context.Context, goal *entity.Goal) error
	Delete(ctx context.Context, id int64) error
	// Marks goal as notified for the day. Returns false if it was already marked
	MarkNotified(ctx context.Context, goalID int64, day time.Time) (bool, error)
}

type OTPRepositoryI interface {
	// Saves challenge replacing previous one for the same phone
	Save(ctx context.Context, challenge *entity.OTPChallenge) error
	Find(ctx context.Context, phone string) (*entity.OTPChallenge, error)
	Delete(ctx context.Context, phone string) error
}

type PushRepositoryI interface {
	Upsert(ctx context.Context, endpoint *entity.PushEndpoint) error
	ListByPhone(ctx context.Context, phone string) ([]*entity.PushEndpoint, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
