package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type OTPRepository struct {
	conn PgConnection
}

func NewOTPRepo(conn PgConnection) *OTPRepository {
	mustPing(conn, "otpRepo")
	return &OTPRepository{
		conn: conn,
	}
}

func (or *OTPRepository) Save(ctx context.Context, challenge *entity.OTPChallenge) error {
	id, err := uuid.Parse(challenge.ID)
	if err != nil {
		return errors.New("invalid challenge id: " + err.Error())
	}
	_, err = or.conn.Exec(ctx, `INSERT INTO otp_codes (phone_number, id, code_hash, expires_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone_number) DO UPDATE SET id = EXCLUDED.id, code_hash = EXCLUDED.code_hash, expires_at = EXCLUDED.expires_at;`,
		challenge.PhoneNumber, id, challenge.CodeHash, challenge.ExpiresAt,
	)
	if err != nil {
		return errors.New("saving otp challenge error: " + err.Error())
	}
	return nil
}

func (or *OTPRepository) Find(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	var (
		challenge entity.OTPChallenge
		id        uuid.UUID
	)
	row := or.conn.QueryRow(ctx, `SELECT phone_number, id, code_hash, expires_at FROM otp_codes WHERE phone_number = $1;`, phone)
	if err := row.Scan(&challenge.PhoneNumber, &id, &challenge.CodeHash, &challenge.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrOTPNotFound
		}
		return nil, errors.New("searching otp challenge error: " + err.Error())
	}
	challenge.ID = id.String()
	return &challenge, nil
}

func (or *OTPRepository) Delete(ctx context.Context, phone string) error {
	_, err := or.conn.Exec(ctx, `DELETE FROM otp_codes WHERE phone_number = $1;`, phone)
	if err != nil {
		return errors.New("deleting otp challenge error: " + err.Error())
	}
	return nil
}
