package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type PushRepository struct {
	conn PgConnection
}

func NewPushRepo(conn PgConnection) *PushRepository {
	mustPing(conn, "pushRepo")
	return &PushRepository{
		conn: conn,
	}
}

// Upsert keys endpoints by (phone, token hash) so re-registering a token refreshes its ARN.
func (pr *PushRepository) Upsert(ctx context.Context, endpoint *entity.PushEndpoint) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO push_endpoints (phone_number, platform, token_hash, endpoint_arn, updated_at) VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (phone_number, token_hash) DO UPDATE SET platform = EXCLUDED.platform, endpoint_arn = EXCLUDED.endpoint_arn, updated_at = NOW();`,
		endpoint.PhoneNumber, endpoint.Platform, endpoint.TokenHash, endpoint.EndpointARN,
	)
	if err != nil {
		if pgErrorCode(err) == pgForeignKeyViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving push endpoint error: " + err.Error())
	}
	return nil
}

func (pr *PushRepository) ListByPhone(ctx context.Context, phone string) ([]*entity.PushEndpoint, error) {
	rows, err := pr.conn.Query(ctx, `SELECT id, phone_number, platform, token_hash, endpoint_arn, updated_at FROM push_endpoints WHERE phone_number = $1;`, phone)
	if err != nil {
		return nil, errors.New("listing push endpoints error: " + err.Error())
	}
	defer rows.Close()
	endpoints := make([]*entity.PushEndpoint, 0)
	for rows.Next() {
		e := entity.PushEndpoint{}
		if err = rows.Scan(&e.ID, &e.PhoneNumber, &e.Platform, &e.TokenHash, &e.EndpointARN, &e.UpdatedAt); err != nil {
			return nil, errors.New("unmarshalling push endpoint error: " + err.Error())
		}
		endpoints = append(endpoints, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning push endpoints: " + err.Error())
	}
	return endpoints, nil
}
