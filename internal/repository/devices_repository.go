package repository

import (
	"context"
	"errors"

	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
)

type DevicesRepository struct {
	conn PgConnection
}

func NewDevicesRepo(conn PgConnection) *DevicesRepository {
	mustPing(conn, "devicesRepo")
	return &DevicesRepository{
		conn: conn,
	}
}

func (dr *DevicesRepository) Create(ctx context.Context, device *entity.Device) error {
	_, err := dr.conn.Exec(ctx, `INSERT INTO devices (device_id, phone_number, device_name, mode) VALUES ($1, $2, $3, $4);`,
		device.DeviceID,
		device.PhoneNumber,
		device.DeviceName,
		device.Mode,
	)
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return errorvalues.ErrDeviceExists
		case pgForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating device db error: " + err.Error())
	}
	return nil
}

func (dr *DevicesRepository) ListByPhone(ctx context.Context, phone string) ([]*entity.Device, error) {
	rows, err := dr.conn.Query(ctx, `SELECT device_id, phone_number, device_name, mode FROM devices WHERE phone_number = $1 ORDER BY device_name;`, phone)
	if err != nil {
		return nil, errors.New("listing devices error: " + err.Error())
	}
	defer rows.Close()
	devices := make([]*entity.Device, 0)
	for rows.Next() {
		d := entity.Device{}
		err = rows.Scan(&d.DeviceID, &d.PhoneNumber, &d.DeviceName, &d.Mode)
		if err != nil {
			return nil, errors.New("unmarshalling device error: " + err.Error())
		}
		devices = append(devices, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning devices: " + err.Error())
	}
	return devices, nil
}

func (dr *DevicesRepository) Update(ctx context.Context, device *entity.Device) error {
	ct, err := dr.conn.Exec(ctx, `UPDATE devices SET device_name = $1, mode = $2 WHERE phone_number = $3 AND device_id = $4;`,
		device.DeviceName, device.Mode, device.PhoneNumber, device.DeviceID,
	)
	if err != nil {
		return errors.New("updating device error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDeviceNotFound
	}
	return nil
}

func (dr *DevicesRepository) Delete(ctx context.Context, phone, deviceID string) error {
	ct, err := dr.conn.Exec(ctx, `DELETE FROM devices WHERE phone_number = $1 AND device_id = $2;`, phone, deviceID)
	if err != nil {
		return errors.New("deleting device error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDeviceNotFound
	}
	return nil
}
