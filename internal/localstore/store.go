package localstore

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/limbo/fittrack/pkg/entity"
	_ "modernc.org/sqlite"
)

const (
	KeyPhoneNumber  = "userPhoneNumber"
	KeyAuthToken    = "authToken"
	KeyLastOpenDate = "lastOpenDate"
)

var ErrNotFound = errors.New("key not found in local store")

const schema = `
CREATE TABLE IF NOT EXISTS kv (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS paired_devices (
  device_id TEXT PRIMARY KEY,
  device_name TEXT NOT NULL,
  mode TEXT NOT NULL
);`

// Store keeps client state in a local sqlite file.
type Store struct {
	db *sql.DB
}

// Open creates the file and its directory when missing. ":memory:" is accepted.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, errors.New("creating local store dir error: " + err.Error())
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.New("opening local store error: " + err.Error())
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.New("initializing local store error: " + err.Error())
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", errors.New("reading local value error: " + err.Error())
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value)
	if err != nil {
		return errors.New("writing local value error: " + err.Error())
	}
	return nil
}

// Delete is a no-op for absent keys
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?;`, key)
	if err != nil {
		return errors.New("deleting local value error: " + err.Error())
	}
	return nil
}

// Session returns the stored phone number and token. ErrNotFound when logged out.
func (s *Store) Session(ctx context.Context) (string, string, error) {
	phone, err := s.Get(ctx, KeyPhoneNumber)
	if err != nil {
		return "", "", err
	}
	token, err := s.Get(ctx, KeyAuthToken)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return "", "", err
	}
	return phone, token, nil
}

func (s *Store) SaveSession(ctx context.Context, phone, token string) error {
	if err := s.Set(ctx, KeyPhoneNumber, phone); err != nil {
		return err
	}
	return s.Set(ctx, KeyAuthToken, token)
}

func (s *Store) ClearSession(ctx context.Context) error {
	for _, key := range []string{KeyPhoneNumber, KeyAuthToken, KeyLastOpenDate} {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	_, err := s.db.ExecContext(ctx, `DELETE FROM paired_devices;`)
	if err != nil {
		return errors.New("clearing paired devices error: " + err.Error())
	}
	return nil
}

func (s *Store) SaveDevice(ctx context.Context, d *entity.Device) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO paired_devices (device_id, device_name, mode) VALUES (?, ?, ?)
		ON CONFLICT(device_id) DO UPDATE SET device_name = excluded.device_name, mode = excluded.mode;`,
		d.DeviceID, d.DeviceName, d.Mode,
	)
	if err != nil {
		return errors.New("caching device error: " + err.Error())
	}
	return nil
}

func (s *Store) Devices(ctx context.Context) ([]*entity.Device, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT device_id, device_name, mode FROM paired_devices ORDER BY device_name;`)
	if err != nil {
		return nil, errors.New("listing cached devices error: " + err.Error())
	}
	defer rows.Close()
	devices := make([]*entity.Device, 0)
	for rows.Next() {
		d := entity.Device{}
		if err = rows.Scan(&d.DeviceID, &d.DeviceName, &d.Mode); err != nil {
			return nil, errors.New("scanning cached device error: " + err.Error())
		}
		devices = append(devices, &d)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning cached devices: " + err.Error())
	}
	return devices, nil
}

func (s *Store) RemoveDevice(ctx context.Context, deviceID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM paired_devices WHERE device_id = ?;`, deviceID)
	if err != nil {
		return errors.New("removing cached device error: " + err.Error())
	}
	return nil
}
