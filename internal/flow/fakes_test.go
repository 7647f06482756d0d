package flow_test

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/limbo/fittrack/internal/client"
	"github.com/limbo/fittrack/internal/localstore"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	testPhone = "81228470"
	testCode  = "1234"
)

var errNetwork = errors.New("network error")

type authAPIFake struct {
	verifyCalls int
	getUserErr  error
	verifyErr   error
	token       string
}

func (a *authAPIFake) SendOTP(ctx context.Context, phone string) (*client.OTPChallenge, error) {
	return &client.OTPChallenge{ChallengeID: "c1"}, nil
}

func (a *authAPIFake) VerifyOTP(ctx context.Context, phone, code string) (*client.VerifyResult, error) {
	a.verifyCalls++
	if a.verifyErr != nil {
		return nil, a.verifyErr
	}
	if code != testCode {
		return nil, &client.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid one-time passcode"}
	}
	return &client.VerifyResult{Token: "jwt-" + phone, Registered: a.getUserErr == nil}, nil
}

func (a *authAPIFake) GetUser(ctx context.Context, phone string) (*entity.User, error) {
	if a.getUserErr != nil {
		return nil, a.getUserErr
	}
	return &entity.User{PhoneNumber: phone, FirstName: "Tan"}, nil
}

func (a *authAPIFake) SetToken(token string) {
	a.token = token
}

type memStore struct {
	mu     sync.Mutex
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) SaveSession(ctx context.Context, phone, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[localstore.KeyPhoneNumber] = phone
	m.values[localstore.KeyAuthToken] = token
	return nil
}

func (m *memStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return "", localstore.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

type geocoderFake struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (g *geocoderFake) Lookup(ctx context.Context, postalCode string) (float64, float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls = append(g.calls, postalCode)
	if g.err != nil {
		return 0, 0, g.err
	}
	return 1.3521, 103.8198, nil
}

type signupAPIFake struct {
	got *client.SignupRequest
}

func (s *signupAPIFake) Signup(ctx context.Context, req *client.SignupRequest) (*entity.User, error) {
	s.got = req
	return &entity.User{PhoneNumber: req.PhoneNumber, FirstName: req.FirstName, Latitude: req.Latitude, Longitude: req.Longitude}, nil
}

type dayEnsurerFake struct {
	dates []string
	err   error
}

func (d *dayEnsurerFake) EnsureDay(ctx context.Context, phone, date string) (*entity.DailyRecord, bool, error) {
	if d.err != nil {
		return nil, false, d.err
	}
	d.dates = append(d.dates, date)
	return &entity.DailyRecord{PhoneNumber: phone, RecordDate: date}, true, nil
}
