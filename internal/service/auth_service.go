package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/repository"
	"github.com/limbo/fittrack/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultOTPCode = "1234"
	defaultOTPTTL  = 5 * time.Minute
)

type AuthOptions struct {
	// Passcode every challenge is issued with. Empty means DefaultOTPCode
	Code string
	TTL  time.Duration
}

type AuthService struct {
	otpRepo   repository.OTPRepositoryI
	usersRepo repository.UsersRepositoryI
	tokens    TokenGenerator
	code      string
	ttl       time.Duration
	now       func() time.Time
}

func NewAuthService(otpRepo repository.OTPRepositoryI, usersRepo repository.UsersRepositoryI, tokens TokenGenerator, opts AuthOptions) *AuthService {
	if otpRepo == nil || usersRepo == nil || tokens == nil {
		log.Fatal("provided nil dependency to auth service")
	}
	if opts.Code == "" {
		opts.Code = DefaultOTPCode
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultOTPTTL
	}
	return &AuthService{
		otpRepo:   otpRepo,
		usersRepo: usersRepo,
		tokens:    tokens,
		code:      opts.Code,
		ttl:       opts.TTL,
		now:       time.Now,
	}
}

func (as *AuthService) SendOTP(ctx context.Context, phone string) (*entity.OTPChallenge, error) {
	if !ValidPhone(phone) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("invalid phone number"))
	}
	codeHash, err := Hash(as.code)
	if err != nil {
		return nil, errors.New("hashing passcode error: " + err.Error())
	}
	challenge := &entity.OTPChallenge{
		ID:          uuid.NewString(),
		PhoneNumber: phone,
		CodeHash:    codeHash,
		ExpiresAt:   as.now().Add(as.ttl),
	}
	if err = as.otpRepo.Save(ctx, challenge); err != nil {
		return nil, errors.New("otp repository error: " + err.Error())
	}
	return challenge, nil
}

func (as *AuthService) VerifyOTP(ctx context.Context, phone, code string) (*VerifyResult, error) {
	challenge, err := as.otpRepo.Find(ctx, phone)
	if err != nil {
		if errors.Is(err, errorvalues.ErrOTPNotFound) {
			return nil, err
		}
		return nil, errors.New("otp repository error: " + err.Error())
	}
	if as.now().After(challenge.ExpiresAt) {
		if err = as.otpRepo.Delete(ctx, phone); err != nil {
			return nil, errors.New("otp repository error: " + err.Error())
		}
		return nil, errorvalues.ErrOTPExpired
	}
	if err = bcrypt.CompareHashAndPassword([]byte(challenge.CodeHash), []byte(code)); err != nil {
		return nil, errorvalues.ErrInvalidOTP
	}
	if err = as.otpRepo.Delete(ctx, phone); err != nil {
		return nil, errors.New("otp repository error: " + err.Error())
	}
	registered := true
	_, err = as.usersRepo.FindByPhone(ctx, phone)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errors.New("users repository error: " + err.Error())
		}
		registered = false
	}
	token, err := as.tokens.GenerateToken(phone)
	if err != nil {
		return nil, errors.New("generating token error: " + err.Error())
	}
	return &VerifyResult{
		Token:      token,
		Registered: registered,
	}, nil
}

func Hash(secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
