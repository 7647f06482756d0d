package jwtservice_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New("secret", time.Hour)
	token, err := s.GenerateToken("81228470")
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "81228470", claims.PhoneNumber)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestParseInvalidTokens(t *testing.T) {
	s := jwtservice.New("secret", time.Hour)
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("foreign secret", func(t *testing.T) {
		token, err := jwtservice.New("other", time.Hour).GenerateToken("81228470")
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		claims := &jwtservice.JWTClaims{
			PhoneNumber: "81228470",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(past),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("no phone", func(t *testing.T) {
		claims := &jwtservice.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
