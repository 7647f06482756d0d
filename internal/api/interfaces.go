package api

import (
	"net/http"

	jwtservice "github.com/limbo/fittrack/pkg/jwt_service"
)

type JWTServiceI interface {
	ParseToken(tokenString string) (*jwtservice.JWTClaims, error)
}

// StreamServer serves a realtime subscription for phone over an upgraded connection
type StreamServer interface {
	Serve(w http.ResponseWriter, r *http.Request, phone string) error
}
