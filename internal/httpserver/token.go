package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// signToken creates an HS256 JWT binding the bearer to one game id.
func (s *Server) signToken(gameID string) (string, error) {
	now := s.opts.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"iat": now.Unix(),
		"exp": now.Add(s.opts.TokenTTL).Unix(),
	})
	return t.SignedString([]byte(s.opts.JWTSecret))
}

// parseToken verifies tok and returns its game id.
func (s *Server) parseToken(tok string) (string, error) {
	if tok == "" {
		return "", errors.New("missing token")
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.opts.Now))
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	id, _ := claims["gid"].(string)
	if id == "" {
		return "", errors.New("invalid token")
	}
	return id, nil
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}
