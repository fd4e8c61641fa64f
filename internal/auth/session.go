// Package auth keeps the bearer token and the authenticated user for the
// lifetime of the client. Token issuance and renewal belong to the backend;
// the session only refuses to hand out a token it knows is missing or stale.
package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stroyteam/supplydesk/internal/model"
)

type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type Session struct {
	mu    sync.RWMutex
	token string
	user  *model.User
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

// Token returns the bearer token for outgoing requests. An absent token is an
// authentication error, never silently tolerated; a token whose JWT expiry
// already passed is reported before any network round trip.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", fmt.Errorf("no bearer token: %w", model.ErrUnauthorized)
	}
	if claims, err := InspectToken(s.token); err == nil {
		if exp := claims.ExpiresAt; exp != nil && exp.Before(time.Now()) {
			return "", fmt.Errorf("token expired at %s: %w", exp.Time, model.ErrUnauthorized)
		}
	}
	return s.token, nil
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) SetUser(u *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *Session) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) Role() model.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.EffectiveRole()
}

// InspectToken reads the claims of a JWT without verifying its signature:
// the signing key never leaves the backend, so the client can only inspect,
// not trust, what the token says about itself.
func InspectToken(token string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("auth.InspectToken: %w", err)
	}
	return &claims, nil
}
