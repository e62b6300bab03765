// Package session holds the signed-in state of the client.
//
// A Session is created by the CLI app and passed explicitly to whatever needs
// to read or replace the token. Store persists the token in the local
// database under TokenKey so it survives restarts.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("not signed in")

// Identity is what the client can learn about the signed-in user from the
// token itself.
type Identity struct {
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// Claims is the payload the backend puts into its tokens.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

type Session struct {
	token    string
	identity Identity
	known    bool
}

func New() *Session {
	return &Session{}
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	return s.token
}

// Set replaces the token. Identity is decoded from the token when it is a
// JWT; an opaque token is kept with an unknown identity.
func (s *Session) Set(token string) {
	s.token = token
	s.identity, s.known = Identity{}, false
	if id, err := Decode(token); err == nil {
		s.identity, s.known = id, true
	}
}

func (s *Session) Clear() {
	s.token = ""
	s.identity, s.known = Identity{}, false
}

func (s *Session) Active() bool {
	return s.token != ""
}

// Identity returns the decoded identity, or false when there is no session
// or the token could not be decoded.
func (s *Session) Identity() (Identity, bool) {
	return s.identity, s.known
}

// Expired reports whether the token carries an expiry that lies before now.
func (s *Session) Expired(now time.Time) bool {
	if !s.known || s.identity.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(s.identity.ExpiresAt)
}

// Decode reads the claims of a JWT without checking its signature; the
// client never holds the signing key. The server remains the authority.
func Decode(token string) (Identity, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, err
	}
	id := Identity{UserID: claims.Subject, Username: claims.Username}
	if claims.ExpiresAt != nil {
		id.ExpiresAt = claims.ExpiresAt.Time
	}
	return id, nil
}
