package token

import (
	"context"

	"github.com/bornholm/rentor/internal/authn"
	"github.com/pkg/errors"
)

const Provider = "rentor"

var (
	ErrMissing      = errors.New("access token not found")
	ErrDecodeFailed = errors.New("could not decode access token")
)

// Session is the explicit authentication state of a request: the raw
// bearer token and its claims, decoded once without verification.
type Session struct {
	token     string
	claims    *Claims
	claimsErr error
}

func (s *Session) Token() string {
	if s == nil {
		return ""
	}

	return s.token
}

func (s *Session) Claims() (*Claims, error) {
	if s == nil || s.token == "" {
		return nil, errors.WithStack(ErrMissing)
	}

	if s.claimsErr != nil {
		return nil, errors.WithStack(s.claimsErr)
	}

	return s.claims, nil
}

// Email returns the email claim of the token. It is a display hint
// only and must never be used to grant access.
func (s *Session) Email() (string, error) {
	claims, err := s.Claims()
	if err != nil {
		return "", errors.WithStack(err)
	}

	if claims.Email == "" {
		return "", errors.Wrap(ErrDecodeFailed, "no email claim")
	}

	return claims.Email, nil
}

// UserSubject implements authn.User.
func (s *Session) UserSubject() string {
	email, err := s.Email()
	if err != nil {
		return "unknown"
	}

	return email
}

// UserProvider implements authn.User.
func (s *Session) UserProvider() string {
	return Provider
}

var _ authn.User = &Session{}

func NewSession(token string) *Session {
	claims, err := DecodeClaims(token)

	return &Session{
		token:     token,
		claims:    claims,
		claimsErr: err,
	}
}

func ContextSession(ctx context.Context) (*Session, bool) {
	user, err := authn.ContextUser(ctx)
	if err != nil {
		return nil, false
	}

	sess, ok := user.(*Session)
	if !ok {
		return nil, false
	}

	return sess, true
}
