package token

import (
	"net/http"
	"time"

	"github.com/bornholm/rentor/internal/authn"
)

// Detect reads the access token cookie. A missing or empty cookie is
// reported as absent, malformed tokens are still detected.
func Detect(r *http.Request, cookieName string) (*Session, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	return NewSession(cookie.Value), true
}

// Clear expires the access token cookie.
func Clear(w http.ResponseWriter, cookieName string) {
	http.SetCookie(w, &http.Cookie{
		Name:    cookieName,
		Value:   "",
		Path:    "/",
		Expires: time.Unix(0, 0).UTC(),
		MaxAge:  -1,
	})
}

func NewAuthenticator(cookieName string) authn.Authenticator {
	return authn.AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (authn.User, error) {
		sess, ok := Detect(r, cookieName)
		if !ok {
			return nil, nil
		}

		return sess, nil
	})
}
