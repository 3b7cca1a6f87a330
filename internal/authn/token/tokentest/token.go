// Package tokentest builds access tokens for tests.
package tokentest

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

func Sign(t testing.TB, email string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"email": email,
		"exp":   jwt.NewNumericDate(time.Now().Add(time.Hour)),
		"iat":   jwt.NewNumericDate(time.Now()),
	}

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("not-verified"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return raw
}

// Forge assembles a token from arbitrary header and payload segments
// followed by a dummy signature.
func Forge(t testing.TB, header map[string]any, payload map[string]any) string {
	t.Helper()

	segments := make([]string, 0, 3)

	for _, v := range []map[string]any{header, payload} {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		segments = append(segments, jwt.EncodeSegment(data))
	}

	segments = append(segments, "sig")

	return strings.Join(segments, ".")
}
