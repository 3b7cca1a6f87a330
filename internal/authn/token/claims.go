package token

import (
	"encoding/json"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// Claims holds the payload fields read from the access token. Other
// fields, registered ones included, are ignored whatever their type.
type Claims struct {
	Email string `json:"email"`
}

// DecodeClaims decodes the payload segment of a JWT. Neither the header
// nor the signature are inspected.
func DecodeClaims(raw string) (*Claims, error) {
	if raw == "" {
		return nil, errors.WithStack(ErrMissing)
	}

	parts := strings.Split(raw, ".")
	if len(parts) < 2 {
		return nil, errors.Wrap(ErrDecodeFailed, "token has no payload segment")
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return nil, errors.Wrapf(ErrDecodeFailed, "%s", err.Error())
	}

	claims := &Claims{}

	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, errors.Wrapf(ErrDecodeFailed, "%s", err.Error())
	}

	return claims, nil
}
