package rentor

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleUser  Role = "user"
)

// User is a record of the users collection. Identity is the email.
// Fields the navbar does not render, such as lastName or photo, are
// kept in Extra.
type User struct {
	Email     string         `mapstructure:"email"`
	FirstName string         `mapstructure:"firstName"`
	Extra     map[string]any `mapstructure:",remain"`
}

func decodeUser(raw map[string]any) (*User, error) {
	user := &User{}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           user,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}

// FindUserByEmail returns the first user whose email is exactly email.
func FindUserByEmail(users []*User, email string) *User {
	for _, u := range users {
		if u != nil && u.Email == email {
			return u
		}
	}

	return nil
}
