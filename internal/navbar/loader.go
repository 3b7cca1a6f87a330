package navbar

import (
	"context"
	"log/slog"

	"github.com/bornholm/rentor/internal/authn/token"
	"github.com/bornholm/rentor/internal/rentor"
	"github.com/bornholm/rentor/pkg/log"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"golang.org/x/sync/errgroup"
)

type API interface {
	ListUsers(ctx context.Context, token string) ([]*rentor.User, error)
	GetRole(ctx context.Context, token string) (rentor.Role, error)
}

type Loader struct {
	api API
}

// FetchUserData lists all users and returns the one matching the
// token's email claim, or nil if none matches.
func (l *Loader) FetchUserData(ctx context.Context, sess *token.Session) (*rentor.User, error) {
	raw := sess.Token()
	if raw == "" {
		return nil, errors.WithStack(token.ErrMissing)
	}

	users, err := l.api.ListUsers(ctx, raw)
	if err != nil {
		return nil, errors.Wrap(err, "could not list users")
	}

	email, err := sess.Email()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rentor.FindUserByEmail(users, email), nil
}

func (l *Loader) FetchUserRole(ctx context.Context, sess *token.Session) (rentor.Role, error) {
	raw := sess.Token()
	if raw == "" {
		return "", errors.WithStack(token.ErrMissing)
	}

	role, err := l.api.GetRole(ctx, raw)
	if err != nil {
		return "", errors.Wrap(err, "could not retrieve user role")
	}

	return role, nil
}

// Load resolves the navbar state of the given session. Both fetches run
// concurrently and their results are committed once both are done.
// Fetch errors are logged and leave the matching field unset.
func (l *Loader) Load(ctx context.Context, sess *token.Session) *State {
	state := &State{}

	if sess.Token() == "" {
		return state
	}

	state.LoggedIn = true

	if email, err := sess.Email(); err == nil {
		state.Email = email
	}

	loadID := xid.New().String()
	ctx = rentor.WithRequestID(ctx, loadID)
	ctx = log.WithAttrs(ctx, slog.String("load", loadID))

	var (
		group errgroup.Group
		user  *rentor.User
		role  rentor.Role
	)

	group.Go(func() error {
		u, err := l.FetchUserData(ctx, sess)
		if err != nil {
			slog.ErrorContext(ctx, "could not fetch user data", log.Error(errors.WithStack(err)))
			return nil
		}

		if u == nil {
			slog.DebugContext(ctx, "no user matches token email", slog.String("email", state.Email))
		}

		user = u

		return nil
	})

	group.Go(func() error {
		r, err := l.FetchUserRole(ctx, sess)
		if err != nil {
			slog.ErrorContext(ctx, "could not fetch user role", log.Error(errors.WithStack(err)))
			return nil
		}

		role = r

		return nil
	})

	_ = group.Wait()

	state.User = user
	state.Role = role

	return state
}

func NewLoader(api API) *Loader {
	return &Loader{api: api}
}
