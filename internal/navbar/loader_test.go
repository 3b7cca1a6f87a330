package navbar

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/rentor/internal/authn/token"
	"github.com/bornholm/rentor/internal/authn/token/tokentest"
	"github.com/bornholm/rentor/internal/rentor"
	"github.com/pkg/errors"
)

type fakeAPI struct {
	users        []*rentor.User
	usersErr     error
	usersLatency time.Duration
	role         rentor.Role
	roleErr      error
	roleLatency  time.Duration

	usersCalls atomic.Int32
	roleCalls  atomic.Int32
}

func (api *fakeAPI) ListUsers(ctx context.Context, token string) ([]*rentor.User, error) {
	api.usersCalls.Add(1)
	time.Sleep(api.usersLatency)

	if api.usersErr != nil {
		return nil, api.usersErr
	}

	return api.users, nil
}

func (api *fakeAPI) GetRole(ctx context.Context, token string) (rentor.Role, error) {
	api.roleCalls.Add(1)
	time.Sleep(api.roleLatency)

	if api.roleErr != nil {
		return "", api.roleErr
	}

	return api.role, nil
}

var testUsers = []*rentor.User{
	{Email: "john@rentor.local", FirstName: "John"},
	{Email: "jane@rentor.local", FirstName: "Jane"},
}

func TestLoaderLoad(t *testing.T) {
	type testCase struct {
		Session       *token.Session
		API           *fakeAPI
		ExpectedCalls int32
		Assert        func(t *testing.T, state *State)
	}

	testCases := []testCase{
		{
			Session:       nil,
			API:           &fakeAPI{users: testUsers, role: rentor.RoleOwner},
			ExpectedCalls: 0,
			Assert: func(t *testing.T, state *State) {
				if state.LoggedIn {
					t.Errorf("state.LoggedIn: expected 'false', got 'true'")
				}

				if state.User != nil || state.Role != "" {
					t.Errorf("state: expected user and role to be unset, got '%v' and '%v'", state.User, state.Role)
				}
			},
		},
		{
			Session:       token.NewSession(tokentest.Sign(t, "jane@rentor.local")),
			API:           &fakeAPI{users: testUsers, role: rentor.RoleOwner, usersLatency: 20 * time.Millisecond},
			ExpectedCalls: 1,
			Assert: func(t *testing.T, state *State) {
				if state.User == nil {
					t.Fatalf("state.User: expected a user, got nil")
				}

				if e, g := "Jane", state.User.FirstName; e != g {
					t.Errorf("state.User.FirstName: expected '%v', got '%v'", e, g)
				}

				if e, g := rentor.RoleOwner, state.Role; e != g {
					t.Errorf("state.Role: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Session:       token.NewSession(tokentest.Sign(t, "jane@rentor.local")),
			API:           &fakeAPI{users: testUsers, role: rentor.RoleUser, roleLatency: 20 * time.Millisecond},
			ExpectedCalls: 1,
			Assert: func(t *testing.T, state *State) {
				if state.User == nil {
					t.Fatalf("state.User: expected a user, got nil")
				}

				if e, g := rentor.RoleUser, state.Role; e != g {
					t.Errorf("state.Role: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Session:       token.NewSession(tokentest.Sign(t, "ghost@rentor.local")),
			API:           &fakeAPI{users: testUsers, role: rentor.RoleUser},
			ExpectedCalls: 1,
			Assert: func(t *testing.T, state *State) {
				if state.User != nil {
					t.Errorf("state.User: expected nil, got '%v'", state.User.Email)
				}

				if e, g := "ghost@rentor.local", state.Email; e != g {
					t.Errorf("state.Email: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Session:       token.NewSession(tokentest.Sign(t, "jane@rentor.local")),
			API:           &fakeAPI{usersErr: rentor.ErrRequestFailed, role: rentor.RoleOwner},
			ExpectedCalls: 1,
			Assert: func(t *testing.T, state *State) {
				if !state.LoggedIn {
					t.Errorf("state.LoggedIn: expected 'true', got 'false'")
				}

				if state.User != nil {
					t.Errorf("state.User: expected nil, got '%v'", state.User.Email)
				}

				if e, g := rentor.RoleOwner, state.Role; e != g {
					t.Errorf("state.Role: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Session:       token.NewSession("malformed-token"),
			API:           &fakeAPI{users: testUsers, roleErr: rentor.ErrRequestFailed},
			ExpectedCalls: 1,
			Assert: func(t *testing.T, state *State) {
				if !state.LoggedIn {
					t.Errorf("state.LoggedIn: expected 'true', got 'false'")
				}

				if state.User != nil || state.Role != "" {
					t.Errorf("state: expected user and role to be unset, got '%v' and '%v'", state.User, state.Role)
				}
			},
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			loader := NewLoader(tc.API)

			state := loader.Load(context.Background(), tc.Session)

			if e, g := tc.ExpectedCalls, tc.API.usersCalls.Load(); e != g {
				t.Errorf("users calls: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedCalls, tc.API.roleCalls.Load(); e != g {
				t.Errorf("role calls: expected '%v', got '%v'", e, g)
			}

			if tc.Assert != nil {
				tc.Assert(t, state)
			}
		})
	}
}

func TestLoaderFetchMissingToken(t *testing.T) {
	api := &fakeAPI{users: testUsers, role: rentor.RoleOwner}
	loader := NewLoader(api)

	if _, err := loader.FetchUserData(context.Background(), nil); !errors.Is(err, token.ErrMissing) {
		t.Errorf("err: expected '%v', got '%+v'", token.ErrMissing, err)
	}

	if _, err := loader.FetchUserRole(context.Background(), nil); !errors.Is(err, token.ErrMissing) {
		t.Errorf("err: expected '%v', got '%+v'", token.ErrMissing, err)
	}

	if e, g := int32(0), api.usersCalls.Load()+api.roleCalls.Load(); e != g {
		t.Errorf("calls: expected '%v', got '%v'", e, g)
	}
}

func TestLoaderFetchUserDataDecodeFailure(t *testing.T) {
	loader := NewLoader(&fakeAPI{users: testUsers})

	_, err := loader.FetchUserData(context.Background(), token.NewSession("a.b.c"))
	if !errors.Is(err, token.ErrDecodeFailed) {
		t.Errorf("err: expected '%v', got '%+v'", token.ErrDecodeFailed, err)
	}
}
