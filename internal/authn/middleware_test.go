package authn

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

type testUser struct{}

func (testUser) UserSubject() string  { return "jane@rentor.local" }
func (testUser) UserProvider() string { return "test" }

func TestChain(t *testing.T) {
	type testCase struct {
		Authenticators  []Authenticator
		ExpectedStatus  int
		ExpectedUser    bool
		ExpectedReached bool
	}

	anonymous := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, nil
	})

	authenticated := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return testUser{}, nil
	})

	failing := AuthenticateFunc(func(w http.ResponseWriter, r *http.Request) (User, error) {
		return nil, errors.New("boom")
	})

	testCases := []testCase{
		{
			Authenticators:  []Authenticator{anonymous},
			ExpectedStatus:  http.StatusOK,
			ExpectedUser:    false,
			ExpectedReached: true,
		},
		{
			Authenticators:  []Authenticator{anonymous, authenticated},
			ExpectedStatus:  http.StatusOK,
			ExpectedUser:    true,
			ExpectedReached: true,
		},
		{
			Authenticators:  []Authenticator{authenticated, failing},
			ExpectedStatus:  http.StatusOK,
			ExpectedUser:    true,
			ExpectedReached: true,
		},
		{
			Authenticators:  []Authenticator{failing, authenticated},
			ExpectedStatus:  http.StatusInternalServerError,
			ExpectedReached: false,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			reached := false
			hasUser := false

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				_, err := ContextUser(r.Context())
				hasUser = err == nil
			})

			handler := Chain(WithAuthenticators(tc.Authenticators...))(next)

			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/", nil))

			if e, g := tc.ExpectedStatus, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedReached, reached; e != g {
				t.Errorf("reached: expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedUser, hasUser; e != g {
				t.Errorf("hasUser: expected '%v', got '%v'", e, g)
			}
		})
	}
}
