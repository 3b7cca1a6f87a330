package rentor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
)

type recordedRequest struct {
	Endpoint string
	Outcome  string
}

type testRecorder struct {
	requests []recordedRequest
}

func (r *testRecorder) RecordUpstreamRequest(endpoint string, outcome string, duration time.Duration) {
	r.requests = append(r.requests, recordedRequest{endpoint, outcome})
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server
}

func TestClientListUsers(t *testing.T) {
	type testCase struct {
		Status          int
		Body            string
		ExpectedErr     error
		ExpectedUsers   int
		ExpectedOutcome string
		Assert          func(t *testing.T, users []*User)
	}

	testCases := []testCase{
		{
			Status:          http.StatusOK,
			Body:            `[{"email":"jane@rentor.local","firstName":"Jane","lastName":"Doe","phone":"0102"},{"email":"john@rentor.local","firstName":"John"}]`,
			ExpectedUsers:   2,
			ExpectedOutcome: "success",
			Assert: func(t *testing.T, users []*User) {
				if e, g := "Jane", users[0].FirstName; e != g {
					t.Errorf("users[0].FirstName: expected '%v', got '%v'", e, g)
				}

				if e, g := "0102", users[0].Extra["phone"]; e != g {
					t.Errorf("users[0].Extra[\"phone\"]: expected '%v', got '%v'", e, g)
				}

				if e, g := "Doe", users[0].Extra["lastName"]; e != g {
					t.Errorf("users[0].Extra[\"lastName\"]: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Status:          http.StatusOK,
			Body:            `[]`,
			ExpectedUsers:   0,
			ExpectedOutcome: "success",
		},
		{
			Status:          http.StatusUnauthorized,
			Body:            `{"message":"unauthorized"}`,
			ExpectedErr:     ErrRequestFailed,
			ExpectedOutcome: "status",
		},
		{
			Status:          http.StatusOK,
			Body:            `{"not":"a list"}`,
			ExpectedOutcome: "decode",
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				if e, g := "/api/user/all", r.URL.Path; e != g {
					t.Errorf("r.URL.Path: expected '%v', got '%v'", e, g)
				}

				if e, g := "Bearer my-token", r.Header.Get("Authorization"); e != g {
					t.Errorf("Authorization: expected '%v', got '%v'", e, g)
				}

				if r.Header.Get("X-Request-Id") == "" {
					t.Errorf("X-Request-Id: expected a value")
				}

				w.WriteHeader(tc.Status)
				fmt.Fprint(w, tc.Body)
			})

			recorder := &testRecorder{}

			client, err := NewClient(server.URL+"/api", WithRecorder(recorder))
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			users, err := client.ListUsers(context.Background(), "my-token")

			if e, g := 1, len(recorder.requests); e != g {
				t.Fatalf("len(recorder.requests): expected '%v', got '%v'", e, g)
			}

			if e, g := tc.ExpectedOutcome, recorder.requests[0].Outcome; e != g {
				t.Errorf("outcome: expected '%v', got '%v'", e, g)
			}

			if tc.ExpectedOutcome != "success" {
				if err == nil {
					t.Fatalf("err: expected an error, got nil")
				}

				if tc.ExpectedErr != nil && !errors.Is(err, tc.ExpectedErr) {
					t.Fatalf("err: expected '%v', got '%+v'", tc.ExpectedErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedUsers, len(users); e != g {
				t.Fatalf("len(users): expected '%v', got '%v'", e, g)
			}

			if tc.Assert != nil {
				tc.Assert(t, users)
			}
		})
	}
}

func TestClientGetRole(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if e, g := "/auth/user", r.URL.Path; e != g {
			t.Errorf("r.URL.Path: expected '%v', got '%v'", e, g)
		}

		if e, g := "load-1", r.Header.Get("X-Request-Id"); e != g {
			t.Errorf("X-Request-Id: expected '%v', got '%v'", e, g)
		}

		if e, g := "rentor-test", r.Header.Get("User-Agent"); e != g {
			t.Errorf("User-Agent: expected '%v', got '%v'", e, g)
		}

		fmt.Fprint(w, `{"role":"Landlord"}`)
	})

	client, err := NewClient(server.URL, WithUserAgent("rentor-test"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := WithRequestID(context.Background(), "load-1")

	role, err := client.GetRole(ctx, "my-token")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	// Roles are stored verbatim, unknown values included
	if e, g := Role("Landlord"), role; e != g {
		t.Errorf("role: expected '%v', got '%v'", e, g)
	}
}

func TestClientNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient(baseURL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := client.GetRole(context.Background(), "my-token"); !errors.Is(err, ErrRequestFailed) {
		t.Errorf("err: expected '%v', got '%+v'", ErrRequestFailed, err)
	}
}

func TestNewClientInvalidURL(t *testing.T) {
	if _, err := NewClient("not-an-url"); err == nil {
		t.Errorf("err: expected an error, got nil")
	}
}

func TestFindUserByEmail(t *testing.T) {
	users := []*User{
		{Email: "john@rentor.local", FirstName: "John"},
		nil,
		{Email: "jane@rentor.local", FirstName: "Jane"},
		{Email: "jane@rentor.local", FirstName: "Duplicate"},
	}

	user := FindUserByEmail(users, "jane@rentor.local")
	if user == nil {
		t.Fatalf("user: expected a match, got nil")
	}

	if e, g := "Jane", user.FirstName; e != g {
		t.Errorf("user.FirstName: expected '%v', got '%v'", e, g)
	}

	if user := FindUserByEmail(users, "JANE@rentor.local"); user != nil {
		t.Errorf("user: expected no match on case mismatch, got '%v'", user.Email)
	}
}
