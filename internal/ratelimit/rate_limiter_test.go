package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	limiter := New(0, 2)

	handler := limiter.Middleware(RemoteIP)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func(remoteAddr string) int {
		req := httptest.NewRequest(http.MethodPost, "/navbar/dropdown", nil)
		req.RemoteAddr = remoteAddr

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res.Code
	}

	for i := 0; i < 2; i++ {
		if e, g := http.StatusNoContent, serve("10.0.0.1:1234"); e != g {
			t.Fatalf("request #%d: expected '%v', got '%v'", i, e, g)
		}
	}

	if e, g := http.StatusTooManyRequests, serve("10.0.0.1:4321"); e != g {
		t.Errorf("request over burst: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusNoContent, serve("10.0.0.2:1234"); e != g {
		t.Errorf("request from other client: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusInternalServerError, serve("invalid"); e != g {
		t.Errorf("request with invalid remote address: expected '%v', got '%v'", e, g)
	}
}
