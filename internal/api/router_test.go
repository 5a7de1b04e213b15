package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/blaisecz/sleep-calculator/internal/api/handler"
	"github.com/blaisecz/sleep-calculator/internal/api/middleware"
	"github.com/blaisecz/sleep-calculator/internal/domain"
	"github.com/blaisecz/sleep-calculator/internal/service"
	"github.com/blaisecz/sleep-calculator/pkg/problem"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	h := handler.NewWakeTimeHandler(service.NewWakeTimeService(service.Defaults{}))
	srv := httptest.NewServer(NewRouter(h).Setup())
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}
}

func TestRouter_WakeTimes(t *testing.T) {
	srv := newTestServer(t)

	body := `{"bedtime": "23:30", "wake_time": "06:00", "policy": "proximity"}`
	resp, err := http.Post(srv.URL+"/v1/wake-times", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out domain.WakeTimesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []string{"02:45", "04:15", "05:45", "07:15"}
	if len(out.Candidates) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(out.Candidates), len(want))
	}
	for i, c := range out.Candidates {
		if c.WakeTime != want[i] {
			t.Errorf("candidate %d = %s, want %s", i, c.WakeTime, want[i])
		}
	}

	resp, err = http.Get(srv.URL + "/v1/wake-times?bedtime=23:30&wake_time=06:00&policy=proximity")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", resp.StatusCode)
	}
}

func TestRouter_Fallbacks(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown route", http.MethodGet, "/v1/nowhere", http.StatusNotFound},
		{"wrong method", http.MethodDelete, "/v1/wake-times", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, srv.URL+tt.path, nil)
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
			if ct := resp.Header.Get("Content-Type"); ct != problem.ContentType {
				t.Errorf("content type = %q", ct)
			}
		})
	}
}
