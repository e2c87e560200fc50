package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	notehttp "github.com/pulselabs/pulse-api/internal/adapters/http/note"
	appnote "github.com/pulselabs/pulse-api/internal/application/note"
	corenote "github.com/pulselabs/pulse-api/internal/core/note"
	"github.com/pulselabs/pulse-api/internal/infrastructure/config"
	"github.com/pulselabs/pulse-api/internal/infrastructure/metrics"
	"github.com/pulselabs/pulse-api/internal/testutil"
)

type stubRepo struct{}

func (stubRepo) Create(context.Context, corenote.Note) error { return nil }
func (stubRepo) FindByID(context.Context, string) (*corenote.Note, error) {
	return nil, nil
}
func (stubRepo) List(context.Context, int) ([]corenote.Note, error) {
	return nil, nil
}

func testOptions() Options {
	return Options{
		Config: config.AppConfig{
			HTTP: config.HTTPSettings{
				Port:            8080,
				ReadTimeout:     10 * time.Second,
				WriteTimeout:    10 * time.Second,
				IdleTimeout:     120 * time.Second,
				ShutdownTimeout: time.Second,
			},
		},
		Logger: testutil.NewNullLogger(),
		HealthHandler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
		MetaHandler: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
		Notes: notehttp.NewHandler(appnote.NewService(stubRepo{}), testutil.NewNullLogger()),
	}
}

func TestNew_NilLogger(t *testing.T) {
	opts := testOptions()
	opts.Logger = nil

	_, err := New(opts)
	if err == nil {
		t.Fatal("expected error for nil logger")
	}
	if err.Error() != "logger is required" {
		t.Errorf("expected error 'logger is required', got %q", err.Error())
	}
}

func TestNew_NilHealthHandler(t *testing.T) {
	opts := testOptions()
	opts.HealthHandler = nil

	_, err := New(opts)
	if err == nil {
		t.Fatal("expected error for nil health handler")
	}
	if err.Error() != "health handler is required" {
		t.Errorf("expected error 'health handler is required', got %q", err.Error())
	}
}

func TestNew_NilNoteHandler(t *testing.T) {
	opts := testOptions()
	opts.Notes = nil

	if _, err := New(opts); err == nil {
		t.Fatal("expected error for nil note handler")
	}
}

func TestNew_ValidOptions(t *testing.T) {
	srv, err := New(testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if srv == nil {
		t.Fatal("expected server to be created, got nil")
	}
	if srv.httpServer.Addr != ":8080" {
		t.Errorf("expected address ':8080', got %q", srv.httpServer.Addr)
	}
}

func TestServer_Routes(t *testing.T) {
	opts := testOptions()
	opts.Metrics = metrics.New()

	srv, err := New(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/health"},
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/notes"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
			t.Errorf("%s %s: expected a registered route, got %d", tc.method, tc.path, w.Code)
		}
	}
}

func TestServer_UnknownRoute(t *testing.T) {
	srv, err := New(testOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown route, got %d", w.Code)
	}
}

func TestServer_Run_StopsOnContextCancel(t *testing.T) {
	opts := testOptions()
	opts.Config.HTTP.Port = 0 // any free port

	srv, err := New(opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}
