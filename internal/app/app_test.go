package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ChristianPavilonis/orderdesk/internal/config"
	testhelpers "github.com/ChristianPavilonis/orderdesk/internal/test"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newLifecycle(server *http.Server, timeout time.Duration) (*testhelpers.LifecycleRecorder, *testhelpers.ShutdownerStub) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Config:     &config.Config{ShutdownTimeout: timeout},
	})
	return recorder, shutdowner
}

func TestNewHTTPServerUsesConfig(t *testing.T) {
	router := gin.New()
	server := newHTTPServer(serverParams{
		Config: &config.Config{RunAddress: ":8181"},
		Router: router,
	})

	if server.Addr != ":8181" {
		t.Fatalf("expected listen address :8181, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatal("expected the gin engine to serve requests")
	}
}

func TestLifecycleStartsAndStopsServer(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	recorder, shutdowner := newLifecycle(server, 500*time.Millisecond)

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected a single lifecycle hook, got %d", len(recorder.Hooks))
	}
	hook := recorder.Hooks[0]

	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	stopped := make(chan error, 1)
	go func() { stopped <- hook.OnStop(context.Background()) }()

	select {
	case err := <-stopped:
		if err != nil {
			t.Fatalf("on stop failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("shutdown did not complete")
	}

	select {
	case <-shutdowner.Called:
		t.Fatal("clean shutdown must not trigger the shutdowner")
	default:
	}
}

func TestLifecycleRequestsShutdownOnServeError(t *testing.T) {
	server := &http.Server{Addr: "definitely not an address"}
	recorder, shutdowner := newLifecycle(server, time.Second)

	if err := recorder.Hooks[0].OnStart(context.Background()); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected a failed listener to request shutdown")
	}

	_ = recorder.Hooks[0].OnStop(context.Background())
}

func TestShutdownerStubSignals(t *testing.T) {
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	for i := 0; i < 3; i++ {
		if err := shutdowner.Shutdown(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	select {
	case <-shutdowner.Called:
	default:
		t.Fatal("expected shutdown notification")
	}
}
