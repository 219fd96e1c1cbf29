// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Srejith/namemybaby/internal/config"
	"github.com/Srejith/namemybaby/internal/handler"
	myGRPC "github.com/Srejith/namemybaby/internal/handler/grpc"
	"github.com/Srejith/namemybaby/internal/logger"
	"github.com/Srejith/namemybaby/internal/service"
)

type recordingServer struct {
	name  string
	calls *[]string
}

func (r *recordingServer) RunServer() {}
func (r *recordingServer) Shutdown()  { *r.calls = append(*r.calls, r.name) }

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "test" }
func (stubAppInfo) Health(context.Context) error         { return nil }

// ─────────────────────────────────────────────
// NewServer
// ─────────────────────────────────────────────

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_GRPCListenError(t *testing.T) {
	h := myGRPC.NewHandler(&service.Services{AppInfoService: stubAppInfo{}}, logger.Nop())

	_, err := NewServer(&handler.Handlers{GRPC: h}, config.Server{GRPCAddress: "bad address"}, logger.Nop())

	assert.Error(t, err)
}

func TestNewServer_GRPCOnEphemeralPort(t *testing.T) {
	h := myGRPC.NewHandler(&service.Services{AppInfoService: stubAppInfo{}}, logger.Nop())

	s, err := NewServer(&handler.Handlers{GRPC: h}, config.Server{GRPCAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	require.Nil(t, srv.httpServer)
	require.NotNil(t, srv.gRPCServer)

	done := make(chan struct{})
	go func() {
		srv.gRPCServer.RunServer()
		close(done)
	}()

	require.Eventually(t, func() bool {
		status, _ := h.Check(context.Background(), "")
		return status == healthpb.HealthCheckResponse_SERVING
	}, 2*time.Second, 10*time.Millisecond)

	s.Shutdown()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}

// ─────────────────────────────────────────────
// Shutdown ordering
// ─────────────────────────────────────────────

func TestServer_ShutdownStopsTransportsBeforeCleanups(t *testing.T) {
	var calls []string
	s := &server{
		httpServer: &recordingServer{name: "http", calls: &calls},
		gRPCServer: &recordingServer{name: "grpc", calls: &calls},
		cleanups: []func(){
			func() { calls = append(calls, "workers") },
			func() { calls = append(calls, "storage") },
		},
		logger: logger.Nop(),
	}

	s.Shutdown()

	assert.Equal(t, []string{"http", "grpc", "workers", "storage"}, calls)
}

func TestServer_RunWithoutServers(t *testing.T) {
	s := &server{logger: logger.Nop()}

	assert.ErrorIs(t, s.run(), errNoServersToRun)
}

// ─────────────────────────────────────────────
// HTTP server
// ─────────────────────────────────────────────

func TestNewHTTPServer_AppliesRequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})

	s := newHTTPServer(slow, config.Server{HTTPAddress: ":0", RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	rr := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.JSONEq(t, timeoutMessage, string(body))
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
}

func TestNewHTTPServer_NoTimeoutKeepsRouter(t *testing.T) {
	router := http.NewServeMux()

	s := newHTTPServer(router, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	assert.Same(t, router, s.server.Handler)
	assert.Equal(t, ":8080", s.server.Addr)
}
