package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/kardash/internal/config"
	"github.com/MKhiriev/kardash/internal/logger"
)

func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestNewServer_RequiresAddress(t *testing.T) {
	srv, err := NewServer(okHandler, config.Server{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, errNoHTTPAddress)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	srv, err := NewServer(okHandler, config.Server{HTTPAddress: "localhost:0", RequestTimeout: 3 * time.Second}, logger.Nop())
	require.NoError(t, err)

	hs := srv.(*server).httpServer
	assert.Equal(t, 3*time.Second, hs.server.ReadTimeout)
	assert.Equal(t, 3*time.Second, hs.server.WriteTimeout)
	assert.Equal(t, 3*time.Second, hs.shutdownTimeout)
}

func TestNewServer_DefaultShutdownTimeout(t *testing.T) {
	srv, err := NewServer(okHandler, config.Server{HTTPAddress: "localhost:0"}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, defaultShutdownTimeout, srv.(*server).httpServer.shutdownTimeout)
}

func TestRun_ServesUntilContextDone(t *testing.T) {
	addr := freeAddress(t)
	srv, err := NewServer(okHandler, config.Server{HTTPAddress: addr, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRun_ListenErrorIsReturned(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(okHandler, config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())

	assert.ErrorContains(t, err, "ListenAndServe")
}
