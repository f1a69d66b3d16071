package server

import (
	"context"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-records/library/config"
)

func TestServer_RunStop(t *testing.T) {
	t.Parallel()
	srv := NewServer(config.HTTPServer{Host: "127.0.0.1", Port: "0", ReadTimeout: time.Second}, echo.New())
	require.Equal(t, "127.0.0.1:0", srv.Addr())

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, <-done)
}
