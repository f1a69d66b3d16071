package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewConfig(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("KAFKA_ADDRS", "k1:9092,k2:9092")
	t.Setenv("LIBRARY_HTTP_PORT", "9000")

	cfg, err := NewConfig(
		WithLogLevel(zapcore.DebugLevel),
		WithWriteTimeout(time.Minute),
	)
	require.NoError(t, err)

	require.Equal(t, "sqlite3", cfg.Database.Driver)
	require.Equal(t, "library.db", cfg.Database.Path)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, time.Minute, cfg.Server.WriteTimeout)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Addrs)
	require.Equal(t, "library.events", cfg.Kafka.Topic)
	require.True(t, cfg.Kafka.Enabled())

	require.NotContains(t, cfg.String(), "secret")
}
