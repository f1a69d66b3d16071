package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL"`
	// Sink is a file path; empty means stdout.
	Sink string `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger returns a JSON logger writing to cfg.Sink. The returned func
// closes the sink and must be called once the logger is no longer used.
func NewLogger(cfg Log, name string) (*zap.Logger, func(), error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.TimeKey = "ts"

	sink := cfg.Sink
	if sink == "" {
		sink = "stdout"
	}
	ws, closeSink, err := zap.Open(sink)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log sink %q", sink)
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), ws, zap.NewAtomicLevelAt(cfg.LogLevel))

	return zap.New(core, zap.AddCaller()).Named(name), closeSink, nil
}
