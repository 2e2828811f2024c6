// Package hzlog builds the process-wide slog logger on top of a zap
// backend and carries log attributes through contexts.
package hzlog

import (
	"log/slog"

	"github.com/go-slog/otelslog"
	"github.com/pkg/errors"
	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func MustBuild(c Config) *slog.Logger {
	logger, err := Build(c)
	if err != nil {
		panic("cannot build logger: " + err.Error())
	}

	return logger
}

func Build(c Config) (*slog.Logger, error) {
	zapC := zap.NewProductionConfig()

	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse level")
	}
	zapC.Level.SetLevel(lvl)

	zapC.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	zapC.OutputPaths = []string{"stdout"}

	if c.Mode == "" {
		c.Mode = "json"
	}

	switch c.Mode {
	case "console":
		zapC.Encoding = "console"
	case "json":
		zapC.Encoding = "json"
	default:
		return nil, errors.Errorf("unknown logging mode %q, allowed options are only [console, json]", c.Mode)
	}

	zapLogger := zap.Must(zapC.Build())

	base := slogzap.Option{Level: zapLevelToSlogLevel(lvl), Logger: zapLogger}.NewZapHandler()

	// context attrs first, then trace ids from the active span
	l := slog.New(otelslog.NewHandler(newCtxHandler(base)))
	slog.SetDefault(l)

	return l, nil
}

func zapLevelToSlogLevel(lvl zapcore.Level) slog.Level {
	for slogLvl, zapLvl := range slogzap.LogLevels {
		if zapLvl == lvl {
			return slogLvl
		}
	}

	// levels out of slog's range (fatal, dpanic) degrade to error
	return slog.LevelError
}
