package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Replaced in main once the config is loaded.
var logger = zap.NewNop()

// newLogger builds a JSON logger suitable for CloudWatch Logs.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return l, nil
}

// requestLogger attaches the Lambda request id when running inside the runtime.
func requestLogger(ctx context.Context) *zap.Logger {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return logger.With(zap.String("request_id", lc.AwsRequestID))
	}
	return logger
}
