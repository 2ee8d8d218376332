/*
 * Copyright © 2025 rclarkdev, All rights reserved.
 */

package logging

import "go.uber.org/zap"

// ZapLogger adapts a zap.Logger to the repository's Logger interface.
type ZapLogger struct {
	log *zap.Logger
}

// NewZap wraps an existing zap.Logger.
func NewZap(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log}
}

// NewProduction builds a ZapLogger over zap's production configuration.
func NewProduction() (*ZapLogger, error) {
	log, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{log: log}, nil
}

// Error records a failed operation along with its cause.
func (z *ZapLogger) Error(err error, msg string) {
	z.log.Error(msg, zap.Error(err))
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Error(error, string) {}

// Nop returns a logger that discards everything.
func Nop() NopLogger {
	return NopLogger{}
}
