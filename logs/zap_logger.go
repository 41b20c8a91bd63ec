/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-fold/commonerrors"
)

// Syncing a console (e.g. /dev/stderr) fails with this error on Linux: https://github.com/uber-go/zap/issues/328
const zapConsoleSyncError = "invalid argument"

// NewZapLogger returns a logger which uses zap logger (https://github.com/uber-go/zap).
// Closing the logger flushes any buffered entries.
func NewZapLogger(zapL *zap.Logger, loggerSource string) (Loggers, error) {
	if zapL == nil {
		return nil, commonerrors.New(commonerrors.ErrNoLogger, "missing zap logger")
	}
	return NewLogrLoggerWithClose(zapr.NewLogger(zapL), loggerSource, func() error { return syncZap(zapL) })
}

// NewZapConsoleLogger returns a zap logger writing human-readable entries of any level to w.
func NewZapConsoleLogger(w io.Writer, loggerSource string) (Loggers, error) {
	if w == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing writer")
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()), zapcore.AddSync(w), zapcore.DebugLevel)
	return NewZapLogger(zap.New(core), loggerSource)
}

func syncZap(zapL *zap.Logger) error {
	err := zapL.Sync()
	if err == nil || commonerrors.CorrespondTo(err, zapConsoleSyncError) {
		return nil
	}
	return commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not flush zap logger")
}
