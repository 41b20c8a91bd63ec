/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cli

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ARM-software/golang-fold/commonerrors"
	"github.com/ARM-software/golang-fold/logs"
)

const loggerSource = "fold"

func newLoggers(backend string, w io.Writer) (logs.Loggers, error) {
	switch backend {
	case LogBackendNone, "":
		return logs.NewNoopLogger(loggerSource)
	case LogBackendStd:
		return logs.NewWriterLogger(w, loggerSource)
	case LogBackendZap:
		return logs.NewZapConsoleLogger(w, loggerSource)
	case LogBackendLogrus:
		logger := logrus.New()
		logger.SetOutput(w)
		return logs.NewLogrusLogger(logger, loggerSource)
	default:
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "log backend %q is not supported", backend)
	}
}
