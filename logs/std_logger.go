/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"
	"log"
	"os"

	"github.com/go-logr/stdr"
)

// NewStdLogger creates a logger to standard error.
func NewStdLogger(loggerSource string) (Loggers, error) {
	return NewWriterLogger(os.Stderr, loggerSource)
}

// NewWriterLogger creates a logger writing to w using the standard library logger (https://github.com/go-logr/stdr).
func NewWriterLogger(w io.Writer, loggerSource string) (Loggers, error) {
	return NewLogrLogger(stdr.New(log.New(w, "", log.LstdFlags)), loggerSource)
}
