/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"strings"
	"sync"

	"github.com/go-logr/logr/funcr"
)

type StringWriter struct {
	mu   sync.RWMutex
	logs strings.Builder
}

func (w *StringWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.logs.Write(p)
}

func (w *StringWriter) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.logs.Reset()
}

func (w *StringWriter) GetFullContent() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.logs.String()
}

// StringLoggers keeps all messages in memory. It is mostly useful for testing.
type StringLoggers struct {
	Loggers
	LogWriter *StringWriter
}

func (l *StringLoggers) GetLogContent() string {
	return l.LogWriter.GetFullContent()
}

// Close closes the logger and discards its content.
func (l *StringLoggers) Close() error {
	l.LogWriter.Reset()
	return l.Loggers.Close()
}

// NewStringLogger creates a logger storing entries in a string.
func NewStringLogger(loggerSource string) (loggers *StringLoggers, err error) {
	writer := &StringWriter{}
	logrL := funcr.New(func(prefix, args string) {
		if prefix != "" {
			_, _ = writer.Write([]byte(prefix + ": "))
		}
		_, _ = writer.Write([]byte(args + "\n"))
	}, funcr.Options{})
	l, err := NewLogrLogger(logrL, loggerSource)
	if err != nil {
		return
	}
	loggers = &StringLoggers{Loggers: l, LogWriter: writer}
	return
}
