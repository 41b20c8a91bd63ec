/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-fold/commonerrors"
)

const (
	KeyLogSource    = "source"
	KeyLoggerSource = "logger-source"
)

type logrLogger struct {
	mu           sync.RWMutex
	base         logr.Logger
	logger       logr.Logger
	loggerSource string
	logSource    string
	closeFunc    func() error
}

func (l *logrLogger) Close() error {
	if l.closeFunc == nil {
		return nil
	}
	return l.closeFunc()
}

func (l *logrLogger) Check() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.logger.GetSink() == nil {
		return commonerrors.ErrNoLogger
	}
	return nil
}

func (l *logrLogger) SetLogSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLogSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logSource = source
	l.refresh()
	return nil
}

func (l *logrLogger) SetLoggerSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return commonerrors.ErrNoLoggerSource
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loggerSource = source
	l.refresh()
	return nil
}

// refresh rebuilds the logger from the base so that sources are replaced rather than accumulated.
func (l *logrLogger) refresh() {
	logger := l.base
	if l.loggerSource != "" {
		logger = logger.WithName(l.loggerSource).WithValues(KeyLoggerSource, l.loggerSource)
	}
	if l.logSource != "" {
		logger = logger.WithValues(KeyLogSource, l.logSource)
	}
	l.logger = logger
}

func (l *logrLogger) current() logr.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.logger
}

func (l *logrLogger) Log(output ...any) {
	l.current().Info(strings.TrimSuffix(fmt.Sprintln(output...), "\n"))
}

func (l *logrLogger) LogError(err ...any) {
	var cause error
	var rest []any
	for i := range err {
		if e, ok := err[i].(error); ok && cause == nil {
			cause = e
			continue
		}
		rest = append(rest, err[i])
	}
	l.current().Error(cause, strings.TrimSuffix(fmt.Sprintln(rest...), "\n"))
}

// NewLogrLogger creates loggers based on a logr implementation (https://github.com/go-logr/logr)
func NewLogrLogger(logrImpl logr.Logger, loggerSource string) (Loggers, error) {
	return NewLogrLoggerWithClose(logrImpl, loggerSource, nil)
}

// NewLogrLoggerWithClose is similar to NewLogrLogger but runs closeFunc when the loggers are closed.
func NewLogrLoggerWithClose(logrImpl logr.Logger, loggerSource string, closeFunc func() error) (loggers Loggers, err error) {
	l := &logrLogger{base: logrImpl, logger: logrImpl, closeFunc: closeFunc}
	err = l.SetLoggerSource(loggerSource)
	loggers = l
	return
}
