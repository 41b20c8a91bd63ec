/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/testr"
)

// NewTestLogger returns a logger writing to the test log.
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}

// NewNullTestLogger returns a logger to nothing.
func NewNullTestLogger() logr.Logger {
	return logr.Discard()
}
