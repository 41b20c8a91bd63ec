/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "github.com/go-logr/logr/funcr"

// NewNoopLogger returns loggers discarding everything.
func NewNoopLogger(loggerSource string) (Loggers, error) {
	return NewLogrLogger(funcr.New(func(_, _ string) {}, funcr.Options{}), loggerSource)
}
