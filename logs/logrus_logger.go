/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"github.com/bombsimon/logrusr/v4"
	"github.com/sirupsen/logrus"

	"github.com/ARM-software/golang-fold/commonerrors"
)

// NewLogrusLogger returns a logger which uses logrus logger (https://github.com/Sirupsen/logrus)
func NewLogrusLogger(logrusL logrus.FieldLogger, loggerSource string) (loggers Loggers, err error) {
	if logrusL == nil {
		err = commonerrors.ErrNoLogger
		return
	}
	return NewLogrLogger(logrusr.New(logrusL), loggerSource)
}
