/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-fold/commonerrors"
	"github.com/ARM-software/golang-fold/commonerrors/errortest"
	"github.com/ARM-software/golang-fold/logs/logstest"
)

func testLog(t *testing.T, loggers Loggers) {
	t.Helper()
	err := loggers.Check()
	require.NoError(t, err)
	defer func() { _ = loggers.Close() }()

	err = loggers.SetLogSource("source1")
	require.NoError(t, err)
	err = loggers.SetLoggerSource("LoggerSource1")
	require.NoError(t, err)

	loggers.Log("Test output1")
	loggers.Log("Test output2")
	loggers.Log("\n")
	loggers.LogError("\n")
	err = loggers.SetLogSource("source2")
	require.NoError(t, err)

	loggers.Log("folding", 3, "elements")
	loggers.LogError("Test err1")
	err = loggers.SetLoggerSource("LoggerSource2")
	require.NoError(t, err)

	loggers.LogError(commonerrors.ErrEmpty)
	loggers.LogError(nil)
	loggers.LogError(commonerrors.ErrUnexpected, "some error")
	loggers.LogError("some error", commonerrors.ErrUnexpected)
	loggers.LogError(nil, "no error")

	errortest.AssertError(t, loggers.SetLogSource(" "), commonerrors.ErrNoLogSource)
	errortest.AssertError(t, loggers.SetLoggerSource(""), commonerrors.ErrNoLoggerSource)
	err = loggers.Close()
	require.NoError(t, err)
}

func TestLogrLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewLogrLogger(logstest.NewTestLogger(t), "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestLogrLogger_Undefined(t *testing.T) {
	loggers, err := NewLogrLogger(logr.Logger{}, "Test")
	require.NoError(t, err)
	errortest.AssertError(t, loggers.Check(), commonerrors.ErrNoLogger)

	_, err = NewLogrLogger(logstest.NewNullTestLogger(), "")
	errortest.AssertError(t, err, commonerrors.ErrNoLoggerSource)
}

func TestZapLoggerDev(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	loggers, err := NewZapLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestZapLoggerProd(t *testing.T) {
	defer goleak.VerifyNone(t)
	logger, err := zap.NewProduction()
	require.NoError(t, err)
	loggers, err := NewZapLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)

	_, err = NewZapLogger(nil, "Test")
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
}

func TestZapConsoleLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	buf := bytes.NewBuffer(nil)
	loggers, err := NewZapConsoleLogger(buf, "Test")
	require.NoError(t, err)
	testLog(t, loggers)
	assert.Contains(t, buf.String(), "Test output1")
	assert.Contains(t, buf.String(), "LoggerSource2")

	_, err = NewZapConsoleLogger(nil, "Test")
	errortest.AssertError(t, err, commonerrors.ErrUndefined)
}

func TestLogrusLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	buf := bytes.NewBuffer(nil)
	logger := logrus.New()
	logger.SetOutput(buf)
	loggers, err := NewLogrusLogger(logger, "Test")
	require.NoError(t, err)
	testLog(t, loggers)
	assert.Contains(t, buf.String(), "Test output1")

	_, err = NewLogrusLogger(nil, "Test")
	errortest.AssertError(t, err, commonerrors.ErrNoLogger)
}

func TestStdLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewStdLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)

	buf := bytes.NewBuffer(nil)
	loggers, err = NewWriterLogger(buf, "Test")
	require.NoError(t, err)
	message := faker.Sentence()
	loggers.Log(message)
	assert.Contains(t, buf.String(), message)
}

func TestNoopLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggers, err := NewNoopLogger("Test")
	require.NoError(t, err)
	testLog(t, loggers)
}

func TestStringLogger(t *testing.T) {
	defer goleak.VerifyNone(t)
	loggerSource := "src-" + faker.Word()
	loggers, err := NewStringLogger(loggerSource)
	require.NoError(t, err)
	testLog(t, loggers)

	loggers, err = NewStringLogger(loggerSource)
	require.NoError(t, err)
	message := faker.Sentence()
	loggers.Log(message)
	loggers.LogError(commonerrors.ErrEmpty, "nothing to fold")
	content := loggers.GetLogContent()
	assert.Contains(t, content, message)
	assert.Contains(t, content, loggerSource)
	assert.Contains(t, content, "nothing to fold")
	assert.Contains(t, content, commonerrors.ErrEmpty.Error())
	require.NoError(t, loggers.Close())
	assert.Empty(t, loggers.GetLogContent())
}

func TestSourcesAreReplaced(t *testing.T) {
	loggers, err := NewStringLogger("first-source")
	require.NoError(t, err)
	require.NoError(t, loggers.SetLoggerSource("second-source"))
	require.NoError(t, loggers.SetLogSource("input-a"))
	require.NoError(t, loggers.SetLogSource("input-b"))
	loggers.Log(faker.Sentence())
	content := loggers.GetLogContent()
	assert.NotContains(t, content, "first-source")
	assert.NotContains(t, content, "input-a")
	assert.Equal(t, 1, strings.Count(content, "input-b"))
}
