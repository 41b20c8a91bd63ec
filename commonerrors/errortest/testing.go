/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package errortest provides test assertions on error categories.
package errortest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-fold/commonerrors"
)

func errorMismatch(err error, expected any) string {
	return fmt.Sprintf("Failed error assertion:\n actual: %v\n expected: %+v", err, expected)
}

// AssertError asserts that err belongs to one of the `expectedErrors` categories (see commonerrors.Any).
func AssertError(t *testing.T, err error, expectedErrors ...error) bool {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return true
	}
	return assert.Fail(t, errorMismatch(err, expectedErrors))
}

// AssertErrorDescription asserts that the description of err contains one of `expectedErrorDescriptions` (see commonerrors.CorrespondTo).
func AssertErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) bool {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return true
	}
	return assert.Fail(t, errorMismatch(err, expectedErrorDescriptions))
}

// RequireError is like AssertError but stops the test on failure.
func RequireError(t *testing.T, err error, expectedErrors ...error) {
	t.Helper()
	if commonerrors.Any(err, expectedErrors...) {
		return
	}
	require.FailNow(t, errorMismatch(err, expectedErrors))
}

// RequireErrorDescription is like AssertErrorDescription but stops the test on failure.
func RequireErrorDescription(t *testing.T, err error, expectedErrorDescriptions ...string) {
	t.Helper()
	if commonerrors.CorrespondTo(err, expectedErrorDescriptions...) {
		return
	}
	require.FailNow(t, errorMismatch(err, expectedErrorDescriptions))
}
