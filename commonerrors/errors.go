/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines error categories shared by the packages of this module.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// TypeReasonErrorSeparator separates the error category from its reason in error descriptions.
	TypeReasonErrorSeparator = ':'
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCondition      = errors.New("failed condition")
	ErrEmpty          = errors.New("empty")
	ErrUnexpected     = errors.New("unexpected")
	ErrEOF            = errors.New("end of file")
)

var categories = []error{
	ErrNotImplemented,
	ErrNoLogger,
	ErrNoLoggerSource,
	ErrNoLogSource,
	ErrUndefined,
	ErrNotFound,
	ErrUnsupported,
	ErrUnknown,
	ErrInvalid,
	ErrMarshalling,
	ErrCondition,
	ErrEmpty,
	ErrUnexpected,
	ErrEOF,
}

// Any returns true if target matches any of the errors err.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None returns true if target matches none of the errors err.
func None(target error, err ...error) bool {
	return !Any(target, err...)
}

// Ignore returns nil if target matches any of the ignored errors; otherwise target is returned as is.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// IsEmpty states whether an error is nil or carries no description.
func IsEmpty(err any) bool {
	if err == nil {
		return true
	}
	switch e := err.(type) {
	case error:
		if s, ok := e.(interface{ IsEmpty() bool }); ok {
			return s.IsEmpty()
		}
		return strings.TrimSpace(e.Error()) == ""
	case string:
		return strings.TrimSpace(e) == ""
	default:
		return false
	}
}

// CorrespondTo states whether the description of err contains any of the descriptions provided (case insensitive).
func CorrespondTo(err error, desc ...string) bool {
	if err == nil {
		return false
	}
	errDesc := strings.ToLower(err.Error())
	for i := range desc {
		if strings.Contains(errDesc, strings.ToLower(strings.TrimSpace(desc[i]))) {
			return true
		}
	}
	return false
}

// Join is equivalent to errors.Join but discards nil or empty errors.
func Join(errs ...error) error {
	nonEmpty := make([]error, 0, len(errs))
	for i := range errs {
		if !IsEmpty(errs[i]) {
			nonEmpty = append(nonEmpty, errs[i])
		}
	}
	return errors.Join(nonEmpty...)
}

// New creates an error of category targetErr with a reason.
func New(targetErr error, reason string) error {
	reason = strings.TrimSpace(reason)
	if targetErr == nil {
		if reason == "" {
			return nil
		}
		return errors.New(reason)
	}
	if reason == "" {
		return targetErr
	}
	return fmt.Errorf("%w%v %v", targetErr, string(TypeReasonErrorSeparator), reason)
}

// Newf is similar to New but formats the reason.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an underlying error cause into a targetErr category with a reason.
func WrapError(targetErr, cause error, reason string) error {
	if cause == nil {
		return New(targetErr, reason)
	}
	if targetErr == nil {
		targetErr = ErrUnknown
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w%v %w", targetErr, string(TypeReasonErrorSeparator), cause)
	}
	return fmt.Errorf("%w%v %v%v %w", targetErr, string(TypeReasonErrorSeparator), reason, string(TypeReasonErrorSeparator), cause)
}

// WrapErrorf is similar to WrapError but formats the reason.
func WrapErrorf(targetErr, cause error, format string, args ...any) error {
	return WrapError(targetErr, cause, fmt.Sprintf(format, args...))
}

// GetCommonErrorReason returns the reason attached to an error created with New or Newf.
// An error is returned if err does not belong to any known category.
func GetCommonErrorReason(err error) (reason string, subErr error) {
	category := deserialiseCommonError(err)
	if category == nil {
		subErr = New(ErrUnknown, "error does not belong to a known category")
		return
	}
	reason = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(err.Error(), category.Error()), string(TypeReasonErrorSeparator)))
	return
}

func deserialiseCommonError(err error) error {
	if err == nil {
		return nil
	}
	for i := range categories {
		if errors.Is(err, categories[i]) && strings.HasPrefix(err.Error(), categories[i].Error()) {
			return categories[i]
		}
	}
	return nil
}
