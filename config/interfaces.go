/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package config

//go:generate mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-fold/$GOPACKAGE IServiceConfiguration

// IServiceConfiguration defines a configuration structure which can be loaded by this package.
type IServiceConfiguration interface {
	// Validate validates configuration entries.
	Validate() error
}
