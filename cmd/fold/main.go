/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
// Package main is the entry point for the fold command-line tool.
package main

import "github.com/ARM-software/golang-fold/internal/cli"

func main() {
	cli.Execute()
}
