/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
// Package testutils provides helpers shared by tests of this module.
package testutils

import (
	"strings"

	"github.com/go-faker/faker/v4"
	"github.com/spf13/afero"
)

// CreateInputFile writes lines, one per line, into a new file of fs under dir and returns its path.
func CreateInputFile(fs afero.Fs, dir string, lines ...string) (path string, err error) {
	err = fs.MkdirAll(dir, 0o755)
	if err != nil {
		return
	}
	f, err := afero.TempFile(fs, dir, "input-*.txt")
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	path = f.Name()
	if len(lines) == 0 {
		return
	}
	_, err = f.WriteString(strings.Join(lines, "\n") + "\n")
	return
}

// RandomWords returns n random words.
func RandomWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = faker.Word()
	}
	return words
}
