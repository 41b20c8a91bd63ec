/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cli

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ARM-software/golang-fold/collection/sequence"
	"github.com/ARM-software/golang-fold/commonerrors"
)

// readElements reads one element per non-blank line of the input. Surrounding whitespace is discarded.
func readElements(fs afero.Fs, stdin io.Reader, input string) (elements sequence.ISequence[string], err error) {
	var reader io.Reader
	if strings.TrimSpace(input) == StdinInput {
		if stdin == nil {
			err = commonerrors.New(commonerrors.ErrUndefined, "no standard input to read from")
			return
		}
		reader = stdin
	} else {
		f, subErr := fs.Open(input)
		if subErr != nil {
			err = commonerrors.WrapErrorf(commonerrors.ErrNotFound, subErr, "could not open input %v", input)
			return
		}
		defer func() { _ = f.Close() }()
		reader = f
	}
	return scanElements(reader)
}

// scanElements decodes the input as UTF-8 unless a byte order mark states otherwise.
// Lines may be of any length.
func scanElements(reader io.Reader) (sequence.ISequence[string], error) {
	var lines []string
	buffered := bufio.NewReader(transform.NewReader(reader, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	for {
		line, err := buffered.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
		if commonerrors.Any(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, commonerrors.WrapError(commonerrors.ErrUnexpected, err, "could not read input")
		}
	}
	return sequence.NewSequenceFromSlice(lines), nil
}
