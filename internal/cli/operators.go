/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cli

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/spf13/cast"

	"github.com/ARM-software/golang-fold/collection"
	"github.com/ARM-software/golang-fold/collection/reducers"
	"github.com/ARM-software/golang-fold/collection/sequence"
	"github.com/ARM-software/golang-fold/commonerrors"
)

// operation folds the input elements and returns the lines to output.
type operation func(elements sequence.ISequence[string], cfg *Configuration) ([]string, error)

var operations = map[string]operation{
	OperatorSum:      numeric(reducers.Sum[float64]()),
	OperatorProduct:  numeric(reducers.Product[float64]()),
	OperatorMin:      numeric(reducers.Min[float64]()),
	OperatorMax:      numeric(reducers.Max[float64]()),
	OperatorJoin:     join,
	OperatorCount:    count,
	OperatorDistinct: distinct,
}

// Operators returns the names of the supported operators.
func Operators() []string {
	return slices.Sorted(maps.Keys(operations))
}

func toAny[T any](s []T) []any {
	return collection.Reduce(s, make([]any, 0, len(s)), func(acc []any, e T) []any {
		return append(acc, e)
	})
}

func getOperation(name string) (operation, error) {
	op, found := operations[strings.TrimSpace(name)]
	if !found {
		return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "operator %q is not supported (supported operators: %v)", name, strings.Join(Operators(), ", "))
	}
	return op, nil
}

func numeric(f collection.ReduceFunc[float64, float64]) operation {
	return func(elements sequence.ISequence[string], cfg *Configuration) (result []string, err error) {
		numbers, err := parseNumbers(elements)
		if err != nil {
			return
		}
		var value float64
		if cfg.HasSeed() {
			var seed float64
			seed, err = parseNumber(cfg.SeedValue())
			if err != nil {
				err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid seed")
				return
			}
			value = numbers.Reduce(seed, f)
		} else {
			value, err = numbers.Fold(f)
			if err != nil {
				return
			}
		}
		result = []string{formatNumber(value)}
		return
	}
}

func join(elements sequence.ISequence[string], cfg *Configuration) (result []string, err error) {
	f := reducers.Join(cfg.Separator)
	var value string
	if cfg.HasSeed() {
		value = elements.Reduce(cfg.SeedValue(), f)
	} else {
		value, err = elements.Fold(f)
		if err != nil {
			return
		}
	}
	result = []string{value}
	return
}

func count(elements sequence.ISequence[string], cfg *Configuration) (result []string, err error) {
	seed := 0
	if cfg.HasSeed() {
		seed, err = cast.ToIntE(cfg.SeedValue())
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid seed")
			return
		}
	}
	result = []string{strconv.Itoa(sequence.Reduce(elements, seed, reducers.Count[string]()))}
	return
}

func distinct(elements sequence.ISequence[string], cfg *Configuration) (result []string, err error) {
	initial := mapset.NewThreadUnsafeSet[string]()
	if cfg.HasSeed() {
		initial.Add(cfg.SeedValue())
	}
	set := sequence.Reduce(elements, initial, reducers.Distinct[string]())
	result = set.ToSlice()
	slices.Sort(result)
	return
}

func parseNumber(value string) (float64, error) {
	return cast.ToFloat64E(strings.TrimSpace(value))
}

func parseNumbers(elements sequence.ISequence[string]) (sequence.ISequence[float64], error) {
	numbers := make([]float64, 0, elements.Len())
	i := 0
	for e := range elements.Values() {
		n, err := parseNumber(e)
		if err != nil {
			return nil, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "element %v (%q) is not a number", i, e)
		}
		numbers = append(numbers, n)
		i++
	}
	return sequence.NewSequenceFromSlice(numbers), nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
