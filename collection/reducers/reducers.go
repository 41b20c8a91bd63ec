/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reducers provides common reducers to use with the fold utilities of the collection package.
package reducers

import (
	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/exp/constraints"

	"github.com/ARM-software/golang-fold/collection"
)

// Number defines the element types arithmetic reducers work on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns a reducer adding elements to the accumulator.
func Sum[T Number]() collection.ReduceFunc[T, T] {
	return func(acc T, e T) T {
		return acc + e
	}
}

// Product returns a reducer multiplying the accumulator by elements.
func Product[T Number]() collection.ReduceFunc[T, T] {
	return func(acc T, e T) T {
		return acc * e
	}
}

// Min returns a reducer keeping the smallest value.
func Min[T constraints.Ordered]() collection.ReduceFunc[T, T] {
	return func(acc T, e T) T {
		return min(acc, e)
	}
}

// Max returns a reducer keeping the largest value.
func Max[T constraints.Ordered]() collection.ReduceFunc[T, T] {
	return func(acc T, e T) T {
		return max(acc, e)
	}
}

// Join returns a reducer concatenating strings with separator in between.
// Seeding it with an empty string will result in a leading separator.
func Join(separator string) collection.ReduceFunc[string, string] {
	return func(acc string, e string) string {
		return acc + separator + e
	}
}

// Count returns a reducer counting elements.
func Count[E any]() collection.ReduceFunc[E, int] {
	return func(acc int, _ E) int {
		return acc + 1
	}
}

// Distinct returns a reducer adding elements to a set.
// The accumulator must not be nil; e.g. seed it with mapset.NewThreadUnsafeSet[E]().
func Distinct[E comparable]() collection.ReduceFunc[E, mapset.Set[E]] {
	return func(acc mapset.Set[E], e E) mapset.Set[E] {
		acc.Add(e)
		return acc
	}
}

// Collect returns a reducer appending elements to a slice.
func Collect[E any]() collection.ReduceFunc[E, []E] {
	return func(acc []E, e E) []E {
		return append(acc, e)
	}
}
