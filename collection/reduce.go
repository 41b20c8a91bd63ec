/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package collection provides folding utilities working on slices or sequences.
package collection

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-fold/commonerrors"
)

//
// Reduce utilities
//

// ReduceFunc defines a reducer that combines an accumulator and an element to produce a new accumulator.
type ReduceFunc[T1, T2 any] func(T2, T1) T2

// Reduce folds over the slice s using f, starting with accumulator.
// Elements are visited in ascending-index order and f is called exactly len(s) times.
func Reduce[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReduceSequence(slices.Values(s), accumulator, f)
}

// ReduceSequence folds over a sequence using f, starting with accumulator.
// A nil sequence is considered empty and accumulator is returned unchanged.
func ReduceSequence[T1, T2 any](s iter.Seq[T1], accumulator T2, f ReduceFunc[T1, T2]) T2 {
	result, _ := fold(s, accumulator, true, nil, f)
	return result
}

// ReduceRight is similar to Reduce but visits elements from the last to the first.
func ReduceRight[T1, T2 any](s []T1, accumulator T2, f ReduceFunc[T1, T2]) T2 {
	return ReduceSequence(backward(s), accumulator, f)
}

// Fold folds over the slice s using f, the first element acting as the initial accumulator.
// f is called len(s)-1 times. An error of type commonerrors.ErrEmpty is returned if s is empty.
func Fold[T any](s []T, f ReduceFunc[T, T]) (T, error) {
	return FoldSequence(slices.Values(s), f)
}

// FoldSequence is similar to Fold but works on a sequence.
func FoldSequence[T any](s iter.Seq[T], f ReduceFunc[T, T]) (result T, err error) {
	var zero T
	result, consumed := fold(s, zero, false, identity[T], f)
	if !consumed {
		err = commonerrors.New(commonerrors.ErrEmpty, "cannot fold an empty sequence without an initial value")
	}
	return
}

// FoldRight is similar to Fold but the last element acts as the initial accumulator and elements are visited backwards.
func FoldRight[T any](s []T, f ReduceFunc[T, T]) (T, error) {
	return FoldSequence(backward(s), f)
}

// fold is the loop shared by all reductions. When seeded is false, the first
// element is turned into the initial accumulator by start and f is not called
// on it. consumed states whether at least one element was visited.
func fold[T1, T2 any](s iter.Seq[T1], accumulator T2, seeded bool, start func(T1) T2, f ReduceFunc[T1, T2]) (result T2, consumed bool) {
	result = accumulator
	if s == nil {
		return
	}
	for e := range s {
		if !seeded && !consumed {
			result = start(e)
			consumed = true
			continue
		}
		consumed = true
		result = f(result, e)
	}
	return
}

func identity[T any](e T) T {
	return e
}

func backward[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range slices.Backward(s) {
			if !yield(v) {
				return
			}
		}
	}
}
