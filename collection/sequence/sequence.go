/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package sequence defines an immutable ordered collection exposing fold operations.
package sequence

import (
	"iter"
	"slices"

	"github.com/ARM-software/golang-fold/collection"
)

// NewSequence returns a sequence holding a copy of elements.
func NewSequence[T any](elements ...T) ISequence[T] {
	return NewSequenceFromSlice(elements)
}

// NewSequenceFromSlice returns a sequence holding a copy of s.
func NewSequenceFromSlice[T any](s []T) ISequence[T] {
	elements := slices.Clone(s)
	return &Sequence[T]{elements: elements, length: len(elements)}
}

// NewSequenceFromIterator returns a sequence holding all the values yielded by it.
func NewSequenceFromIterator[T any](it iter.Seq[T]) ISequence[T] {
	if it == nil {
		return NewSequence[T]()
	}
	return NewSequenceFromSlice(slices.Collect(it))
}

type Sequence[T any] struct {
	elements []T
	length   int
}

func (s *Sequence[T]) Len() int {
	return s.length
}

func (s *Sequence[T]) IsEmpty() bool {
	return s.length == 0
}

func (s *Sequence[T]) Values() iter.Seq[T] {
	return slices.Values(s.elements)
}

func (s *Sequence[T]) All() []T {
	return slices.Clone(s.elements)
}

func (s *Sequence[T]) Reduce(accumulator T, f collection.ReduceFunc[T, T]) T {
	return collection.Reduce(s.elements, accumulator, f)
}

func (s *Sequence[T]) Fold(f collection.ReduceFunc[T, T]) (T, error) {
	return collection.Fold(s.elements, f)
}

// Reduce folds the elements of s using f, starting with accumulator.
// Unlike ISequence.Reduce, the accumulator may be of a different type than the elements.
// A nil sequence is considered empty.
func Reduce[E, A any](s ISequence[E], accumulator A, f collection.ReduceFunc[E, A]) A {
	if s == nil {
		return accumulator
	}
	return collection.ReduceSequence(s.Values(), accumulator, f)
}

// Fold is equivalent to s.Fold(f) but also accepts a nil sequence, which is considered empty.
func Fold[E any](s ISequence[E], f collection.ReduceFunc[E, E]) (E, error) {
	if s == nil {
		return collection.FoldSequence[E](nil, f)
	}
	return s.Fold(f)
}
