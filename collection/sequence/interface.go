/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package sequence

import (
	"iter"

	"github.com/ARM-software/golang-fold/collection"
)

//go:generate mockgen -destination=../../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-fold/collection/$GOPACKAGE ISequence

// ISequence specifies the behaviour of an immutable ordered collection which can be folded.
// Implementations own a copy of their elements and are safe for concurrent reads.
type ISequence[T any] interface {
	// Len returns the number of elements in the sequence.
	Len() int
	// IsEmpty states whether the sequence contains no elements.
	IsEmpty() bool
	// Values returns an iterator over the elements in insertion order. The sequence is left unchanged.
	Values() iter.Seq[T]
	// All returns a copy of the elements.
	All() []T
	// Reduce folds the elements using f, starting with accumulator.
	Reduce(accumulator T, f collection.ReduceFunc[T, T]) T
	// Fold folds the elements using f, the first element acting as the initial accumulator.
	// It returns an error of type commonerrors.ErrEmpty if the sequence is empty.
	Fold(f collection.ReduceFunc[T, T]) (T, error)
}
