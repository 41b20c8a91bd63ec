/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-fold/commonerrors"
	"github.com/ARM-software/golang-fold/commonerrors/errortest"
)

func sum(a, b int) int {
	return a + b
}

func concat(a, b string) string {
	return a + "," + b
}

func countingReducer[T1, T2 any](counter *atomic.Int64, f ReduceFunc[T1, T2]) ReduceFunc[T1, T2] {
	return func(acc T2, e T1) T2 {
		counter.Inc()
		return f(acc, e)
	}
}

func TestReduce(t *testing.T) {
	assert.Equal(t, 6, Reduce([]int{1, 2, 3}, 0, sum))
	assert.Equal(t, 16, Reduce([]int{1, 2, 3}, 10, sum))
	assert.Equal(t, 6, ReduceSequence(slices.Values([]int{1, 2, 3}), 0, sum))
	assert.Equal(t, "start,a,b,c", Reduce([]string{"a", "b", "c"}, "start", concat))
	assert.Equal(t, 5, Reduce([]string{"a", "bb", "cc"}, 0, func(acc int, e string) int { return acc + len(e) }))
}

func TestReduce_EmptyReturnsAccumulator(t *testing.T) {
	initial := faker.Sentence()
	counter := atomic.NewInt64(0)
	f := countingReducer[string, string](counter, concat)
	assert.Equal(t, initial, Reduce([]string{}, initial, f))
	assert.Equal(t, initial, Reduce[string, string](nil, initial, f))
	assert.Equal(t, initial, ReduceSequence(slices.Values([]string{}), initial, f))
	assert.Equal(t, initial, ReduceSequence[string, string](nil, initial, f))
	assert.Equal(t, initial, ReduceRight([]string{}, initial, f))
	assert.Zero(t, counter.Load())
}

func TestFold(t *testing.T) {
	result, err := Fold([]int{1, 2, 3}, sum)
	require.NoError(t, err)
	assert.Equal(t, 6, result)

	result, err = FoldSequence(slices.Values([]int{1, 2, 3}), sum)
	require.NoError(t, err)
	assert.Equal(t, 6, result)

	str, err := Fold([]string{"a", "b", "c"}, concat)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", str)
}

func TestFold_SingleElement(t *testing.T) {
	element := faker.Word()
	counter := atomic.NewInt64(0)
	f := countingReducer[string, string](counter, func(_, _ string) string {
		return faker.Sentence()
	})
	result, err := Fold([]string{element}, f)
	require.NoError(t, err)
	assert.Equal(t, element, result)
	result, err = FoldRight([]string{element}, f)
	require.NoError(t, err)
	assert.Equal(t, element, result)
	assert.Zero(t, counter.Load())
}

func TestFold_Empty(t *testing.T) {
	counter := atomic.NewInt64(0)
	f := countingReducer[int, int](counter, sum)

	tests := []struct {
		name string
		fold func() (int, error)
	}{
		{
			name: "empty slice",
			fold: func() (int, error) { return Fold([]int{}, f) },
		},
		{
			name: "nil slice",
			fold: func() (int, error) { return Fold(nil, f) },
		},
		{
			name: "empty sequence",
			fold: func() (int, error) { return FoldSequence(slices.Values([]int{}), f) },
		},
		{
			name: "nil sequence",
			fold: func() (int, error) { return FoldSequence[int](nil, f) },
		},
		{
			name: "empty slice folded right",
			fold: func() (int, error) { return FoldRight([]int{}, f) },
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			result, err := test.fold()
			require.Error(t, err)
			errortest.AssertError(t, err, commonerrors.ErrEmpty)
			assert.Zero(t, result)
		})
	}
	assert.Zero(t, counter.Load())
}

func TestFold_EmptyIsDistinguishableFromZeroResult(t *testing.T) {
	result, err := Fold([]int{0}, sum)
	require.NoError(t, err)
	assert.Zero(t, result)

	result, err = Fold([]int{}, sum)
	errortest.RequireError(t, err, commonerrors.ErrEmpty)
	assert.Zero(t, result)
}

func TestInvocationCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5, 17, 100} {
		t.Run(fmt.Sprintf("%v elements", n), func(t *testing.T) {
			elements := make([]int, n)
			for i := range elements {
				elements[i] = i
			}
			seededCounter := atomic.NewInt64(0)
			_ = Reduce(elements, 0, countingReducer[int, int](seededCounter, sum))
			assert.Equal(t, int64(n), seededCounter.Load())

			seededCounter.Store(0)
			_ = ReduceRight(elements, 0, countingReducer[int, int](seededCounter, sum))
			assert.Equal(t, int64(n), seededCounter.Load())

			if n == 0 {
				return
			}
			unseededCounter := atomic.NewInt64(0)
			_, err := Fold(elements, countingReducer[int, int](unseededCounter, sum))
			require.NoError(t, err)
			assert.Equal(t, int64(n-1), unseededCounter.Load())

			unseededCounter.Store(0)
			_, err = FoldRight(elements, countingReducer[int, int](unseededCounter, sum))
			require.NoError(t, err)
			assert.Equal(t, int64(n-1), unseededCounter.Load())
		})
	}
}

func TestOrder(t *testing.T) {
	result, err := Fold([]string{"a", "b", "c"}, concat)
	require.NoError(t, err)
	assert.Equal(t, "a,b,c", result)

	result, err = FoldRight([]string{"a", "b", "c"}, concat)
	require.NoError(t, err)
	assert.Equal(t, "c,b,a", result)

	assert.Equal(t, ">,c,b,a", ReduceRight([]string{"a", "b", "c"}, ">", concat))

	var visited []int
	_ = Reduce([]int{4, 2, 9, 1}, struct{}{}, func(acc struct{}, e int) struct{} {
		visited = append(visited, e)
		return acc
	})
	assert.Equal(t, []int{4, 2, 9, 1}, visited)
}

func TestFold_DoesNotModifyInput(t *testing.T) {
	elements := []string{faker.Word(), faker.Word(), faker.Word()}
	expected := slices.Clone(elements)
	result, err := Fold(elements, func(a, b string) string { return strings.ToUpper(a + b) })
	require.NoError(t, err)
	assert.Equal(t, strings.ToUpper(strings.Join(expected, "")), result)
	assert.Equal(t, expected, elements)
}

func TestFoldSequence_StopsAfterSingleTraversal(t *testing.T) {
	pulls := atomic.NewInt64(0)
	var s iter.Seq[int] = func(yield func(int) bool) {
		for i := 1; i <= 4; i++ {
			pulls.Inc()
			if !yield(i) {
				return
			}
		}
	}
	result, err := FoldSequence(s, sum)
	require.NoError(t, err)
	assert.Equal(t, 10, result)
	assert.Equal(t, int64(4), pulls.Load())
}

func TestReducerPanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "reducer failure", func() {
		_, _ = Fold([]int{1, 2}, func(_, _ int) int { panic("reducer failure") })
	})
	assert.PanicsWithValue(t, "reducer failure", func() {
		_ = Reduce([]int{1}, 0, func(_, _ int) int { panic("reducer failure") })
	})
}
