// Copyright (c) 2023 - 2026 The dfu-go Authors.
// All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package result_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/lifecycle"
	"github.com/dfu-go/dfu/result"
)

func TestSuccessInvariants(t *testing.T) {
	r := result.Success(42)
	assert.True(t, r.IsSuccess())
	assert.True(t, r.HasResultOrPartial())
	assert.Equal(t, "", r.Message())
	assert.Equal(t, 42, r.Unwrap())
}

func TestErrorInvariants(t *testing.T) {
	r := result.Error[int]("boom")
	assert.False(t, r.IsSuccess())
	assert.False(t, r.HasResultOrPartial())
	assert.Equal(t, "boom", r.Message())

	withPartial := result.ErrorWithPartial(7, "boom")
	assert.False(t, withPartial.IsSuccess())
	assert.True(t, withPartial.HasResultOrPartial())
	v, ok := withPartial.PartialResult()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestMapPreservesShape(t *testing.T) {
	success := result.Map(result.Success(21), func(n int) int { return n * 2 })
	assert.Equal(t, 42, success.Unwrap())

	partial := result.Map(result.ErrorWithPartial(21, "oops"), func(n int) int { return n * 2 })
	v, ok := partial.PartialResult()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "oops", partial.Message())

	failed := result.Map(result.Error[int]("nope"), func(n int) int { return n * 2 })
	assert.False(t, failed.HasResultOrPartial())
}

func TestFlatMapChainsOnSuccess(t *testing.T) {
	r := result.FlatMap(result.Success(4), func(n int) result.Result[int] {
		return result.Success(n + 1)
	})
	assert.True(t, r.IsSuccess())
	assert.Equal(t, 5, r.Unwrap())
}

func TestFlatMapPropagatesErrorWithoutPartial(t *testing.T) {
	called := false
	r := result.FlatMap(result.Error[int]("bad"), func(n int) result.Result[int] {
		called = true
		return result.Success(n + 1)
	})
	assert.False(t, called)
	assert.False(t, r.HasResultOrPartial())
	assert.Equal(t, "bad", r.Message())
}

func TestFlatMapRunsOnPartialAndMergesMessages(t *testing.T) {
	r := result.FlatMap(result.ErrorWithPartial(4, "first"), func(n int) result.Result[int] {
		return result.ErrorWithPartial(n+1, "second")
	})
	assert.False(t, r.IsSuccess())
	v, ok := r.PartialResult()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "first; second", r.Message())
}

func TestPromotePartial(t *testing.T) {
	var seen string
	promoted := result.PromotePartial(result.ErrorWithPartial(3, "field b missing"), func(msg string) { seen = msg })
	assert.True(t, promoted.IsSuccess())
	assert.Equal(t, 3, promoted.Unwrap())
	assert.Equal(t, "field b missing", seen)

	untouched := result.PromotePartial(result.Error[int]("no value at all"), func(string) {})
	assert.False(t, untouched.HasResultOrPartial())

	success := result.Success(9)
	assert.Equal(t, success, result.PromotePartial(success, func(string) {}))
}

func TestApply2AllSuccess(t *testing.T) {
	r := result.Apply2(func(a, b int) int { return a + b }, result.Success(2), result.Success(3))
	assert.True(t, r.IsSuccess())
	assert.Equal(t, 5, r.Unwrap())
}

func TestApply2ErrorWithoutPartialShortCircuits(t *testing.T) {
	r := result.Apply2(func(a, b int) int { return a + b }, result.Error[int]("missing a"), result.Success(3))
	assert.False(t, r.HasResultOrPartial())
	assert.Equal(t, "missing a", r.Message())
}

func TestApply2PartialAccumulatesMessagesInOrder(t *testing.T) {
	r := result.Apply2(
		func(a, b int) int { return a + b },
		result.ErrorWithPartial(2, "a warn"),
		result.ErrorWithPartial(3, "b warn"),
	)
	assert.False(t, r.IsSuccess())
	v, ok := r.PartialResult()
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, "a warn; b warn", r.Message())
}

func TestApply2AndMakeStableForcesStable(t *testing.T) {
	r := result.Apply2AndMakeStable(func(a, b int) int { return a + b }, result.Success(1), result.Success(2))
	assert.True(t, r.Lifecycle().Equal(lifecycle.Stable))
}

func TestApply16AllSuccess(t *testing.T) {
	sum := func(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p int) int {
		return a + b + c + d + e + f + g + h + i + j + k + l + m + n + o + p
	}
	ones := result.Success(1)
	r := result.Apply16(sum, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones, ones)
	require.True(t, r.IsSuccess())
	assert.Equal(t, 16, r.Unwrap())
}

func TestAddMessage(t *testing.T) {
	a := result.Error[int]("first")
	b := result.Error[int]("second")
	merged := result.AddMessage(a, b)
	assert.Equal(t, "first; second", merged.Message())
	assert.True(t, merged.Lifecycle().Equal(lifecycle.Stable))
}

func TestMapError(t *testing.T) {
	r := result.MapError(result.Error[int]("bad"), func(s string) string { return s + "!" })
	assert.Equal(t, "bad!", r.Message())
	assert.Equal(t, result.Success(1), result.MapError(result.Success(1), func(s string) string { return s + "!" }))
}
