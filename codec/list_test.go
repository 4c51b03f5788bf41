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

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/internal/testutil"
	"github.com/dfu-go/dfu/result"
)

func TestListRoundTrip(t *testing.T) {
	got := roundTrip[[]int32](t, codec.List[*testutil.Value, int32](codec.Int[*testutil.Value]()), []int32{1, 2, 3})
	assert.Equal(t, []int32{1, 2, 3}, got)
}

func TestListEncodeRejectsOutOfBounds(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.ListBounded[*testutil.Value, int32](codec.Int[*testutil.Value](), 2, 4)
	encoded := c.Encode([]int32{1}, adapter, adapter.Empty())
	assert.False(t, encoded.IsSuccess())
}

func TestListDecodeBelowMinimumIsNonPartialError(t *testing.T) {
	adapter := testutil.Adapter{}
	inner := codec.ListBounded[*testutil.Value, int32](codec.Int[*testutil.Value](), 0, 100)
	wire, _ := inner.Encode([]int32{1}, adapter, adapter.Empty()).Result()

	bounded := codec.ListBounded[*testutil.Value, int32](codec.Int[*testutil.Value](), 2, 100)
	decoded := bounded.Decode(wire, adapter)
	assert.False(t, decoded.IsSuccess())
	_, hasPartial := decoded.PartialResult()
	assert.False(t, hasPartial)
}

func TestListDecodeAboveMaximumTruncatesWithPartial(t *testing.T) {
	adapter := testutil.Adapter{}
	inner := codec.List[*testutil.Value, int32](codec.Int[*testutil.Value]())
	wire, _ := inner.Encode([]int32{1, 2, 3, 4}, adapter, adapter.Empty()).Result()

	bounded := codec.ListBounded[*testutil.Value, int32](codec.Int[*testutil.Value](), 0, 2)
	decoded := bounded.Decode(wire, adapter)
	assert.False(t, decoded.IsSuccess())
	partial, ok := decoded.PartialResult()
	require.True(t, ok)
	assert.Equal(t, []int32{1, 2}, partial.Value)
}

func TestListDecodeSkipsBadElementsAndReportsPartial(t *testing.T) {
	adapter := testutil.Adapter{}
	raw := adapter.CreateList([]*testutil.Value{
		adapter.CreateInt(1),
		adapter.CreateString("not an int"),
		adapter.CreateInt(3),
	})

	c := codec.List[*testutil.Value, int32](codec.Int[*testutil.Value]())
	decoded := c.Decode(raw, adapter)
	assert.False(t, decoded.IsSuccess())
	partial, ok := decoded.PartialResult()
	require.True(t, ok)
	assert.Equal(t, []int32{1, 3}, partial.Value)
	assert.Contains(t, decoded.Message(), "[1]")
}

func TestListDecodeKeepsPartialElementValues(t *testing.T) {
	adapter := testutil.Adapter{}
	raw := adapter.CreateList([]*testutil.Value{
		adapter.CreateInt(1),
		adapter.CreateInt(-2),
		adapter.CreateInt(3),
	})

	clamped := codec.ComapFlatMap[*testutil.Value, int32, int32](
		codec.Int[*testutil.Value](),
		func(v int32) result.Result[int32] {
			if v < 0 {
				return result.ErrorWithPartial(int32(0), "negative value clamped")
			}
			return result.Success(v)
		},
		func(v int32) int32 { return v },
	)

	c := codec.List[*testutil.Value, int32](clamped)
	decoded := c.Decode(raw, adapter)
	assert.False(t, decoded.IsSuccess())
	partial, ok := decoded.PartialResult()
	require.True(t, ok)
	assert.Equal(t, []int32{1, 0, 3}, partial.Value)
	assert.Contains(t, decoded.Message(), "[1]")
}
