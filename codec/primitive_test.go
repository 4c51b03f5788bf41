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
)

func roundTrip[A any](t *testing.T, c codec.Codec[*testutil.Value, A], value A) A {
	t.Helper()
	adapter := testutil.Adapter{}
	encoded := c.Encode(value, adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire, _ := encoded.Result()
	decoded := codec.Parse(c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	return out
}

func TestPrimitiveRoundTrip(t *testing.T) {
	assert.Equal(t, true, roundTrip[bool](t, codec.Bool[*testutil.Value](), true))
	assert.Equal(t, int8(-5), roundTrip[int8](t, codec.Byte[*testutil.Value](), -5))
	assert.Equal(t, int16(1000), roundTrip[int16](t, codec.Short[*testutil.Value](), 1000))
	assert.Equal(t, int32(42), roundTrip[int32](t, codec.Int[*testutil.Value](), 42))
	assert.Equal(t, int64(1 << 40), roundTrip[int64](t, codec.Long[*testutil.Value](), 1<<40))
	assert.Equal(t, float32(3.5), roundTrip[float32](t, codec.Float[*testutil.Value](), 3.5))
	assert.Equal(t, 2.718281828, roundTrip[float64](t, codec.Double[*testutil.Value](), 2.718281828))
	assert.Equal(t, "hello", roundTrip[string](t, codec.String[*testutil.Value](), "hello"))
	assert.Equal(t, []byte{1, 2, 3}, roundTrip[[]byte](t, codec.ByteBuffer[*testutil.Value](), []byte{1, 2, 3}))
	assert.Equal(t, []int32{1, 2, 3}, roundTrip[[]int32](t, codec.IntList[*testutil.Value](), []int32{1, 2, 3}))
	assert.Equal(t, []int64{1, 2, 3}, roundTrip[[]int64](t, codec.LongList[*testutil.Value](), []int64{1, 2, 3}))
}

func TestByteNarrowsJavaStyle(t *testing.T) {
	adapter := testutil.Adapter{}
	wire := adapter.CreateInt(300)
	decoded := codec.Parse(codec.Byte[*testutil.Value](), wire, adapter)
	require.True(t, decoded.IsSuccess())
	out, _ := decoded.Result()
	assert.Equal(t, int8(44), out) // 300 truncates to 44 via int32->int8
}

func TestUnitIgnoresInput(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.Unit[*testutil.Value, string]("always this")
	encoded := c.Encode("ignored", adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess())
	wire, _ := encoded.Result()
	assert.True(t, adapter.Equal(wire, adapter.Empty()))

	decoded := codec.Parse(c, adapter.CreateString("whatever"), adapter)
	require.True(t, decoded.IsSuccess())
	out, _ := decoded.Result()
	assert.Equal(t, "always this", out)
}

func TestPassthroughKeepsAdapterValue(t *testing.T) {
	adapter := testutil.Adapter{}
	in := adapter.CreateString("raw")
	out := roundTrip[*testutil.Value](t, codec.Passthrough[*testutil.Value](), in)
	assert.True(t, adapter.Equal(in, out))
}
