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

func TestEitherEncodesWhicheverSideIsHeld(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.EitherCodec[*testutil.Value, int32, string](codec.Int[*testutil.Value](), codec.String[*testutil.Value]())

	left := codec.NewLeft[int32, string](7)
	encoded, ok := c.Encode(left, adapter, adapter.Empty()).Result()
	require.True(t, ok)
	assert.True(t, adapter.Equal(encoded, adapter.CreateInt(7)))

	right := codec.NewRight[int32, string]("hi")
	encoded, ok = c.Encode(right, adapter, adapter.Empty()).Result()
	require.True(t, ok)
	assert.True(t, adapter.Equal(encoded, adapter.CreateString("hi")))
}

func TestEitherDecodePrefersLeftWhenBothCouldMatch(t *testing.T) {
	adapter := testutil.Adapter{}
	// Both sides are Int codecs, so any int wire value decodes as both;
	// the Either must pick left.
	c := codec.EitherCodec[*testutil.Value, int32, int32](codec.Int[*testutil.Value](), codec.Int[*testutil.Value]())

	decoded := codec.Parse(c, adapter.CreateInt(5), adapter)
	require.True(t, decoded.IsSuccess())
	value, _ := decoded.Result()
	assert.True(t, value.IsLeft())
}

func TestEitherDecodeFallsBackToRight(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.EitherCodec[*testutil.Value, int32, string](codec.Int[*testutil.Value](), codec.String[*testutil.Value]())

	decoded := codec.Parse(c, adapter.CreateString("text"), adapter)
	require.True(t, decoded.IsSuccess())
	value, _ := decoded.Result()
	assert.False(t, value.IsLeft())
	r, ok := value.Right()
	require.True(t, ok)
	assert.Equal(t, "text", r)
}

func TestEitherDecodeFailsWhenNeitherSideMatches(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.EitherCodec[*testutil.Value, int32, bool](codec.Int[*testutil.Value](), codec.Bool[*testutil.Value]())

	decoded := codec.Parse(c, adapter.CreateString("neither"), adapter)
	assert.False(t, decoded.IsSuccess())
}
