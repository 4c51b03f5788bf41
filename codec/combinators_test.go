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

type unixSeconds int64

func TestXMapRoundTrip(t *testing.T) {
	c := codec.XMap[*testutil.Value, int64, unixSeconds](codec.Long[*testutil.Value](),
		func(n int64) unixSeconds { return unixSeconds(n) },
		func(u unixSeconds) int64 { return int64(u) },
	)
	assert.Equal(t, unixSeconds(100), roundTrip[unixSeconds](t, c, unixSeconds(100)))
}

func TestComapFlatMapCanRejectOnDecode(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.ComapFlatMap[*testutil.Value, int32, string](codec.Int[*testutil.Value](),
		func(n int32) result.Result[string] {
			if n < 0 {
				return result.Error[string]("negative")
			}
			return result.Success("ok")
		},
		func(s string) int32 { return int32(len(s)) },
	)
	assert.True(t, c.Decode(adapter.CreateInt(7), adapter).IsSuccess())
	assert.False(t, c.Decode(adapter.CreateInt(-1), adapter).IsSuccess())
}

func TestFlatXMapBothDirectionsCanFail(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.FlatXMap[*testutil.Value, int32, string](codec.Int[*testutil.Value](),
		func(n int32) result.Result[string] {
			if n < 0 {
				return result.Error[string]("negative")
			}
			return result.Success("ok")
		},
		func(s string) result.Result[int32] {
			if s == "" {
				return result.Error[int32]("empty")
			}
			return result.Success(int32(len(s)))
		},
	)
	decoded := c.Decode(adapter.CreateInt(-1), adapter)
	assert.False(t, decoded.IsSuccess())

	encoded := c.Encode("", adapter, adapter.Empty())
	assert.False(t, encoded.IsSuccess())
}

func TestLazyResolvesOnce(t *testing.T) {
	calls := 0
	lazy := codec.Lazy[*testutil.Value, int32](func() codec.Codec[*testutil.Value, int32] {
		calls++
		return codec.Int[*testutil.Value]()
	})
	adapter := testutil.Adapter{}
	_ = lazy.Decode(adapter.CreateInt(1), adapter)
	_ = lazy.Decode(adapter.CreateInt(2), adapter)
	assert.Equal(t, 1, calls)
}

func TestOrElseFallsBackOnFailure(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.OrElse[*testutil.Value, int32](codec.Int[*testutil.Value](), -1)
	decoded := codec.Parse(c, adapter.CreateString("nope"), adapter)
	require.True(t, decoded.IsSuccess())
	v, _ := decoded.Result()
	assert.Equal(t, int32(-1), v)
}
