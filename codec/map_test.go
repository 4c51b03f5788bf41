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
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/internal/testutil"
)

func TestSimpleMapRoundTrip(t *testing.T) {
	input := map[string]int32{"a": 1, "b": 2}
	got := roundTrip[map[string]int32](t, codec.SimpleMap[*testutil.Value, int32](codec.Int[*testutil.Value]()), input)
	assert.Equal(t, input, got)
}

func TestUnboundedMapBadEntrySkippedWithPartial(t *testing.T) {
	adapter := testutil.Adapter{}
	raw := adapter.CreateMap([]dynamic.Pair[*testutil.Value]{
		{Key: adapter.CreateString("ok"), Value: adapter.CreateInt(1)},
		{Key: adapter.CreateString("bad"), Value: adapter.CreateString("nope")},
	})

	c := codec.SimpleMap[*testutil.Value, int32](codec.Int[*testutil.Value]())
	decoded := c.Decode(raw, adapter)
	assert.False(t, decoded.IsSuccess())
	partial, ok := decoded.PartialResult()
	require.True(t, ok)
	assert.Equal(t, map[string]int32{"ok": 1}, partial.Value)
}
