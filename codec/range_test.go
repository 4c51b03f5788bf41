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

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/internal/testutil"
)

func TestIntRangeAcceptsWithinBounds(t *testing.T) {
	got := roundTrip[int32](t, codec.IntRange[*testutil.Value](0, 10), 5)
	assert.Equal(t, int32(5), got)
}

func TestIntRangeRejectsOutOfBounds(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.IntRange[*testutil.Value](0, 10)
	encoded := c.Encode(11, adapter, adapter.Empty())
	assert.False(t, encoded.IsSuccess())

	decoded := c.Decode(adapter.CreateInt(-1), adapter)
	assert.False(t, decoded.IsSuccess())
}

func TestIntRangeWithMinimumHasNoUpperBound(t *testing.T) {
	got := roundTrip[int32](t, codec.IntRangeWithMinimum[*testutil.Value](0), 1000000)
	assert.Equal(t, int32(1000000), got)
}

func TestDoubleRangeRejectsOutOfBounds(t *testing.T) {
	adapter := testutil.Adapter{}
	c := codec.DoubleRange[*testutil.Value](0, 1)
	decoded := c.Decode(adapter.CreateDouble(1.5), adapter)
	assert.False(t, decoded.IsSuccess())
}
