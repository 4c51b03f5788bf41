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

package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/internal/testutil"
	"github.com/dfu-go/dfu/keycompressor"
	"github.com/dfu-go/dfu/result"
)

func TestUniversalBuilderBuildsMap(t *testing.T) {
	a := testutil.Adapter{}
	b := a.MapBuilder()
	b.AddStringKeyValue("name", a.CreateString("Gulliver's Travels"))
	b.AddStringKeyValue("pages", a.CreateInt(328))
	out := b.Build(a.Empty())
	require.True(t, out.IsSuccess())

	got := out.Unwrap()
	name, ok := a.GetElement(got, "name").Result()
	require.True(t, ok)
	assert.Equal(t, "Gulliver's Travels", a.GetString(name).Unwrap())
}

func TestUniversalBuilderAccumulatesErrorsAndKeepsPartial(t *testing.T) {
	a := testutil.Adapter{}
	b := a.MapBuilder()
	b.AddStringKeyValue("ok", a.CreateInt(1))
	b.AddStringKeyValueResult("bad", result.Error[*testutil.Value]("invalid value"))
	out := b.Build(a.Empty())
	assert.False(t, out.IsSuccess())
	partial, ok := out.PartialResult()
	require.True(t, ok)
	_, hasOK := a.GetElement(partial, "ok").Result()
	assert.True(t, hasOK)
	assert.Equal(t, "invalid value", out.Message())
}

func TestCompressedBuilderPacksAsList(t *testing.T) {
	a := testutil.Adapter{Compressed: true}
	c := keycompressor.New()
	c.Populate([]string{"name", "pages"})

	b := a.CompressedMapBuilder(c)
	b.AddStringKeyValue("pages", a.CreateInt(42))
	b.AddStringKeyValue("name", a.CreateString("X"))
	out := b.Build(a.Empty())
	require.True(t, out.IsSuccess())

	items, ok := a.GetIter(out.Unwrap()).Result()
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "X", a.GetString(items[0]).Unwrap())
	assert.Equal(t, int32(42), a.GetNumber(items[1]).Unwrap().AsInt())
}
