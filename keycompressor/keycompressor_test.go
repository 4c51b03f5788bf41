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

package keycompressor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfu-go/dfu/keycompressor"
)

func TestPopulateFirstOccurrenceWins(t *testing.T) {
	c := keycompressor.New()
	c.Populate([]string{"name", "author", "pages", "name"})

	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 0, c.Index("name"))
	assert.Equal(t, 1, c.Index("author"))
	assert.Equal(t, 2, c.Index("pages"))
	assert.Equal(t, -1, c.Index("missing"))
}

func TestKeyAtRoundTrip(t *testing.T) {
	c := keycompressor.New()
	c.Populate([]string{"a", "b", "c"})

	for i, want := range []string{"a", "b", "c"} {
		got, ok := c.KeyAt(i)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := c.KeyAt(3)
	assert.False(t, ok)
}

func TestCompressDecompressKey(t *testing.T) {
	c := keycompressor.New()
	c.Populate([]string{"x", "y"})

	idx, ok := c.CompressKey("y")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	v, ok := keycompressor.DecompressKey[string](c, idx, func(s string) string { return s })
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	_, ok = keycompressor.DecompressKey[string](c, 99, func(s string) string { return s })
	assert.False(t, ok)
}

func TestPopulateIsIdempotentAndAppendOnly(t *testing.T) {
	c := keycompressor.New()
	c.Populate([]string{"a"})
	c.Populate([]string{"a", "b"})
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, 0, c.Index("a"))
	assert.Equal(t, 1, c.Index("b"))
}
