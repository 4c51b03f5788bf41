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

package keycompressor

// KeyCompressor assigns each distinct key a small positional index in
// first-occurrence order, so a MapCodec's fixed key schema can be
// serialized as a list instead of a map. It is built once per MapCodec
// (see FromMap in the mapcodec package) and is safe to reuse
// across many encode/decode calls because it never mutates after
// Populate.
type KeyCompressor struct {
	toIndex map[string]int
	toKey   []string
}

// New returns an empty KeyCompressor. Call Populate before using it.
func New() *KeyCompressor {
	return &KeyCompressor{toIndex: make(map[string]int)}
}

// Populate assigns indices to keys in order, skipping any key already
// seen (first occurrence wins its index). It is idempotent: calling it
// again with a superset of previously-populated keys only appends new
// ones.
func (c *KeyCompressor) Populate(keys []string) {
	for _, k := range keys {
		if _, ok := c.toIndex[k]; ok {
			continue
		}
		c.toIndex[k] = len(c.toKey)
		c.toKey = append(c.toKey, k)
	}
}

// Size returns the number of distinct keys registered so far.
func (c *KeyCompressor) Size() int {
	return len(c.toKey)
}

// Index returns the position assigned to key, or -1 if key was never
// populated.
func (c *KeyCompressor) Index(key string) int {
	if idx, ok := c.toIndex[key]; ok {
		return idx
	}
	return -1
}

// KeyAt returns the key registered at position idx, or ("", false) if idx
// is out of range.
func (c *KeyCompressor) KeyAt(idx int) (string, bool) {
	if idx < 0 || idx >= len(c.toKey) {
		return "", false
	}
	return c.toKey[idx], true
}

// CompressKey looks up v's index. Returns (-1, false) when v was never
// populated.
func (c *KeyCompressor) CompressKey(v string) (int, bool) {
	if idx, ok := c.toIndex[v]; ok {
		return idx, true
	}
	return -1, false
}

// DecompressKey looks the key up at position i and wraps it with wrap
// (typically an adapter's CreateString). Returns the zero V and false if
// i is out of range.
func DecompressKey[V any](c *KeyCompressor, i int, wrap func(string) V) (V, bool) {
	key, ok := c.KeyAt(i)
	if !ok {
		var zero V
		return zero, false
	}
	return wrap(key), true
}
