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

package nbt

import (
	"fmt"

	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/keycompressor"
	"github.com/dfu-go/dfu/result"
)

// Config mirrors the {compressed: bool} configuration surface every
// FormatAdapter in this module exposes.
type Config struct {
	// Compressed, when true, serializes fixed-schema maps as ordered
	// index-addressed lists instead of Compound tags.
	Compressed bool
}

// Adapter is the FormatAdapter[*Tag] this package hands to codecs.
type Adapter struct {
	Config Config
}

// New returns an Adapter with the given configuration.
func New(cfg Config) Adapter { return Adapter{Config: cfg} }

var _ dynamic.FormatAdapter[*Tag] = Adapter{}

func (Adapter) Empty() *Tag     { return TagEnd() }
func (Adapter) EmptyList() *Tag { return TagList(nil) }
func (Adapter) EmptyMap() *Tag  { return TagCompound() }

func (Adapter) CreateBool(b bool) *Tag {
	if b {
		return TagByte(1)
	}
	return TagByte(0)
}
func (Adapter) CreateByte(v int8) *Tag       { return TagByte(v) }
func (Adapter) CreateShort(v int16) *Tag     { return TagShort(v) }
func (Adapter) CreateInt(v int32) *Tag       { return TagInt(v) }
func (Adapter) CreateLong(v int64) *Tag      { return TagLong(v) }
func (Adapter) CreateFloat(v float32) *Tag   { return TagFloat(v) }
func (Adapter) CreateDouble(v float64) *Tag  { return TagDouble(v) }
func (Adapter) CreateString(s string) *Tag   { return TagString(s) }
func (Adapter) CreateByteBuffer(b []byte) *Tag  { return TagByteArray(b) }
func (Adapter) CreateIntList(v []int32) *Tag    { return TagIntArray(v) }
func (Adapter) CreateLongList(v []int64) *Tag   { return TagLongArray(v) }

// CreateList runs every item through the list collector, so a codec that
// hands this adapter a mix of scalar kinds still gets back a valid NBT
// tag instead of an error: see listcollector.go.
func (Adapter) CreateList(items []*Tag) *Tag {
	return newListCollector().acceptAll(items).result()
}

func (a Adapter) CreateMap(entries []dynamic.Pair[*Tag]) *Tag {
	m := TagCompound()
	for _, e := range entries {
		if key := a.GetString(e.Key); key.IsSuccess() {
			m = m.Put(key.Unwrap(), e.Value)
		}
	}
	return m
}

func (a Adapter) GetBool(v *Tag) result.Result[bool] {
	if v.Kind() == KindByte {
		return result.Success(v.byteVal != 0)
	}
	return result.Error[bool]("Not a boolean: " + a.String(v))
}

func (a Adapter) GetNumber(v *Tag) result.Result[dynamic.Number] {
	switch v.Kind() {
	case KindByte:
		return result.Success(dynamic.NewByte(v.byteVal))
	case KindShort:
		return result.Success(dynamic.NewShort(v.shortVal))
	case KindInt:
		return result.Success(dynamic.NewInt(v.intVal))
	case KindLong:
		return result.Success(dynamic.NewLong(v.longVal))
	case KindFloat:
		return result.Success(dynamic.NewFloat(v.floatVal))
	case KindDouble:
		return result.Success(dynamic.NewDouble(v.doubleVal))
	}
	return result.Error[dynamic.Number]("Not a number: " + a.String(v))
}

func (a Adapter) GetString(v *Tag) result.Result[string] {
	if v.Kind() == KindString {
		return result.Success(v.str)
	}
	return result.Error[string]("Not a string: " + a.String(v))
}

func (a Adapter) GetMapIter(v *Tag) result.Result[[]dynamic.Pair[*Tag]] {
	if v.Kind() != KindCompound {
		return result.Error[[]dynamic.Pair[*Tag]]("Not a map: " + a.String(v))
	}
	pairs := make([]dynamic.Pair[*Tag], 0, len(v.compound))
	for _, e := range v.compound {
		pairs = append(pairs, dynamic.Pair[*Tag]{Key: TagString(e.key), Value: e.value})
	}
	return result.Success(pairs)
}

func (a Adapter) GetMap(v *Tag) result.Result[dynamic.MapLike[*Tag]] {
	pairs, ok := a.GetMapIter(v).Result()
	if !ok {
		return result.Error[dynamic.MapLike[*Tag]](a.GetMapIter(v).Message())
	}
	ml := dynamic.NewMapLike(pairs, func(k *Tag) (string, bool) {
		if k.Kind() != KindString {
			return "", false
		}
		return k.str, true
	}, a.Equal)
	return result.Success(ml)
}

// GetIter unpacks any list-shaped tag into its elements. A List of
// single-key "" wrapper compounds (the heterogeneous collector's escape
// hatch) is unwrapped back to the raw elements it hid.
func (a Adapter) GetIter(v *Tag) result.Result[[]*Tag] {
	switch v.Kind() {
	case KindList:
		out := make([]*Tag, len(v.list))
		for i, t := range v.list {
			out[i] = tryUnwrap(t)
		}
		return result.Success(out)
	case KindByteArray:
		out := make([]*Tag, len(v.bytes))
		for i, b := range v.bytes {
			out[i] = TagByte(int8(b))
		}
		return result.Success(out)
	case KindIntArray:
		out := make([]*Tag, len(v.ints))
		for i, n := range v.ints {
			out[i] = TagInt(n)
		}
		return result.Success(out)
	case KindLongArray:
		out := make([]*Tag, len(v.longs))
		for i, n := range v.longs {
			out[i] = TagLong(n)
		}
		return result.Success(out)
	}
	return result.Error[[]*Tag]("Not a list: " + a.String(v))
}

func (a Adapter) GetByteBuffer(v *Tag) result.Result[[]byte] {
	if v.Kind() == KindByteArray {
		return result.Success(v.bytes)
	}
	return result.Map(a.GetIter(v), func(items []*Tag) []byte {
		out := make([]byte, len(items))
		for i, it := range items {
			if n, ok := a.GetNumber(it).Result(); ok {
				out[i] = byte(n.AsByte())
			}
		}
		return out
	})
}

func (a Adapter) GetIntList(v *Tag) result.Result[[]int32] {
	if v.Kind() == KindIntArray {
		return result.Success(v.ints)
	}
	return result.Map(a.GetIter(v), func(items []*Tag) []int32 {
		out := make([]int32, len(items))
		for i, it := range items {
			if n, ok := a.GetNumber(it).Result(); ok {
				out[i] = n.AsInt()
			}
		}
		return out
	})
}

func (a Adapter) GetLongList(v *Tag) result.Result[[]int64] {
	if v.Kind() == KindLongArray {
		return result.Success(v.longs)
	}
	return result.Map(a.GetIter(v), func(items []*Tag) []int64 {
		out := make([]int64, len(items))
		for i, it := range items {
			if n, ok := a.GetNumber(it).Result(); ok {
				out[i] = n.AsLong()
			}
		}
		return out
	})
}

// MergeIntoList resumes a list collector from list's current shape
// (widening from a packed array to a mixed list as needed) and appends v.
func (a Adapter) MergeIntoList(list *Tag, v *Tag) *Tag {
	c, ok := listCollectorFromTag(list)
	if !ok {
		c = newListCollector()
	}
	return c.accept(v).result()
}

func (a Adapter) MergeValuesIntoList(list *Tag, values []*Tag) *Tag {
	c, ok := listCollectorFromTag(list)
	if !ok {
		c = newListCollector()
	}
	return c.acceptAll(values).result()
}

func (a Adapter) MergeIntoMap(m *Tag, k *Tag, v *Tag) *Tag {
	if m.Kind() != KindCompound {
		m = TagCompound()
	}
	key, ok := a.GetString(k).Result()
	if !ok {
		return m
	}
	return m.Put(key, v)
}

func (a Adapter) MergeMapLikeIntoMap(m *Tag, other dynamic.MapLike[*Tag]) *Tag {
	for _, e := range other.Entries() {
		m = a.MergeIntoMap(m, e.Key, e.Value)
	}
	return m
}

func (a Adapter) MergeIntoPrimitive(prefix *Tag, v *Tag) result.Result[*Tag] {
	if !a.Equal(prefix, a.Empty()) {
		return result.Error[*Tag](fmt.Sprintf("Do not know how to append %s to %s", a.String(v), a.String(prefix)))
	}
	return result.Success(v)
}

func (a Adapter) Remove(v *Tag, key string) *Tag {
	if v.Kind() != KindCompound {
		return v
	}
	out := TagCompound()
	for _, e := range v.compound {
		if e.key == key {
			continue
		}
		out = out.Put(e.key, e.value)
	}
	return out
}

func (a Adapter) GetElement(v *Tag, key string) result.Result[*Tag] {
	if v.Kind() != KindCompound {
		return result.Error[*Tag]("Not a map: " + a.String(v))
	}
	if val, ok := v.Get(key); ok {
		return result.Success(val)
	}
	return result.Error[*Tag](fmt.Sprintf("No key %s in map", key))
}

func (a Adapter) SetElement(v *Tag, key string, value *Tag) *Tag {
	if v.Kind() != KindCompound {
		v = TagCompound()
	}
	return v.Put(key, value)
}

func (a Adapter) UpdateElement(v *Tag, key string, f func(*Tag) *Tag) *Tag {
	cur := a.Empty()
	if got := a.GetElement(v, key); got.IsSuccess() {
		cur = got.Unwrap()
	}
	return a.SetElement(v, key, f(cur))
}

func (a Adapter) CompressMaps() bool { return a.Config.Compressed }

func (a Adapter) Equal(x, y *Tag) bool { return tagsEqual(x, y) }

func (a Adapter) String(v *Tag) string { return v.String() }

func (a Adapter) MapBuilder() dynamic.StructBuilder[*Tag] {
	return dynamic.NewUniversalBuilder[*Tag](a, func(v *Tag) (string, bool) {
		if v.Kind() != KindString {
			return "", false
		}
		return v.str, true
	})
}

func (a Adapter) CompressedMapBuilder(c *keycompressor.KeyCompressor) dynamic.StructBuilder[*Tag] {
	return dynamic.NewCompressedBuilder[*Tag](a, c)
}

func (a Adapter) ListBuilder() dynamic.ListBuilder[*Tag] {
	return &listBuilder{adapter: a}
}

// listBuilder defers to Adapter.CreateList on Build, so its result always
// goes through the same list-collector narrowing CreateList itself uses.
type listBuilder struct {
	adapter  Adapter
	items    []*Tag
	hasError bool
	message  string
}

func (b *listBuilder) Add(v *Tag) dynamic.ListBuilder[*Tag] {
	b.items = append(b.items, v)
	return b
}

func (b *listBuilder) AddResult(v result.Result[*Tag]) dynamic.ListBuilder[*Tag] {
	if val, ok := v.PartialResult(); ok {
		b.items = append(b.items, val)
	}
	if !v.IsSuccess() {
		b.hasError = true
		if b.message == "" {
			b.message = v.Message()
		} else if v.Message() != "" {
			b.message = b.message + "; " + v.Message()
		}
	}
	return b
}

func (b *listBuilder) Build() result.Result[*Tag] {
	list := b.adapter.CreateList(b.items)
	if !b.hasError {
		return result.Success(list)
	}
	return result.ErrorWithPartial(list, b.message)
}
