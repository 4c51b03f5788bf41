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

package testutil

import (
	"fmt"

	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/keycompressor"
	"github.com/dfu-go/dfu/result"
)

// Adapter is a minimal in-memory tree FormatAdapter[*Value], the reference
// adapter this module's own tests exercise every codec against. Compressed
// toggles CompressMaps(), mirroring the JSON adapter's {compressed: bool}
// configuration surface described in the module's external interfaces.
type Adapter struct {
	Compressed bool
}

var _ dynamic.FormatAdapter[*Value] = Adapter{}

func (Adapter) Empty() *Value     { return &Value{kind: KindNull} }
func (Adapter) EmptyList() *Value { return &Value{kind: KindList} }
func (Adapter) EmptyMap() *Value  { return &Value{kind: KindMap} }

func (Adapter) CreateBool(b bool) *Value     { return &Value{kind: KindBool, b: b} }
func (Adapter) CreateByte(v int8) *Value     { return &Value{kind: KindNumber, num: dynamic.NewByte(v)} }
func (Adapter) CreateShort(v int16) *Value   { return &Value{kind: KindNumber, num: dynamic.NewShort(v)} }
func (Adapter) CreateInt(v int32) *Value     { return &Value{kind: KindNumber, num: dynamic.NewInt(v)} }
func (Adapter) CreateLong(v int64) *Value    { return &Value{kind: KindNumber, num: dynamic.NewLong(v)} }
func (Adapter) CreateFloat(v float32) *Value { return &Value{kind: KindNumber, num: dynamic.NewFloat(v)} }
func (Adapter) CreateDouble(v float64) *Value {
	return &Value{kind: KindNumber, num: dynamic.NewDouble(v)}
}
func (Adapter) CreateString(s string) *Value { return &Value{kind: KindString, str: s} }
func (Adapter) CreateList(items []*Value) *Value {
	return &Value{kind: KindList, list: append([]*Value(nil), items...)}
}
func (Adapter) CreateMap(entries []dynamic.Pair[*Value]) *Value {
	return &Value{kind: KindMap, entries: append([]dynamic.Pair[*Value](nil), entries...)}
}
func (Adapter) CreateByteBuffer(b []byte) *Value {
	return &Value{kind: KindByteBuffer, bytes: append([]byte(nil), b...)}
}
func (Adapter) CreateIntList(v []int32) *Value {
	return &Value{kind: KindIntList, ints: append([]int32(nil), v...)}
}
func (Adapter) CreateLongList(v []int64) *Value {
	return &Value{kind: KindLongList, longs: append([]int64(nil), v...)}
}

func (a Adapter) GetBool(v *Value) result.Result[bool] {
	if v == nil || v.kind != KindBool {
		return result.Error[bool]("Not a boolean: " + a.String(v))
	}
	return result.Success(v.b)
}

func (a Adapter) GetNumber(v *Value) result.Result[dynamic.Number] {
	if v == nil || v.kind != KindNumber {
		return result.Error[dynamic.Number]("Not a number: " + a.String(v))
	}
	return result.Success(v.num)
}

func (a Adapter) GetString(v *Value) result.Result[string] {
	if v == nil || v.kind != KindString {
		return result.Error[string]("Not a string: " + a.String(v))
	}
	return result.Success(v.str)
}

func (a Adapter) GetMapIter(v *Value) result.Result[[]dynamic.Pair[*Value]] {
	if v == nil || v.kind != KindMap {
		return result.Error[[]dynamic.Pair[*Value]]("Not a map: " + a.String(v))
	}
	return result.Success(v.entries)
}

func (a Adapter) GetMap(v *Value) result.Result[dynamic.MapLike[*Value]] {
	entries := a.GetMapIter(v)
	if !entries.IsSuccess() {
		return result.Error[dynamic.MapLike[*Value]](entries.Message())
	}
	ml := dynamic.NewMapLike(entries.Unwrap(), func(k *Value) (string, bool) {
		if k == nil || k.kind != KindString {
			return "", false
		}
		return k.str, true
	}, Equal)
	return result.Success(ml)
}

func (a Adapter) GetIter(v *Value) result.Result[[]*Value] {
	if v == nil || v.kind != KindList {
		return result.Error[[]*Value]("Not a list: " + a.String(v))
	}
	return result.Success(v.list)
}

func (a Adapter) GetByteBuffer(v *Value) result.Result[[]byte] {
	if v == nil || v.kind != KindByteBuffer {
		return result.Error[[]byte]("Not a byte array: " + a.String(v))
	}
	return result.Success(v.bytes)
}

func (a Adapter) GetIntList(v *Value) result.Result[[]int32] {
	if v == nil || v.kind != KindIntList {
		return result.Error[[]int32]("Not an int array: " + a.String(v))
	}
	return result.Success(v.ints)
}

func (a Adapter) GetLongList(v *Value) result.Result[[]int64] {
	if v == nil || v.kind != KindLongList {
		return result.Error[[]int64]("Not a long array: " + a.String(v))
	}
	return result.Success(v.longs)
}

func (a Adapter) MergeIntoList(list *Value, v *Value) *Value {
	if list == nil || list.kind != KindList {
		list = &Value{kind: KindList}
	}
	return &Value{kind: KindList, list: append(append([]*Value(nil), list.list...), v)}
}

func (a Adapter) MergeValuesIntoList(list *Value, items []*Value) *Value {
	if list == nil || list.kind != KindList {
		list = &Value{kind: KindList}
	}
	return &Value{kind: KindList, list: append(append([]*Value(nil), list.list...), items...)}
}

func (a Adapter) MergeIntoMap(m *Value, k *Value, v *Value) *Value {
	if m == nil || m.kind != KindMap {
		m = &Value{kind: KindMap}
	}
	entries := append([]dynamic.Pair[*Value](nil), m.entries...)
	for i, e := range entries {
		if Equal(e.Key, k) {
			entries[i].Value = v
			return &Value{kind: KindMap, entries: entries}
		}
	}
	entries = append(entries, dynamic.Pair[*Value]{Key: k, Value: v})
	return &Value{kind: KindMap, entries: entries}
}

func (a Adapter) MergeMapLikeIntoMap(m *Value, other dynamic.MapLike[*Value]) *Value {
	for _, e := range other.Entries() {
		m = a.MergeIntoMap(m, e.Key, e.Value)
	}
	return m
}

func (a Adapter) MergeIntoPrimitive(prefix *Value, v *Value) result.Result[*Value] {
	if !a.Equal(prefix, a.Empty()) {
		return result.Error[*Value](fmt.Sprintf("Do not know how to append %s to %s", a.String(v), a.String(prefix)))
	}
	return result.Success(v)
}

func (a Adapter) Remove(v *Value, key string) *Value {
	if v == nil || v.kind != KindMap {
		return v
	}
	entries := make([]dynamic.Pair[*Value], 0, len(v.entries))
	for _, e := range v.entries {
		if s, ok := stringKey(e.Key); ok && s == key {
			continue
		}
		entries = append(entries, e)
	}
	return &Value{kind: KindMap, entries: entries}
}

func (a Adapter) GetElement(v *Value, key string) result.Result[*Value] {
	if v == nil || v.kind != KindMap {
		return result.Error[*Value]("Not a map: " + a.String(v))
	}
	for _, e := range v.entries {
		if s, ok := stringKey(e.Key); ok && s == key {
			return result.Success(e.Value)
		}
	}
	return result.Error[*Value](fmt.Sprintf("No key %s in map", key))
}

func (a Adapter) SetElement(v *Value, key string, value *Value) *Value {
	return a.MergeIntoMap(v, a.CreateString(key), value)
}

func (a Adapter) UpdateElement(v *Value, key string, f func(*Value) *Value) *Value {
	cur := a.Empty()
	if got := a.GetElement(v, key); got.IsSuccess() {
		cur = got.Unwrap()
	}
	return a.SetElement(v, key, f(cur))
}

func (a Adapter) CompressMaps() bool { return a.Compressed }

func (a Adapter) Equal(x, y *Value) bool { return Equal(x, y) }

func (a Adapter) String(v *Value) string { return v.String() }

func (a Adapter) MapBuilder() dynamic.StructBuilder[*Value] {
	return dynamic.NewUniversalBuilder[*Value](a, func(v *Value) (string, bool) { return stringKey(v) })
}

// CompressedMapBuilder returns a compressed StructBuilder for the given
// key schema, the path a MapCodec takes when CompressMaps() is true.
func (a Adapter) CompressedMapBuilder(c *keycompressor.KeyCompressor) dynamic.StructBuilder[*Value] {
	return dynamic.NewCompressedBuilder[*Value](a, c)
}

func (a Adapter) ListBuilder() dynamic.ListBuilder[*Value] {
	return &listBuilder{adapter: a}
}

func stringKey(v *Value) (string, bool) {
	if v == nil || v.kind != KindString {
		return "", false
	}
	return v.str, true
}

type listBuilder struct {
	adapter   Adapter
	items     []*Value
	hasError  bool
	message   string
}

func (b *listBuilder) Add(v *Value) dynamic.ListBuilder[*Value] {
	b.items = append(b.items, v)
	return b
}

func (b *listBuilder) AddResult(v result.Result[*Value]) dynamic.ListBuilder[*Value] {
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

func (b *listBuilder) Build() result.Result[*Value] {
	list := b.adapter.CreateList(b.items)
	if !b.hasError {
		return result.Success(list)
	}
	return result.ErrorWithPartial(list, b.message)
}
