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

package json

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
	// arrays instead of objects.
	Compressed bool
}

// Adapter is the FormatAdapter[any] this package hands to codecs. Build
// one with Config{} for plain JSON objects, or Config{Compressed: true}
// to pack struct codecs into arrays.
type Adapter struct {
	Config Config
}

// New returns an Adapter with the given configuration.
func New(cfg Config) Adapter { return Adapter{Config: cfg} }

var _ dynamic.FormatAdapter[any] = Adapter{}

func (Adapter) Empty() any     { return nil }
func (Adapter) EmptyList() any { return []any{} }
func (Adapter) EmptyMap() any  { return map[string]any{} }

func (Adapter) CreateBool(b bool) any       { return b }
func (Adapter) CreateByte(v int8) any       { return v }
func (Adapter) CreateShort(v int16) any     { return v }
func (Adapter) CreateInt(v int32) any       { return v }
func (Adapter) CreateLong(v int64) any      { return v }
func (Adapter) CreateFloat(v float32) any   { return v }
func (Adapter) CreateDouble(v float64) any  { return v }
func (Adapter) CreateString(s string) any   { return s }
func (Adapter) CreateByteBuffer(b []byte) any {
	return append([]byte(nil), b...)
}
func (Adapter) CreateIntList(v []int32) any  { return append([]int32(nil), v...) }
func (Adapter) CreateLongList(v []int64) any { return append([]int64(nil), v...) }

func (Adapter) CreateList(items []any) any {
	return append([]any(nil), items...)
}

func (a Adapter) CreateMap(entries []dynamic.Pair[any]) any {
	m := make(map[string]any, len(entries))
	for _, e := range entries {
		k, _ := a.GetString(e.Key).Result()
		m[k] = e.Value
	}
	return m
}

func (a Adapter) GetBool(v any) result.Result[bool] {
	if b, ok := v.(bool); ok {
		return result.Success(b)
	}
	return result.Error[bool]("Not a boolean: " + a.String(v))
}

func (a Adapter) GetNumber(v any) result.Result[dynamic.Number] {
	switch n := v.(type) {
	case int8:
		return result.Success(dynamic.NewByte(n))
	case int16:
		return result.Success(dynamic.NewShort(n))
	case int32:
		return result.Success(dynamic.NewInt(n))
	case int64:
		return result.Success(dynamic.NewLong(n))
	case int:
		return result.Success(dynamic.NewLong(int64(n)))
	case float32:
		return result.Success(dynamic.NewFloat(n))
	case float64:
		return result.Success(dynamic.NewDouble(n))
	}
	return result.Error[dynamic.Number]("Not a number: " + a.String(v))
}

func (a Adapter) GetString(v any) result.Result[string] {
	if s, ok := v.(string); ok {
		return result.Success(s)
	}
	return result.Error[string]("Not a string: " + a.String(v))
}

func (a Adapter) GetMapIter(v any) result.Result[[]dynamic.Pair[any]] {
	m, ok := v.(map[string]any)
	if !ok {
		return result.Error[[]dynamic.Pair[any]]("Not a map: " + a.String(v))
	}
	pairs := make([]dynamic.Pair[any], 0, len(m))
	for k, val := range m {
		pairs = append(pairs, dynamic.Pair[any]{Key: k, Value: val})
	}
	return result.Success(pairs)
}

func (a Adapter) GetMap(v any) result.Result[dynamic.MapLike[any]] {
	pairs, ok := a.GetMapIter(v).Result()
	if !ok {
		return result.Error[dynamic.MapLike[any]](a.GetMapIter(v).Message())
	}
	ml := dynamic.NewMapLike(pairs, func(k any) (string, bool) {
		s, ok := k.(string)
		return s, ok
	}, a.Equal)
	return result.Success(ml)
}

func (a Adapter) GetIter(v any) result.Result[[]any] {
	if list, ok := v.([]any); ok {
		return result.Success(list)
	}
	return result.Error[[]any]("Not a list: " + a.String(v))
}

func (a Adapter) GetByteBuffer(v any) result.Result[[]byte] {
	if b, ok := v.([]byte); ok {
		return result.Success(b)
	}
	return result.Error[[]byte]("Not a byte array: " + a.String(v))
}

func (a Adapter) GetIntList(v any) result.Result[[]int32] {
	if ints, ok := v.([]int32); ok {
		return result.Success(ints)
	}
	if list, ok := v.([]any); ok {
		out := make([]int32, 0, len(list))
		for _, item := range list {
			n, ok := a.GetNumber(item).Result()
			if !ok {
				return result.Error[[]int32]("Not an int array: " + a.String(v))
			}
			out = append(out, n.AsInt())
		}
		return result.Success(out)
	}
	return result.Error[[]int32]("Not an int array: " + a.String(v))
}

func (a Adapter) GetLongList(v any) result.Result[[]int64] {
	if longs, ok := v.([]int64); ok {
		return result.Success(longs)
	}
	if list, ok := v.([]any); ok {
		out := make([]int64, 0, len(list))
		for _, item := range list {
			n, ok := a.GetNumber(item).Result()
			if !ok {
				return result.Error[[]int64]("Not a long array: " + a.String(v))
			}
			out = append(out, n.AsLong())
		}
		return result.Success(out)
	}
	return result.Error[[]int64]("Not a long array: " + a.String(v))
}

func (a Adapter) MergeIntoList(list any, v any) any {
	items, _ := a.GetIter(list).Result()
	return append(append([]any(nil), items...), v)
}

func (a Adapter) MergeValuesIntoList(list any, values []any) any {
	items, _ := a.GetIter(list).Result()
	return append(append([]any(nil), items...), values...)
}

func (a Adapter) MergeIntoMap(m any, k any, v any) any {
	out := map[string]any{}
	if existing, ok := m.(map[string]any); ok {
		for key, val := range existing {
			out[key] = val
		}
	}
	key, _ := a.GetString(k).Result()
	out[key] = v
	return out
}

func (a Adapter) MergeMapLikeIntoMap(m any, other dynamic.MapLike[any]) any {
	for _, e := range other.Entries() {
		m = a.MergeIntoMap(m, e.Key, e.Value)
	}
	return m
}

func (a Adapter) MergeIntoPrimitive(prefix any, v any) result.Result[any] {
	if !a.Equal(prefix, a.Empty()) {
		return result.Error[any](fmt.Sprintf("Do not know how to append %s to %s", a.String(v), a.String(prefix)))
	}
	return result.Success(v)
}

func (a Adapter) Remove(v any, key string) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	out := map[string]any{}
	for k, val := range m {
		if k == key {
			continue
		}
		out[k] = val
	}
	return out
}

func (a Adapter) GetElement(v any, key string) result.Result[any] {
	m, ok := v.(map[string]any)
	if !ok {
		return result.Error[any]("Not a map: " + a.String(v))
	}
	val, ok := m[key]
	if !ok {
		return result.Error[any](fmt.Sprintf("No key %s in map", key))
	}
	return result.Success(val)
}

func (a Adapter) SetElement(v any, key string, value any) any {
	return a.MergeIntoMap(v, key, value)
}

func (a Adapter) UpdateElement(v any, key string, f func(any) any) any {
	cur := a.Empty()
	if got := a.GetElement(v, key); got.IsSuccess() {
		cur = got.Unwrap()
	}
	return a.SetElement(v, key, f(cur))
}

func (a Adapter) CompressMaps() bool { return a.Config.Compressed }

func (a Adapter) Equal(x, y any) bool {
	return fmt.Sprintf("%#v", x) == fmt.Sprintf("%#v", y)
}

func (a Adapter) String(v any) string {
	return fmt.Sprintf("%v", v)
}

func (a Adapter) MapBuilder() dynamic.StructBuilder[any] {
	return dynamic.NewUniversalBuilder[any](a, func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
}

func (a Adapter) CompressedMapBuilder(c *keycompressor.KeyCompressor) dynamic.StructBuilder[any] {
	return dynamic.NewCompressedBuilder[any](a, c)
}

func (a Adapter) ListBuilder() dynamic.ListBuilder[any] {
	return &listBuilder{adapter: a}
}

type listBuilder struct {
	adapter  Adapter
	items    []any
	hasError bool
	message  string
}

func (b *listBuilder) Add(v any) dynamic.ListBuilder[any] {
	b.items = append(b.items, v)
	return b
}

func (b *listBuilder) AddResult(v result.Result[any]) dynamic.ListBuilder[any] {
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

func (b *listBuilder) Build() result.Result[any] {
	list := b.adapter.CreateList(b.items)
	if !b.hasError {
		return result.Success(list)
	}
	return result.ErrorWithPartial(list, b.message)
}
