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

package dynamic

import (
	"github.com/dfu-go/dfu/keycompressor"
	"github.com/dfu-go/dfu/result"
)

// FormatAdapter is the bridge between the codec core and one concrete
// tree-shaped serialization format. Every codec is generic over an opaque
// value type V and operates exclusively through an adapter handle; it
// never knows whether V is a JSON tree, an NBT tag, or something else.
//
// Implementations must treat V as cheaply comparable and copyable — see
// Equal and String below — and must never panic; every fallible operation
// returns a [result.Result].
type FormatAdapter[V any] interface {
	// Empty returns the format's canonical "no value" marker.
	Empty() V
	EmptyList() V
	EmptyMap() V

	CreateBool(bool) V
	CreateByte(int8) V
	CreateShort(int16) V
	CreateInt(int32) V
	CreateLong(int64) V
	CreateFloat(float32) V
	CreateDouble(float64) V
	CreateString(string) V
	CreateList(items []V) V
	CreateMap(entries []Pair[V]) V
	CreateByteBuffer([]byte) V
	CreateIntList([]int32) V
	CreateLongList([]int64) V

	GetBool(V) result.Result[bool]
	GetNumber(V) result.Result[Number]
	GetString(V) result.Result[string]
	GetMapIter(V) result.Result[[]Pair[V]]
	GetMap(V) result.Result[MapLike[V]]
	GetIter(V) result.Result[[]V]
	GetByteBuffer(V) result.Result[[]byte]
	GetIntList(V) result.Result[[]int32]
	GetLongList(V) result.Result[[]int64]

	// MergeIntoList appends v to list, producing a new list value.
	MergeIntoList(list V, v V) V
	// MergeValuesIntoList appends every item in items to list.
	MergeValuesIntoList(list V, items []V) V
	// MergeIntoMap sets key k to v inside m, producing a new map value.
	MergeIntoMap(m V, k V, v V) V
	// MergeMapLikeIntoMap copies every entry of other into m.
	MergeMapLikeIntoMap(m V, other MapLike[V]) V
	// MergeIntoPrimitive appends v onto prefix as a single scalar. It
	// only succeeds when prefix equals Empty(); merging a value onto a
	// non-empty prefix that is not itself a container is a type error.
	MergeIntoPrimitive(prefix V, v V) result.Result[V]

	Remove(v V, key string) V
	GetElement(v V, key string) result.Result[V]
	SetElement(v V, key string, value V) V
	UpdateElement(v V, key string, f func(V) V) V

	// CompressMaps reports whether this adapter wants fixed-schema maps
	// serialized as ordered lists instead of key/value maps.
	CompressMaps() bool

	// Equal reports whether two adapter values are structurally equal.
	Equal(a, b V) bool
	// String renders a value for error messages.
	String(v V) string

	MapBuilder() StructBuilder[V]
	// CompressedMapBuilder returns a StructBuilder that packs c's schema
	// into a fixed-size indexed list instead of a key/value map. A
	// MapCodec calls this directly (instead of MapBuilder) whenever
	// CompressMaps() is true, passing the compressor it built from its own
	// field names.
	CompressedMapBuilder(c *keycompressor.KeyCompressor) StructBuilder[V]
	ListBuilder() ListBuilder[V]
}

// ListBuilder is the list-shaped analog of [StructBuilder], returned by
// [FormatAdapter.ListBuilder].
type ListBuilder[V any] interface {
	Add(v V) ListBuilder[V]
	AddResult(v result.Result[V]) ListBuilder[V]
	Build() result.Result[V]
}
