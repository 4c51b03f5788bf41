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

package mapcodec

import (
	"fmt"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/keycompressor"
	"github.com/dfu-go/dfu/result"
)

// MapCodec is a Codec that operates on a map fragment rather than a
// standalone adapter value: it writes its keys into a caller-supplied
// builder and reads them back out of a caller-supplied MapLike view.
type MapCodec[V, T any] interface {
	// Keys lists every key this MapCodec reads or writes, used to build
	// the KeyCompressor a compressed-map FormatAdapter needs.
	Keys() []string
	EncodeInto(t T, adapter dynamic.FormatAdapter[V], builder dynamic.StructBuilder[V]) dynamic.StructBuilder[V]
	DecodeFrom(m dynamic.MapLike[V], adapter dynamic.FormatAdapter[V]) result.Result[T]
}

// FromMap lifts a MapCodec into a full Codec, the only place a map
// fragment becomes a standalone adapter value. The KeyCompressor needed
// for a compressed-map adapter is built once, from mc.Keys(), at
// construction time.
func FromMap[V, T any](mc MapCodec[V, T]) *codec.ComposedCodec[V, T] {
	compressor := keycompressor.New()
	compressor.Populate(mc.Keys())

	return &codec.ComposedCodec[V, T]{
		Enc: codec.EncoderFunc[V, T](func(input T, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			var builder dynamic.StructBuilder[V]
			if adapter.CompressMaps() {
				builder = adapter.CompressedMapBuilder(compressor)
			} else {
				builder = adapter.MapBuilder()
			}
			return mc.EncodeInto(input, adapter, builder).Build(prefix)
		}),
		Dec: codec.DecoderFunc[V, T](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[codec.Decoded[V, T]] {
			mapLike, err := mapLikeOf(input, adapter, compressor)
			if err != "" {
				return result.Error[codec.Decoded[V, T]](err)
			}
			return result.Map(mc.DecodeFrom(mapLike, adapter), func(t T) codec.Decoded[V, T] {
				return codec.Decoded[V, T]{Value: t, Remainder: adapter.Empty()}
			})
		}),
	}
}

// mapLikeOf builds the MapLike view DecodeFrom reads from: the adapter's
// native map view normally, or a synthetic one reconstructed from a
// compressed list when the adapter compresses maps.
func mapLikeOf[V any](input V, adapter dynamic.FormatAdapter[V], compressor *keycompressor.KeyCompressor) (dynamic.MapLike[V], string) {
	if !adapter.CompressMaps() {
		ml, ok := adapter.GetMap(input).Result()
		if !ok {
			return nil, adapter.GetMap(input).Message()
		}
		return ml, ""
	}
	items, ok := adapter.GetIter(input).Result()
	if !ok {
		return nil, adapter.GetIter(input).Message()
	}
	entries := make([]dynamic.Pair[V], 0, len(items))
	for i, item := range items {
		key, ok := keycompressor.DecompressKey[V](compressor, i, adapter.CreateString)
		if !ok {
			continue
		}
		if adapter.Equal(item, adapter.Empty()) {
			continue
		}
		entries = append(entries, dynamic.Pair[V]{Key: key, Value: item})
	}
	ml := dynamic.NewMapLike(entries, func(k V) (string, bool) {
		return adapter.GetString(k).Result()
	}, adapter.Equal)
	return ml, ""
}

// missingKey is the shared error message shape for a required field with
// no entry in the source map.
func missingKey(name string) string {
	return fmt.Sprintf("missing key: %s", name)
}
