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

package codec

import (
	"fmt"
	"strings"

	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/result"
)

// UnboundedMap builds a Codec[V, map[K]A] of arbitrary size from a key
// codec and a value codec, unlike the fixed-schema maps built by the
// mapcodec package. Keys and values are both encoded/decoded through
// their own codec, so K need not be string — it's only required to be
// comparable so it can back a Go map.
//
// Encode order over the input map is unspecified (Go map iteration
// order); callers that need a stable wire order should sort the map
// themselves before encoding if the target format's consumer cares.
//
// Decode, like List, collects per-entry failures into a sidecar instead
// of aborting on the first bad entry. If any entry fails, the result is an
// Error whose partial holds the entries that did decode (possibly none).
func UnboundedMap[V any, K comparable, A any](keyCodec Codec[V, K], valCodec Codec[V, A]) *ComposedCodec[V, map[K]A] {
	return &ComposedCodec[V, map[K]A]{
		Enc: EncoderFunc[V, map[K]A](func(input map[K]A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			entries := make([]dynamic.Pair[V], 0, len(input))
			for k, v := range input {
				keyResult := keyCodec.Encode(k, adapter, adapter.Empty())
				keyValue, ok := keyResult.Result()
				if !ok {
					return result.Error[V]("failed to encode map key: " + keyResult.Message())
				}
				valResult := valCodec.Encode(v, adapter, adapter.Empty())
				valValue, ok := valResult.Result()
				if !ok {
					return result.Error[V](fmt.Sprintf("failed to encode value for key %v: %s", adapter.String(keyValue), valResult.Message()))
				}
				entries = append(entries, dynamic.Pair[V]{Key: keyValue, Value: valValue})
			}
			return adapter.MergeIntoPrimitive(prefix, adapter.CreateMap(entries))
		}),
		Dec: DecoderFunc[V, map[K]A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, map[K]A]] {
			pairs, ok := adapter.GetMapIter(input).Result()
			if !ok {
				return result.Error[Decoded[V, map[K]A]](adapter.GetMapIter(input).Message())
			}
			out := make(map[K]A, len(pairs))
			var failed []string
			for _, p := range pairs {
				key, ok := Parse(keyCodec, p.Key, adapter).Result()
				if !ok {
					failed = append(failed, fmt.Sprintf("key %s: %s", adapter.String(p.Key), Parse(keyCodec, p.Key, adapter).Message()))
					continue
				}
				val, ok := Parse(valCodec, p.Value, adapter).Result()
				if !ok {
					failed = append(failed, fmt.Sprintf("value for key %s: %s", adapter.String(p.Key), Parse(valCodec, p.Value, adapter).Message()))
					continue
				}
				out[key] = val
			}
			decoded := Decoded[V, map[K]A]{Value: out, Remainder: adapter.Empty()}
			if len(failed) > 0 {
				return result.ErrorWithPartial(decoded, "failed to decode some map entries: "+strings.Join(failed, "; "))
			}
			return result.Success(decoded)
		}),
	}
}

// SimpleMap is UnboundedMap specialized to string keys, the common case
// for a dynamic key/value bag (e.g. a loot table's free-form tag set).
func SimpleMap[V, A any](valCodec Codec[V, A]) *ComposedCodec[V, map[string]A] {
	return UnboundedMap[V, string, A](String[V](), valCodec)
}
