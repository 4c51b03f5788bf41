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
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/result"
)

// FlatXMap adapts a Codec[V, A] into a Codec[V, B] where both directions
// may fail.
func FlatXMap[V, A, B any](c Codec[V, A], to func(A) result.Result[B], from func(B) result.Result[A]) *ComposedCodec[V, B] {
	return &ComposedCodec[V, B]{
		Enc: EncoderFunc[V, B](func(input B, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			return result.FlatMap(from(input), func(a A) result.Result[V] {
				return c.Encode(a, adapter, prefix)
			})
		}),
		Dec: DecoderFunc[V, B](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, B]] {
			return flatMapDecoded(c.Decode(input, adapter), to)
		}),
	}
}
