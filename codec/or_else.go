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

// OrElse wraps c so a decode failure never propagates: any decode Error,
// with or without a partial result, is replaced by a Success holding
// fallback, and the original message is dropped. This matches the
// original's "lenient config field" behavior rather than DFU's own
// partial-preserving default. Encode is unchanged.
func OrElse[V, A any](c Codec[V, A], fallback A) *ComposedCodec[V, A] {
	return &ComposedCodec[V, A]{
		Enc: EncoderFunc[V, A](func(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			return c.Encode(input, adapter, prefix)
		}),
		Dec: DecoderFunc[V, A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
			decoded := c.Decode(input, adapter)
			if value, ok := decoded.Result(); ok {
				return result.Success(value)
			}
			return result.Success(Decoded[V, A]{Value: fallback, Remainder: adapter.Empty()})
		}),
	}
}
