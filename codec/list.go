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
	"math"
	"strings"

	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/result"
)

// List builds a Codec[V, []A] with no bound on element count. Every
// element is encoded in order through c and appended to the adapter's
// list builder; during decode, an element that fails outright is dropped
// and noted in a failed sidecar, while an element that decodes with a
// partial keeps its partial value in the list, also noted in the sidecar,
// so decoding continues for the rest of the list either way.
func List[V, A any](c Codec[V, A]) *ComposedCodec[V, []A] {
	return ListBounded(c, 0, math.MaxInt)
}

// ListBounded is List with an inclusive [min, max] length constraint.
// Encode rejects a slice outside the bound outright. Decode:
//
//   - an element that fails outright is dropped from the output and noted
//     by index and message in a failed sidecar; an element that decodes
//     with a partial keeps that partial value in the output and is also
//     noted in the sidecar; either way decoding keeps going;
//   - if the number of elements retained (successful plus partial) is
//     below min, the whole decode is a non-partial Error;
//   - if it exceeds max, the excess (from the end) is moved into the
//     failed sidecar and the decode is an Error carrying the truncated
//     list as a partial.
//   - otherwise, if the sidecar is non-empty, the decode is an Error
//     carrying the successfully decoded elements as a partial;
//   - otherwise it is a Success.
func ListBounded[V, A any](c Codec[V, A], min, max int) *ComposedCodec[V, []A] {
	return &ComposedCodec[V, []A]{
		Enc: EncoderFunc[V, []A](func(input []A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			if len(input) < min || len(input) > max {
				return result.Error[V](fmt.Sprintf("list of size %d is out of bounds [%d, %d]", len(input), min, max))
			}
			builder := adapter.ListBuilder()
			for _, a := range input {
				builder = builder.AddResult(c.Encode(a, adapter, adapter.Empty()))
			}
			built := builder.Build()
			value, ok := built.Result()
			if !ok {
				return built
			}
			return adapter.MergeIntoPrimitive(prefix, value)
		}),
		Dec: DecoderFunc[V, []A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, []A]] {
			items, ok := adapter.GetIter(input).Result()
			if !ok {
				return result.Error[Decoded[V, []A]](adapter.GetIter(input).Message())
			}
			values := make([]A, 0, len(items))
			var failed []string
			for i, item := range items {
				decoded := c.Decode(item, adapter)
				if value, ok := decoded.Result(); ok {
					values = append(values, value.Value)
					continue
				}
				if value, ok := decoded.PartialResult(); ok {
					values = append(values, value.Value)
					failed = append(failed, fmt.Sprintf("[%d]: %s", i, decoded.Message()))
					continue
				}
				failed = append(failed, fmt.Sprintf("[%d]: %s", i, decoded.Message()))
			}
			if len(values) < min {
				return result.Error[Decoded[V, []A]](fmt.Sprintf("list of size %d is below minimum %d", len(values), min))
			}
			if len(values) > max {
				excess := values[max:]
				for i := range excess {
					failed = append(failed, fmt.Sprintf("[%d]: truncated, exceeds maximum %d", max+i, max))
				}
				values = values[:max]
			}
			decoded := Decoded[V, []A]{Value: values, Remainder: adapter.Empty()}
			if len(failed) > 0 {
				return result.ErrorWithPartial(decoded, "failed to decode some list elements: "+strings.Join(failed, "; "))
			}
			return result.Success(decoded)
		}),
	}
}
