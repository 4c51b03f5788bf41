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

// Decoded pairs a decoded value with whatever of the input the decoder did
// not consume (most codecs consume everything and return the adapter's
// Empty() as the remainder).
type Decoded[V, A any] struct {
	Value     A
	Remainder V
}

// Decoder turns an adapter value into a typed value plus a remainder.
type Decoder[V, A any] interface {
	Decode(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]]
}

// Parse decodes and drops the remainder, returning just the typed value.
func Parse[V, A any](d Decoder[V, A], input V, adapter dynamic.FormatAdapter[V]) result.Result[A] {
	return result.Map(d.Decode(input, adapter), func(dv Decoded[V, A]) A { return dv.Value })
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc[V, A any] func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]]

func (f DecoderFunc[V, A]) Decode(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
	return f(input, adapter)
}
