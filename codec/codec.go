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

// Codec is an Encoder and a Decoder over the same (V, A) pair. Most
// constructors in this package return a *ComposedCodec built from a
// freestanding encoder and decoder function pair.
type Codec[V, A any] interface {
	Encoder[V, A]
	Decoder[V, A]
}

// ComposedCodec wraps an arbitrary Encoder/Decoder pair that share the
// same (V, A), letting callers build a Codec out of two independently
// authored halves.
type ComposedCodec[V, A any] struct {
	Enc Encoder[V, A]
	Dec Decoder[V, A]
}

// Compose builds a Codec from an encoder and a decoder.
func Compose[V, A any](enc Encoder[V, A], dec Decoder[V, A]) *ComposedCodec[V, A] {
	return &ComposedCodec[V, A]{Enc: enc, Dec: dec}
}

func (c *ComposedCodec[V, A]) Encode(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
	return c.Enc.Encode(input, adapter, prefix)
}

func (c *ComposedCodec[V, A]) Decode(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
	return c.Dec.Decode(input, adapter)
}
