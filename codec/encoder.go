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

// Encoder turns a typed value into an adapter value, merging it onto an
// existing prefix (usually adapter.Empty()).
type Encoder[V, A any] interface {
	Encode(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V]
}

// EncodeStart is the common case of Encode against an empty prefix.
func EncodeStart[V, A any](e Encoder[V, A], input A, adapter dynamic.FormatAdapter[V]) result.Result[V] {
	return e.Encode(input, adapter, adapter.Empty())
}

// EncoderFunc adapts a plain function to the Encoder interface.
type EncoderFunc[V, A any] func(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V]

func (f EncoderFunc[V, A]) Encode(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
	return f(input, adapter, prefix)
}
