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
	"sync"

	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/result"
)

// Lazy defers constructing the wrapped Codec until first use and then
// reuses it, the only supported way to build a cyclic codec graph: a
// recursive reference closes over a Lazy instead of calling the
// constructor directly, breaking the cycle at construction time.
//
// thunk need not be reentrant; it runs at most once, guarded by a
// sync.Once, matching the single-initialization contract the design notes
// call for.
func Lazy[V, A any](thunk func() Codec[V, A]) *ComposedCodec[V, A] {
	var (
		once  sync.Once
		inner Codec[V, A]
	)
	resolve := func() Codec[V, A] {
		once.Do(func() { inner = thunk() })
		return inner
	}
	return &ComposedCodec[V, A]{
		Enc: EncoderFunc[V, A](func(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			return resolve().Encode(input, adapter, prefix)
		}),
		Dec: DecoderFunc[V, A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
			return resolve().Decode(input, adapter)
		}),
	}
}
