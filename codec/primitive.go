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

// primitive builds a Codec[V, A] around a single Create* constructor and
// Get* extractor pair, the shape shared by every scalar primitive below.
func primitive[V, A any](create func(dynamic.FormatAdapter[V], A) V, get func(dynamic.FormatAdapter[V], V) result.Result[A]) *ComposedCodec[V, A] {
	return &ComposedCodec[V, A]{
		Enc: EncoderFunc[V, A](func(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			return adapter.MergeIntoPrimitive(prefix, create(adapter, input))
		}),
		Dec: DecoderFunc[V, A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
			return result.Map(get(adapter, input), func(a A) Decoded[V, A] {
				return Decoded[V, A]{Value: a, Remainder: adapter.Empty()}
			})
		}),
	}
}

// Bool is the primitive codec for a plain boolean.
func Bool[V any]() *ComposedCodec[V, bool] {
	return primitive[V, bool](
		func(a dynamic.FormatAdapter[V], v bool) V { return a.CreateBool(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[bool] { return a.GetBool(v) },
	)
}

// Byte is the primitive codec for an int8.
func Byte[V any]() *ComposedCodec[V, int8] {
	return primitive[V, int8](
		func(a dynamic.FormatAdapter[V], v int8) V { return a.CreateByte(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[int8] {
			return result.Map(a.GetNumber(v), dynamic.Number.AsByte)
		},
	)
}

// Short is the primitive codec for an int16.
func Short[V any]() *ComposedCodec[V, int16] {
	return primitive[V, int16](
		func(a dynamic.FormatAdapter[V], v int16) V { return a.CreateShort(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[int16] {
			return result.Map(a.GetNumber(v), dynamic.Number.AsShort)
		},
	)
}

// Int is the primitive codec for an int32.
func Int[V any]() *ComposedCodec[V, int32] {
	return primitive[V, int32](
		func(a dynamic.FormatAdapter[V], v int32) V { return a.CreateInt(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[int32] {
			return result.Map(a.GetNumber(v), dynamic.Number.AsInt)
		},
	)
}

// Long is the primitive codec for an int64.
func Long[V any]() *ComposedCodec[V, int64] {
	return primitive[V, int64](
		func(a dynamic.FormatAdapter[V], v int64) V { return a.CreateLong(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[int64] {
			return result.Map(a.GetNumber(v), dynamic.Number.AsLong)
		},
	)
}

// Float is the primitive codec for a float32.
func Float[V any]() *ComposedCodec[V, float32] {
	return primitive[V, float32](
		func(a dynamic.FormatAdapter[V], v float32) V { return a.CreateFloat(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[float32] {
			return result.Map(a.GetNumber(v), dynamic.Number.AsFloat)
		},
	)
}

// Double is the primitive codec for a float64.
func Double[V any]() *ComposedCodec[V, float64] {
	return primitive[V, float64](
		func(a dynamic.FormatAdapter[V], v float64) V { return a.CreateDouble(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[float64] {
			return result.Map(a.GetNumber(v), dynamic.Number.AsDouble)
		},
	)
}

// String is the primitive codec for a string.
func String[V any]() *ComposedCodec[V, string] {
	return primitive[V, string](
		func(a dynamic.FormatAdapter[V], v string) V { return a.CreateString(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[string] { return a.GetString(v) },
	)
}

// ByteBuffer is the primitive codec for a byte slice.
func ByteBuffer[V any]() *ComposedCodec[V, []byte] {
	return primitive[V, []byte](
		func(a dynamic.FormatAdapter[V], v []byte) V { return a.CreateByteBuffer(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[[]byte] { return a.GetByteBuffer(v) },
	)
}

// IntList is the primitive codec for a uniform int32 slice.
func IntList[V any]() *ComposedCodec[V, []int32] {
	return primitive[V, []int32](
		func(a dynamic.FormatAdapter[V], v []int32) V { return a.CreateIntList(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[[]int32] { return a.GetIntList(v) },
	)
}

// LongList is the primitive codec for a uniform int64 slice.
func LongList[V any]() *ComposedCodec[V, []int64] {
	return primitive[V, []int64](
		func(a dynamic.FormatAdapter[V], v []int64) V { return a.CreateLongList(v) },
		func(a dynamic.FormatAdapter[V], v V) result.Result[[]int64] { return a.GetLongList(v) },
	)
}

// Unit writes nothing and always decodes to value, regardless of input:
// encode returns prefix unchanged (adapter.Empty() when encoding from
// scratch), and decode leaves the whole input as the remainder.
func Unit[V, A any](value A) *ComposedCodec[V, A] {
	return &ComposedCodec[V, A]{
		Enc: EncoderFunc[V, A](func(_ A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			return result.Success(prefix)
		}),
		Dec: DecoderFunc[V, A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
			return result.Success(Decoded[V, A]{Value: value, Remainder: input})
		}),
	}
}

// Passthrough stores the adapter value unmodified, useful for exercising
// [dynamic.ConvertTo] without a typed intermediate.
func Passthrough[V any]() *ComposedCodec[V, V] {
	return &ComposedCodec[V, V]{
		Enc: EncoderFunc[V, V](func(input V, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			return adapter.MergeIntoPrimitive(prefix, input)
		}),
		Dec: DecoderFunc[V, V](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, V]] {
			return result.Success(Decoded[V, V]{Value: input, Remainder: adapter.Empty()})
		}),
	}
}
