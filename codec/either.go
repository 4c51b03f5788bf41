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

	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/result"
)

// Either is a value that is either an L or an R, never both. Exactly one
// of the two fields is populated; IsLeft reports which.
type Either[L, R any] struct {
	left   L
	right  R
	isLeft bool
}

// NewLeft wraps an L.
func NewLeft[L, R any](l L) Either[L, R] { return Either[L, R]{left: l, isLeft: true} }

// NewRight wraps an R.
func NewRight[L, R any](r R) Either[L, R] { return Either[L, R]{right: r} }

// IsLeft reports whether this Either holds an L.
func (e Either[L, R]) IsLeft() bool { return e.isLeft }

// Left returns the L payload and true, or (zero, false) if this is a Right.
func (e Either[L, R]) Left() (L, bool) {
	if e.isLeft {
		return e.left, true
	}
	var zero L
	return zero, false
}

// Right returns the R payload and true, or (zero, false) if this is a Left.
func (e Either[L, R]) Right() (R, bool) {
	if !e.isLeft {
		return e.right, true
	}
	var zero R
	return zero, false
}

// EitherCodec combines a left and a right codec over the same adapter
// value type into a codec for their Either. Encode always writes whichever
// side the Either actually holds. Decode prefers, in order: a full left
// success, a full right success, a partial left, a partial right — only
// failing outright once neither side has a result or a partial to offer.
func EitherCodec[V, L, R any](left Codec[V, L], right Codec[V, R]) *ComposedCodec[V, Either[L, R]] {
	return &ComposedCodec[V, Either[L, R]]{
		Enc: EncoderFunc[V, Either[L, R]](func(input Either[L, R], adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			if l, ok := input.Left(); ok {
				return left.Encode(l, adapter, prefix)
			}
			r, _ := input.Right()
			return right.Encode(r, adapter, prefix)
		}),
		Dec: DecoderFunc[V, Either[L, R]](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, Either[L, R]]] {
			leftDecoded := left.Decode(input, adapter)
			if value, ok := leftDecoded.Result(); ok {
				return result.Success(Decoded[V, Either[L, R]]{
					Value:     NewLeft[L, R](value.Value),
					Remainder: value.Remainder,
				})
			}
			rightDecoded := right.Decode(input, adapter)
			if value, ok := rightDecoded.Result(); ok {
				return result.Success(Decoded[V, Either[L, R]]{
					Value:     NewRight[L, R](value.Value),
					Remainder: value.Remainder,
				})
			}
			if value, ok := leftDecoded.PartialResult(); ok {
				return result.ErrorWithPartial(Decoded[V, Either[L, R]]{
					Value:     NewLeft[L, R](value.Value),
					Remainder: value.Remainder,
				}, leftDecoded.Message())
			}
			if value, ok := rightDecoded.PartialResult(); ok {
				return result.ErrorWithPartial(Decoded[V, Either[L, R]]{
					Value:     NewRight[L, R](value.Value),
					Remainder: value.Remainder,
				}, rightDecoded.Message())
			}
			return result.Error[Decoded[V, Either[L, R]]](
				fmt.Sprintf("Failed to parse either. First: %s; Second: %s", leftDecoded.Message(), rightDecoded.Message()),
			)
		}),
	}
}
