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

	"github.com/dfu-go/dfu/result"
)

// IntRange restricts Int to the inclusive bound [min, max], rejecting
// values outside it on both encode and decode.
func IntRange[V any](min, max int32) *ComposedCodec[V, int32] {
	return Validate(Int[V](), func(v int32) result.Result[unit] {
		return Check(v >= min && v <= max, fmt.Sprintf("value %d outside of range [%d, %d]", v, min, max))
	})
}

// IntRangeWithMinimum restricts Int to [min, math.MaxInt32], the one-sided
// variant used when a field only needs a floor (e.g. a count that can't
// be negative).
func IntRangeWithMinimum[V any](min int32) *ComposedCodec[V, int32] {
	return IntRange[V](min, math.MaxInt32)
}

// IntRangeWithMaximum restricts Int to [math.MinInt32, max].
func IntRangeWithMaximum[V any](max int32) *ComposedCodec[V, int32] {
	return IntRange[V](math.MinInt32, max)
}

// FloatRange restricts Float to the inclusive bound [min, max].
func FloatRange[V any](min, max float32) *ComposedCodec[V, float32] {
	return Validate(Float[V](), func(v float32) result.Result[unit] {
		return Check(v >= min && v <= max, fmt.Sprintf("value %f outside of range [%f, %f]", v, min, max))
	})
}

// FloatRangeWithMinimum restricts Float to [min, +Inf).
func FloatRangeWithMinimum[V any](min float32) *ComposedCodec[V, float32] {
	return FloatRange[V](min, math.MaxFloat32)
}

// FloatRangeWithMaximum restricts Float to (-Inf, max].
func FloatRangeWithMaximum[V any](max float32) *ComposedCodec[V, float32] {
	return FloatRange[V](-math.MaxFloat32, max)
}

// DoubleRange restricts Double to the inclusive bound [min, max].
func DoubleRange[V any](min, max float64) *ComposedCodec[V, float64] {
	return Validate(Double[V](), func(v float64) result.Result[unit] {
		return Check(v >= min && v <= max, fmt.Sprintf("value %f outside of range [%f, %f]", v, min, max))
	})
}

// DoubleRangeWithMinimum restricts Double to [min, +Inf).
func DoubleRangeWithMinimum[V any](min float64) *ComposedCodec[V, float64] {
	return DoubleRange[V](min, math.MaxFloat64)
}

// DoubleRangeWithMaximum restricts Double to (-Inf, max].
func DoubleRangeWithMaximum[V any](max float64) *ComposedCodec[V, float64] {
	return DoubleRange[V](-math.MaxFloat64, max)
}
