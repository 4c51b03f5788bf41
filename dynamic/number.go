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

package dynamic

// NumberKind discriminates the six numeric widths a FormatAdapter value
// may carry.
type NumberKind uint8

const (
	KindByte NumberKind = iota
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
)

// Number is a tagged numeric value. Every FormatAdapter numeric extractor
// returns one so that codecs can request the width they need without the
// adapter needing to know ahead of time which width the caller wants.
type Number struct {
	kind   NumberKind
	byte_  int8
	short_ int16
	int_   int32
	long_  int64
	float_ float32
	double_ float64
}

func NewByte(v int8) Number   { return Number{kind: KindByte, byte_: v} }
func NewShort(v int16) Number { return Number{kind: KindShort, short_: v} }
func NewInt(v int32) Number   { return Number{kind: KindInt, int_: v} }
func NewLong(v int64) Number  { return Number{kind: KindLong, long_: v} }
func NewFloat(v float32) Number  { return Number{kind: KindFloat, float_: v} }
func NewDouble(v float64) Number { return Number{kind: KindDouble, double_: v} }

// Kind reports which width this Number natively carries.
func (n Number) Kind() NumberKind { return n.kind }

// asInt64 widens whatever this Number holds to an int64, the common base
// for narrowing conversions below.
func (n Number) asInt64() int64 {
	switch n.kind {
	case KindByte:
		return int64(n.byte_)
	case KindShort:
		return int64(n.short_)
	case KindInt:
		return int64(n.int_)
	case KindLong:
		return n.long_
	case KindFloat:
		return int64(n.float_)
	default:
		return int64(n.double_)
	}
}

func (n Number) asFloat64() float64 {
	switch n.kind {
	case KindByte:
		return float64(n.byte_)
	case KindShort:
		return float64(n.short_)
	case KindInt:
		return float64(n.int_)
	case KindLong:
		return float64(n.long_)
	case KindFloat:
		return float64(n.float_)
	default:
		return n.double_
	}
}

// AsByte narrows following Java semantics: truncate to int32 first, then
// to int8.
func (n Number) AsByte() int8 {
	return int8(int32(n.asInt64()))
}

// AsShort narrows following Java semantics: truncate to int32 first, then
// to int16.
func (n Number) AsShort() int16 {
	return int16(int32(n.asInt64()))
}

// AsInt is a direct cast to int32 (no intermediate step beyond int64).
func (n Number) AsInt() int32 {
	return int32(n.asInt64())
}

// AsLong is a direct cast to int64.
func (n Number) AsLong() int64 {
	return n.asInt64()
}

// AsFloat is a direct cast to float32.
func (n Number) AsFloat() float32 {
	return float32(n.asFloat64())
}

// AsDouble is a direct cast to float64.
func (n Number) AsDouble() float64 {
	return n.asFloat64()
}
