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

// ConvertTo recursively rebuilds a value from one FormatAdapter's shape
// into another's, trying each extractor in turn (bool, number, string,
// map, list) and falling back to Empty() if nothing matches.
//
// This is a free function rather than a FormatAdapter method because Go
// methods cannot introduce a new type parameter (U) beyond the receiver's
// own (V); see the module's design notes on dynamic dispatch over V.
//
// Numeric promotion: an integer is rebuilt using the smallest width that
// round-trips losslessly (Byte, then Short, then Int, then Long); a float
// narrows to Float iff doing so is exact, otherwise it stays Double.
func ConvertTo[V, U any](in FormatAdapter[V], out FormatAdapter[U], v V) U {
	if b := in.GetBool(v); b.IsSuccess() {
		return out.CreateBool(b.Unwrap())
	}
	if n := in.GetNumber(v); n.IsSuccess() {
		return convertNumber(out, n.Unwrap())
	}
	if s := in.GetString(v); s.IsSuccess() {
		return out.CreateString(s.Unwrap())
	}
	if m := in.GetMap(v); m.IsSuccess() {
		return convertMap(in, out, m.Unwrap())
	}
	if l := in.GetIter(v); l.IsSuccess() {
		return convertList(in, out, l.Unwrap())
	}
	return out.Empty()
}

func convertNumber[U any](out FormatAdapter[U], n Number) U {
	switch n.Kind() {
	case KindByte, KindShort, KindInt, KindLong:
		l := n.AsLong()
		switch {
		case l == int64(int8(l)):
			return out.CreateByte(int8(l))
		case l == int64(int16(l)):
			return out.CreateShort(int16(l))
		case l == int64(int32(l)):
			return out.CreateInt(int32(l))
		default:
			return out.CreateLong(l)
		}
	case KindFloat:
		return out.CreateFloat(n.AsFloat())
	default:
		d := n.AsDouble()
		f := float32(d)
		if float64(f) == d {
			return out.CreateFloat(f)
		}
		return out.CreateDouble(d)
	}
}

// convertList rebuilds a list value.
func convertList[V, U any](in FormatAdapter[V], out FormatAdapter[U], items []V) U {
	converted := make([]U, len(items))
	for i, it := range items {
		converted[i] = ConvertTo(in, out, it)
	}
	return out.CreateList(converted)
}

// convertMap rebuilds a map value by recursively converting both keys and
// values.
func convertMap[V, U any](in FormatAdapter[V], out FormatAdapter[U], m MapLike[V]) U {
	entries := m.Entries()
	converted := make([]Pair[U], len(entries))
	for i, e := range entries {
		converted[i] = Pair[U]{Key: ConvertTo(in, out, e.Key), Value: ConvertTo(in, out, e.Value)}
	}
	return out.CreateMap(converted)
}
