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

package mapcodec

import (
	"reflect"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/result"
)

// Field describes one named key of a struct codec: how to read its value
// out of T (for encode) and how to parse it back (for decode). It is not
// itself a MapCodec — structcodec combines several Fields, each
// contributing one key, into a MapCodec[V, T] for the whole struct.
type Field[V, T, A any] struct {
	name       string
	codec      codec.Codec[V, A]
	get        func(T) A
	optional   bool
	lenient    bool
	hasDefault bool
	defaultVal A
}

// NewField declares a required field: absent or mistyped is always an
// error.
func NewField[V, T, A any](name string, c codec.Codec[V, A], get func(T) A) Field[V, T, A] {
	return Field[V, T, A]{name: name, codec: c, get: get}
}

// OptionalFieldWithDefault declares a field that falls back to def when
// absent. A present-but-mistyped value is still a decode error.
func OptionalFieldWithDefault[V, T, A any](name string, c codec.Codec[V, A], get func(T) A, def A) Field[V, T, A] {
	return Field[V, T, A]{name: name, codec: c, get: get, optional: true, hasDefault: true, defaultVal: def}
}

// LenientOptionalFieldWithDefault is OptionalFieldWithDefault, except a
// present-but-mistyped value also falls back to def instead of failing
// the whole struct decode. This is the resolved behavior for a lenient
// optional field: a malformed optional value degrades to its default
// rather than poisoning the rest of the struct.
func LenientOptionalFieldWithDefault[V, T, A any](name string, c codec.Codec[V, A], get func(T) A, def A) Field[V, T, A] {
	f := OptionalFieldWithDefault[V, T, A](name, c, get, def)
	f.lenient = true
	return f
}

// OptionalField is OptionalFieldWithDefault using A's zero value as the
// default.
func OptionalField[V, T, A any](name string, c codec.Codec[V, A], get func(T) A) Field[V, T, A] {
	var zero A
	return OptionalFieldWithDefault[V, T, A](name, c, get, zero)
}

// LenientOptionalField is LenientOptionalFieldWithDefault using A's zero
// value as the default.
func LenientOptionalField[V, T, A any](name string, c codec.Codec[V, A], get func(T) A) Field[V, T, A] {
	var zero A
	return LenientOptionalFieldWithDefault[V, T, A](name, c, get, zero)
}

// FieldOf is an alias for NewField, read as "field of name on codec c".
func FieldOf[V, T, A any](name string, c codec.Codec[V, A], get func(T) A) Field[V, T, A] {
	return NewField[V, T, A](name, c, get)
}

// Name returns the key this field occupies.
func (f Field[V, T, A]) Name() string { return f.name }

// EncodeInto writes this field's value (extracted from t) into builder
// under its key. An optional field whose current value equals its
// default is omitted entirely, matching the original's sparse-field
// serialization.
func (f Field[V, T, A]) EncodeInto(t T, adapter dynamic.FormatAdapter[V], builder dynamic.StructBuilder[V]) dynamic.StructBuilder[V] {
	value := f.get(t)
	if f.optional && reflect.DeepEqual(value, f.defaultVal) {
		return builder
	}
	return builder.AddStringKeyValueResult(f.name, f.codec.Encode(value, adapter, adapter.Empty()))
}

// DecodeValue reads this field's value out of m, applying the
// required/optional/lenient rules described on the constructors above.
func (f Field[V, T, A]) DecodeValue(m dynamic.MapLike[V], adapter dynamic.FormatAdapter[V]) result.Result[A] {
	raw, ok := m.GetStr(f.name)
	if !ok {
		if f.optional {
			return result.Success(f.defaultVal)
		}
		return result.Error[A](missingKey(f.name))
	}
	decoded := codec.Parse(f.codec, raw, adapter)
	if decoded.IsSuccess() {
		return decoded
	}
	if f.optional && f.lenient {
		return result.Success(f.defaultVal)
	}
	return decoded
}
