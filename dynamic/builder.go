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

import (
	"github.com/dfu-go/dfu/keycompressor"
	"github.com/dfu-go/dfu/lifecycle"
	"github.com/dfu-go/dfu/result"
)

// StructBuilder is the fluent, error-accumulating accumulator a
// FormatAdapter hands out for assembling a map-shaped value. Every
// "Add*" method returns the builder itself so calls chain; errors
// accumulate internally instead of aborting the chain, mirroring how a
// struct codec must keep encoding every field even after one fails so the
// caller sees every problem at once.
type StructBuilder[V any] interface {
	AddKeyValue(k, v V) StructBuilder[V]
	AddKeyValueResult(k V, v result.Result[V]) StructBuilder[V]
	AddKeyResultValueResult(k result.Result[V], v result.Result[V]) StructBuilder[V]
	AddStringKeyValue(k string, v V) StructBuilder[V]
	AddStringKeyValueResult(k string, v result.Result[V]) StructBuilder[V]
	// MergeMessage folds an unrelated Result's message/lifecycle into the
	// builder without touching its entries. This is how
	// with_errors_from(&Result<T>) is expressed in Go: T need not be V,
	// so it cannot be a type parameter of this interface's method — call
	// sites use the free function [WithErrorsFrom] instead.
	MergeMessage(message string, l lifecycle.Lifecycle) StructBuilder[V]
	SetLifecycle(l lifecycle.Lifecycle) StructBuilder[V]
	MapError(f func(string) string) StructBuilder[V]
	Build(prefix V) result.Result[V]
}

// WithErrorsFrom merges r's message and lifecycle into b without adding
// any entries, regardless of the payload type r carries.
func WithErrorsFrom[V, T any](b StructBuilder[V], r result.Result[T]) StructBuilder[V] {
	if r.IsSuccess() {
		return b.SetLifecycle(r.Lifecycle())
	}
	return b.MergeMessage(r.Message(), r.Lifecycle())
}

// universalBuilder is the native-map backing used whenever the adapter
// does not request key compression.
type universalBuilder[V any] struct {
	adapter   FormatAdapter[V]
	keyStr    func(V) (string, bool)
	entries   []Pair[V]
	lifecycle lifecycle.Lifecycle
	hasError  bool
	message   string
}

// NewUniversalBuilder returns the ordinary map-entries StructBuilder. An
// adapter's MapBuilder implementation calls this when CompressMaps() is
// false.
func NewUniversalBuilder[V any](adapter FormatAdapter[V], keyStr func(V) (string, bool)) StructBuilder[V] {
	return &universalBuilder[V]{adapter: adapter, keyStr: keyStr, lifecycle: lifecycle.Stable}
}

func (b *universalBuilder[V]) AddKeyValue(k, v V) StructBuilder[V] {
	b.entries = append(b.entries, Pair[V]{Key: k, Value: v})
	return b
}

func (b *universalBuilder[V]) AddStringKeyValue(k string, v V) StructBuilder[V] {
	return b.AddKeyValue(b.adapter.CreateString(k), v)
}

func (b *universalBuilder[V]) AddKeyValueResult(k V, v result.Result[V]) StructBuilder[V] {
	b.absorb(v.Lifecycle(), v.Message(), v.IsSuccess())
	if val, ok := v.PartialResult(); ok {
		return b.AddKeyValue(k, val)
	}
	if v.IsSuccess() {
		return b.AddKeyValue(k, v.Unwrap())
	}
	return b
}

func (b *universalBuilder[V]) AddStringKeyValueResult(k string, v result.Result[V]) StructBuilder[V] {
	return b.AddKeyValueResult(b.adapter.CreateString(k), v)
}

func (b *universalBuilder[V]) AddKeyResultValueResult(k result.Result[V], v result.Result[V]) StructBuilder[V] {
	combined := result.Apply2(func(kv, vv V) Pair[V] { return Pair[V]{Key: kv, Value: vv} }, k, v)
	b.absorb(combined.Lifecycle(), combined.Message(), combined.IsSuccess())
	if pair, ok := combined.PartialResult(); ok {
		return b.AddKeyValue(pair.Key, pair.Value)
	}
	if combined.IsSuccess() {
		pair := combined.Unwrap()
		return b.AddKeyValue(pair.Key, pair.Value)
	}
	return b
}

func (b *universalBuilder[V]) MergeMessage(message string, l lifecycle.Lifecycle) StructBuilder[V] {
	b.absorb(l, message, message == "")
	return b
}

func (b *universalBuilder[V]) SetLifecycle(l lifecycle.Lifecycle) StructBuilder[V] {
	b.lifecycle = b.lifecycle.Add(l)
	return b
}

func (b *universalBuilder[V]) MapError(f func(string) string) StructBuilder[V] {
	if b.hasError {
		b.message = f(b.message)
	}
	return b
}

func (b *universalBuilder[V]) absorb(l lifecycle.Lifecycle, message string, ok bool) {
	b.lifecycle = b.lifecycle.Add(l)
	if ok {
		return
	}
	b.hasError = true
	if b.message == "" {
		b.message = message
	} else if message != "" {
		b.message = b.message + "; " + message
	}
}

func (b *universalBuilder[V]) Build(prefix V) result.Result[V] {
	base := prefix
	if b.adapter.Equal(prefix, b.adapter.Empty()) {
		base = b.adapter.EmptyMap()
	}
	for _, e := range b.entries {
		base = b.adapter.MergeIntoMap(base, e.Key, e.Value)
	}
	if !b.hasError {
		return result.SuccessWithLifecycle(base, b.lifecycle)
	}
	return result.ErrorWithPartialAndLifecycle(base, b.message, b.lifecycle)
}

// compressedBuilder writes into a fixed-size, compressor-indexed slice
// instead of an ordered entry list, backing the "compressed map as list"
// representation from the key-compression subsystem.
type compressedBuilder[V any] struct {
	adapter    FormatAdapter[V]
	compressor *keycompressor.KeyCompressor
	values     []V
	written    []bool
	lifecycle  lifecycle.Lifecycle
	hasError   bool
	message    string
}

// NewCompressedBuilder returns a StructBuilder backed by an indexed slice
// sized to c.Size(). An adapter's CompressedMapBuilder implementation
// calls this; a MapCodec asks for that builder when CompressMaps() is true.
func NewCompressedBuilder[V any](adapter FormatAdapter[V], c *keycompressor.KeyCompressor) StructBuilder[V] {
	size := c.Size()
	return &compressedBuilder[V]{
		adapter:    adapter,
		compressor: c,
		values:     make([]V, size),
		written:    make([]bool, size),
		lifecycle:  lifecycle.Stable,
	}
}

func (b *compressedBuilder[V]) writeAt(idx int, v V) {
	if idx < 0 {
		return
	}
	if idx >= len(b.values) {
		grown := make([]V, idx+1)
		copy(grown, b.values)
		b.values = grown
		grownW := make([]bool, idx+1)
		copy(grownW, b.written)
		b.written = grownW
	}
	b.values[idx] = v
	b.written[idx] = true
}

func (b *compressedBuilder[V]) AddKeyValue(k, v V) StructBuilder[V] {
	return b.AddStringKeyValue(b.adapter.String(k), v)
}

func (b *compressedBuilder[V]) AddStringKeyValue(k string, v V) StructBuilder[V] {
	b.writeAt(b.compressor.Index(k), v)
	return b
}

func (b *compressedBuilder[V]) AddKeyValueResult(k V, v result.Result[V]) StructBuilder[V] {
	return b.AddStringKeyValueResult(b.adapter.String(k), v)
}

func (b *compressedBuilder[V]) AddStringKeyValueResult(k string, v result.Result[V]) StructBuilder[V] {
	b.absorb(v.Lifecycle(), v.Message(), v.IsSuccess())
	if val, ok := v.PartialResult(); ok {
		return b.AddStringKeyValue(k, val)
	}
	if v.IsSuccess() {
		return b.AddStringKeyValue(k, v.Unwrap())
	}
	return b
}

func (b *compressedBuilder[V]) AddKeyResultValueResult(k result.Result[V], v result.Result[V]) StructBuilder[V] {
	combined := result.Apply2(func(kv, vv V) Pair[V] { return Pair[V]{Key: kv, Value: vv} }, k, v)
	b.absorb(combined.Lifecycle(), combined.Message(), combined.IsSuccess())
	if pair, ok := combined.PartialResult(); ok {
		return b.AddKeyValue(pair.Key, pair.Value)
	}
	if combined.IsSuccess() {
		pair := combined.Unwrap()
		return b.AddKeyValue(pair.Key, pair.Value)
	}
	return b
}

func (b *compressedBuilder[V]) MergeMessage(message string, l lifecycle.Lifecycle) StructBuilder[V] {
	b.absorb(l, message, message == "")
	return b
}

func (b *compressedBuilder[V]) SetLifecycle(l lifecycle.Lifecycle) StructBuilder[V] {
	b.lifecycle = b.lifecycle.Add(l)
	return b
}

func (b *compressedBuilder[V]) MapError(f func(string) string) StructBuilder[V] {
	if b.hasError {
		b.message = f(b.message)
	}
	return b
}

func (b *compressedBuilder[V]) absorb(l lifecycle.Lifecycle, message string, ok bool) {
	b.lifecycle = b.lifecycle.Add(l)
	if ok {
		return
	}
	b.hasError = true
	if b.message == "" {
		b.message = message
	} else if message != "" {
		b.message = b.message + "; " + message
	}
}

func (b *compressedBuilder[V]) Build(prefix V) result.Result[V] {
	empty := b.adapter.Empty()
	for i := range b.values {
		if !b.written[i] {
			b.values[i] = empty
		}
	}
	list := b.adapter.CreateList(b.values)
	merged := b.adapter.MergeIntoPrimitive(prefix, list)
	if !b.hasError {
		return result.Map(merged, func(v V) V { return v })
	}
	if v, ok := merged.PartialResult(); ok {
		return result.ErrorWithPartialAndLifecycle(v, b.message, b.lifecycle.Add(merged.Lifecycle()))
	}
	if merged.IsSuccess() {
		return result.ErrorWithPartialAndLifecycle(merged.Unwrap(), b.message, b.lifecycle.Add(merged.Lifecycle()))
	}
	return merged
}
