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

package structcodec

import (
	"fmt"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/lifecycle"
	"github.com/dfu-go/dfu/mapcodec"
	"github.com/dfu-go/dfu/result"
)

// KeyDispatchable is implemented by a sum type whose variant is
// recoverable from the value itself, letting [DispatchSelf] skip a
// separate typeOf function.
type KeyDispatchable[K any] interface {
	// TypeKey returns the discriminator identifying which variant this
	// value is.
	TypeKey() K
}

// keyDispatchMapCodec is the MapCodec a key-dispatched sum type lowers
// to: it writes/reads the discriminator under keyName, then delegates
// the remaining fields to whichever variant MapCodec codecFor names.
// Every variant is a struct-shaped MapCodec (built by Codec1..Codec16);
// a scalar payload variant is out of scope for this implementation — see
// the design notes for why.
type keyDispatchMapCodec[V, T, K any] struct {
	keyName  string
	keyCodec codec.Codec[V, K]
	typeOf   func(T) K
	codecFor func(K) (mapcodec.MapCodec[V, T], error)
	keys     []string
}

func (d keyDispatchMapCodec[V, T, K]) Keys() []string {
	return d.keys
}

func (d keyDispatchMapCodec[V, T, K]) EncodeInto(t T, adapter dynamic.FormatAdapter[V], builder dynamic.StructBuilder[V]) dynamic.StructBuilder[V] {
	k := d.typeOf(t)
	builder = builder.AddStringKeyValueResult(d.keyName, d.keyCodec.Encode(k, adapter, adapter.Empty()))
	variant, err := d.codecFor(k)
	if err != nil {
		return builder.MergeMessage(err.Error(), lifecycle.Experimental)
	}
	return variant.EncodeInto(t, adapter, builder)
}

func (d keyDispatchMapCodec[V, T, K]) DecodeFrom(m dynamic.MapLike[V], adapter dynamic.FormatAdapter[V]) result.Result[T] {
	raw, ok := m.GetStr(d.keyName)
	if !ok {
		return result.Error[T](missingDispatchKey(d.keyName))
	}
	k, ok := codec.Parse(d.keyCodec, raw, adapter).Result()
	if !ok {
		return result.Error[T](fmt.Sprintf("malformed discriminator %q", d.keyName))
	}
	variant, err := d.codecFor(k)
	if err != nil {
		return result.Error[T](invalidDifferentiatorValue(k))
	}
	return variant.DecodeFrom(m, adapter)
}

func invalidDifferentiatorValue[K any](k K) string {
	return fmt.Sprintf("Invalid differentiator value %v", k)
}

func missingDispatchKey(name string) string {
	return fmt.Sprintf("missing discriminator key: %s", name)
}

// Dispatch builds a Codec for a sum type T keyed by a single discriminator
// field. typeOf extracts the discriminator from an already-built T;
// codecFor maps a discriminator back to the MapCodec responsible for that
// variant's remaining fields (returning an error for an unknown key).
//
// variantKeys must list every key any variant's MapCodec.Keys() can
// return, across all variants — it seeds the shared KeyCompressor a
// compressed-map adapter needs, since the compressor has to be sized
// before any particular variant is known.
func Dispatch[V, T, K any](
	keyName string,
	keyCodec codec.Codec[V, K],
	typeOf func(T) K,
	codecFor func(K) (mapcodec.MapCodec[V, T], error),
	variantKeys []string,
) *codec.ComposedCodec[V, T] {
	keys := append([]string{keyName}, variantKeys...)
	return mapcodec.FromMap[V, T](keyDispatchMapCodec[V, T, K]{
		keyName:  keyName,
		keyCodec: keyCodec,
		typeOf:   typeOf,
		codecFor: codecFor,
		keys:     keys,
	})
}

// DispatchSelf is Dispatch for a T that implements KeyDispatchable[K]
// itself, so there is no separate typeOf to pass.
func DispatchSelf[V any, T KeyDispatchable[K], K any](
	keyName string,
	keyCodec codec.Codec[V, K],
	codecFor func(K) (mapcodec.MapCodec[V, T], error),
	variantKeys []string,
) *codec.ComposedCodec[V, T] {
	return Dispatch[V, T, K](keyName, keyCodec, func(t T) K { return t.TypeKey() }, codecFor, variantKeys)
}
