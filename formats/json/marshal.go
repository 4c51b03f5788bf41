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

package json

import (
	"encoding/json"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/result"
)

// Marshal wraps the standard library's json.Marshal, turning its
// (value, error) return into a Result the rest of this module's error
// handling composes with.
func Marshal(v any) result.Result[[]byte] {
	data, err := json.Marshal(v)
	if err != nil {
		return result.Error[[]byte](err.Error())
	}
	return result.Success(data)
}

// Unmarshal parses JSON text into the same map[string]any / []any / etc
// shape Adapter's Create* methods produce, ready to decode through a
// Codec.
func Unmarshal(data []byte) result.Result[any] {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return result.Error[any](err.Error())
	}
	return result.Success(v)
}

// EncodeToBytes runs c.Encode against a fresh Adapter and marshals the
// resulting tree to JSON text in one step.
func EncodeToBytes[A any](c codec.Encoder[any, A], value A, cfg Config) result.Result[[]byte] {
	adapter := New(cfg)
	encoded := codec.EncodeStart(c, value, adapter)
	return result.FlatMap(encoded, Marshal)
}

// DecodeFromBytes parses JSON text and decodes it through c in one step.
func DecodeFromBytes[A any](c codec.Decoder[any, A], data []byte, cfg Config) result.Result[A] {
	adapter := New(cfg)
	return result.FlatMap(Unmarshal(data), func(tree any) result.Result[A] {
		return codec.Parse(c, tree, adapter)
	})
}
