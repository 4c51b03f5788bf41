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

// unit is the payload of a predicate's success case: there is nothing to
// report besides "valid".
type unit = struct{}

// Check builds the Result a [Validate] predicate should return: Success
// when ok is true, an Error carrying msg otherwise.
func Check(ok bool, msg string) result.Result[unit] {
	if ok {
		return result.Success(unit{})
	}
	return result.Error[unit](msg)
}

// Validate wraps c with a predicate that runs before encode and after
// decode. A predicate failure turns the whole operation into an Error
// (no partial), carrying the predicate's message.
//
// Example:
//
//	playerName := codec.Validate(codec.String[MyV](), func(s string) result.Result[struct{}] {
//	    return codec.Check(len(s) >= 3 && len(s) <= 16, "name must be 3-16 characters")
//	})
func Validate[V, A any](c Codec[V, A], pred func(A) result.Result[unit]) *ComposedCodec[V, A] {
	return &ComposedCodec[V, A]{
		Enc: EncoderFunc[V, A](func(input A, adapter dynamic.FormatAdapter[V], prefix V) result.Result[V] {
			if check := pred(input); !check.IsSuccess() {
				return result.Error[V](check.Message())
			}
			return c.Encode(input, adapter, prefix)
		}),
		Dec: DecoderFunc[V, A](func(input V, adapter dynamic.FormatAdapter[V]) result.Result[Decoded[V, A]] {
			decoded := c.Decode(input, adapter)
			value, ok := decoded.Result()
			if !ok {
				return decoded
			}
			if check := pred(value.Value); !check.IsSuccess() {
				return result.Error[Decoded[V, A]](check.Message())
			}
			return decoded
		}),
	}
}
