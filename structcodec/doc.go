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

// Package structcodec builds a full Codec for a Go struct from a list of
// mapcodec.Field values and a constructor function, one Codec{n} per
// field count from 1 through 16 — the same arity-per-function technique
// result.Apply{n} uses, since a method cannot introduce new type
// parameters beyond its receiver's own.
//
// Example:
//
//	type Item struct {
//	    ID    string
//	    Count int32
//	}
//
//	itemCodec := structcodec.Codec2(
//	    mapcodec.NewField[MyV, Item, string]("id", codec.String[MyV](), func(i Item) string { return i.ID }),
//	    mapcodec.OptionalFieldWithDefault[MyV, Item, int32]("count", codec.Int[MyV](), func(i Item) int32 { return i.Count }, 1),
//	    func(id string, count int32) Item { return Item{ID: id, Count: count} },
//	)
package structcodec
