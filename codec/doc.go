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

// Package codec is the Encoder/Decoder/Codec hierarchy and its
// combinators: transformer wrappers (XMap, ComapFlatMap, FlatMapComap,
// FlatXMap, Validate, Lazy), container codecs (List, ranges, Either), and
// the primitive codecs every FormatAdapter must round-trip (Bool,
// integers, floats, String, byte buffers, int/long lists).
//
// Every type here is parameterized by the adapter's opaque value type V in
// addition to the in-memory type A, because Go methods cannot introduce a
// type parameter beyond their receiver's own — see the module's design
// notes on dynamic dispatch over V. A single instantiation of Codec[V, A]
// is therefore tied to one concrete FormatAdapter's value type, the same
// way a Rust trait object bound to one concrete Val would be; the library
// stays format-independent because every combinator in this package is
// itself generic over V, so the exact same construction logic (List,
// XMap, Validate, ...) is reused verbatim to build a JSON-flavored codec
// set and an NBT-flavored one from the same source.
package codec
