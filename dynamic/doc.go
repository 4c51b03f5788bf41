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

// Package dynamic defines the pluggable bridge between the codec core and a
// concrete tree-shaped serialization format: [Number], [MapLike],
// [FormatAdapter], and [StructBuilder].
//
// A codec never touches JSON, NBT, or any other concrete representation
// directly. Instead every codec is generic over an opaque value type V and
// is handed a FormatAdapter[V] that knows how to construct, extract, and
// merge values of that format. This is what lets the same Codec[A] encode
// to JSON in one call and to NBT in the next.
package dynamic
