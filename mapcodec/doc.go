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

// Package mapcodec works on map fragments instead of whole adapter
// values: a MapCodec knows how to write its fields into an in-progress
// [dynamic.StructBuilder] and how to read them back out of a
// [dynamic.MapLike], without ever constructing a standalone map value of
// its own. This lets several MapCodecs (e.g. a handful of Field entries
// describing different parts of one struct) share a single builder, and
// lets a key-dispatch sum type fold its discriminator key into the same
// map as its payload fields.
//
// [FromMap] lifts a whole MapCodec into an ordinary [codec.Codec], the
// only point where a map fragment becomes a complete adapter value.
package mapcodec
