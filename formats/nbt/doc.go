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

// Package nbt is a reference [dynamic.FormatAdapter] over a Minecraft-style
// NBT tag union: End, Byte, Short, Int, Long, Float, Double, ByteArray,
// String, List, Compound, IntArray, LongArray. Unlike formats/json, NBT
// lists are homogeneous by construction, so a codec that asks this
// adapter's builder to append mismatched tag kinds into one list does not
// get an error — it gets re-classified on the fly by a list collector
// (see listcollector.go) that starts as a packed numeric array or a
// same-kind tag list, depending on the first element, and turns into a
// heterogeneous list of single-key "" compounds as soon as a second kind
// is appended.
//
// Grounded on pumpkin-nbt's nbt_ops.rs (see original_source), reshaped
// into this module's Tag/FormatAdapter/StructBuilder idiom the way
// internal/testutil's in-memory adapter reshapes a plain tree into the
// same interfaces.
package nbt
