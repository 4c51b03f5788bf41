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

// Package result provides the outcome type shared by every codec operation
// in this module: a three-shape value that is either a complete Success, a
// best-effort Error carrying a partial result, or a hard Error with no
// usable value at all.
//
// Result replaces exceptions and nullable partials (see the module's
// design notes) with an explicit, inspectable sum type every caller must
// pattern-match or fold. Every Result also carries a [lifecycle.Lifecycle]
// tag that composite operations merge through [lifecycle.Lifecycle.Add].
//
// # Basic usage
//
//	r := result.Success(42)
//	r2 := result.Map(r, func(n int) int { return n * 2 })
//	v := r2.Unwrap()
//
// # Partial results
//
// A decoder that partially succeeds (e.g. three of four struct fields
// decoded) returns an Error whose PartialResult is set; callers that want
// best-effort behavior use [PromotePartial] or
// [Result.UnwrapOrPartial] instead of panicking on the first error.
//
// # Applicative composition
//
// [Apply2] through [Apply16] combine N independent Results into one,
// accumulating error messages and computing a partial whenever every input
// produced at least a partial value. This is how struct codecs combine
// their per-field decode results (see the structcodec package).
package result
