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

package result

import "github.com/dfu-go/dfu/lifecycle"

// Success constructs a complete Result, tagged Experimental by default (a
// codec chain "rots" toward Experimental unless a combinator explicitly
// marks it Stable).
//
// Example:
//
//	result.Success(42) // Success(42), Experimental
func Success[R any](r R) Result[R] {
	return Result[R]{isSuccess: true, result: r, hasResult: true, lifecycle: lifecycle.Experimental}
}

// SuccessWithLifecycle constructs a Success carrying an explicit lifecycle.
func SuccessWithLifecycle[R any](r R, l lifecycle.Lifecycle) Result[R] {
	return Result[R]{isSuccess: true, result: r, hasResult: true, lifecycle: l}
}

// Error constructs an Error with no partial value.
//
// Example:
//
//	result.Error[int]("not a number")
func Error[R any](message string) Result[R] {
	return Result[R]{lifecycle: lifecycle.Experimental, message: message}
}

// ErrorWithPartial constructs an Error that carries a best-effort partial
// value, letting upstream composites keep computing.
func ErrorWithPartial[R any](partial R, message string) Result[R] {
	return Result[R]{result: partial, hasResult: true, lifecycle: lifecycle.Experimental, message: message}
}

// ErrorWithLifecycle constructs a partial-less Error with an explicit
// lifecycle.
func ErrorWithLifecycle[R any](message string, l lifecycle.Lifecycle) Result[R] {
	return Result[R]{lifecycle: l, message: message}
}

// ErrorWithPartialAndLifecycle constructs a partial-carrying Error with an
// explicit lifecycle, for composites (like [dynamic.StructBuilder]) that
// track their own merged lifecycle rather than defaulting to Experimental.
func ErrorWithPartialAndLifecycle[R any](partial R, message string, l lifecycle.Lifecycle) Result[R] {
	return Result[R]{result: partial, hasResult: true, lifecycle: l, message: message}
}
