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

// Result[R] is exactly one of:
//
//   - Success: a complete value plus a lifecycle.
//   - Error: a message, a lifecycle, and an optional partial value.
//
// A Success never carries a message; an Error always carries one. The zero
// value of Result is not meaningful — always construct through [Success] or
// [Error] (or another constructor in this package).
type Result[R any] struct {
	isSuccess bool
	result    R
	hasResult bool
	lifecycle lifecycle.Lifecycle
	message   string
}

// IsSuccess reports whether r is a Success.
//
//go:inline
func (r Result[R]) IsSuccess() bool { return r.isSuccess }

// HasResultOrPartial reports whether r carries a usable value: either it is
// a Success, or it is an Error with a partial result attached.
//
//go:inline
func (r Result[R]) HasResultOrPartial() bool { return r.hasResult }

// Lifecycle returns the lifecycle tag carried by r.
func (r Result[R]) Lifecycle() lifecycle.Lifecycle { return r.lifecycle }

// Message returns the error message, or "" for a Success.
func (r Result[R]) Message() string { return r.message }

// PartialResult returns the partial value and true iff r is an Error that
// carries one. For a Success it returns (zero, false): use [Result.Unwrap]
// or [Result.Result] to read a Success's value.
func (r Result[R]) PartialResult() (R, bool) {
	if !r.isSuccess && r.hasResult {
		return r.result, true
	}
	var zero R
	return zero, false
}

// Result returns the Success payload and true, or (zero, false) if r is not
// a Success. Unlike [Result.Unwrap] this never panics.
func (r Result[R]) Result() (R, bool) {
	if r.isSuccess {
		return r.result, true
	}
	var zero R
	return zero, false
}
