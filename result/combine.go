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

// PromotePartial turns an Error that carries a partial result into a
// Success holding that partial, handing the error message to onMessage as
// a side effect before discarding it. An Error without a partial result is
// returned unchanged (onMessage still runs, since the caller may want to
// log it). A Success passes through untouched.
//
// Example:
//
//	r := result.ErrorWithPartial(3, "field \"b\" missing")
//	ok := result.PromotePartial(r, func(msg string) { log.Print(msg) })
//	// ok == result.Success(3)
func PromotePartial[R any](r Result[R], onMessage func(string)) Result[R] {
	if r.isSuccess {
		return r
	}
	if onMessage != nil && r.message != "" {
		onMessage(r.message)
	}
	if r.hasResult {
		return Result[R]{isSuccess: true, result: r.result, hasResult: true, lifecycle: r.lifecycle}
	}
	return r
}

// WithPartial replaces r's payload while preserving its Success/Error
// shape: a Success becomes a Success of v; an Error becomes an Error whose
// partial is v (message and lifecycle preserved).
func WithPartial[A, B any](r Result[A], v B) Result[B] {
	return Result[B]{isSuccess: r.isSuccess, result: v, hasResult: true, lifecycle: r.lifecycle, message: r.message}
}

// WithCompleteOrPartial replaces r's payload only if r already had one; an
// Error without a partial result stays without one.
func WithCompleteOrPartial[A, B any](r Result[A], v B) Result[B] {
	out := Result[B]{isSuccess: r.isSuccess, hasResult: r.hasResult, lifecycle: r.lifecycle, message: r.message}
	if r.hasResult {
		out.result = v
	}
	return out
}

// AddMessage folds other's message into r's, always returning a Stable
// lifecycle (matching the source's intentional reset: message bookkeeping
// is not itself part of the lifecycle contract).
func AddMessage[R any](r Result[R], other Result[R]) Result[R] {
	return Result[R]{
		isSuccess: r.isSuccess,
		result:    r.result,
		hasResult: r.hasResult,
		lifecycle: lifecycle.Stable,
		message:   mergeMessages(r.message, other.message),
	}
}

// MapError rewrites the message of an Error; a Success passes through
// unchanged.
func MapError[R any](r Result[R], f func(string) string) Result[R] {
	if r.isSuccess {
		return r
	}
	r.message = f(r.message)
	return r
}
