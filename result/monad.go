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

// mergeMessages concatenates two error messages with "; ", skipping either
// side if empty.
func mergeMessages(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "; " + b
	}
}

// FlatMap chains a dependent Result-producing computation.
//
//   - If r is a Success, f runs on its result; the lifecycles combine via
//     [lifecycle.Lifecycle.Add].
//   - If r is an Error with a partial result, f runs on that partial; the
//     messages concatenate with "; " and the lifecycles combine.
//   - If r is an Error without a partial result, r is returned unchanged
//     (f never runs).
//
// Example:
//
//	result.FlatMap(result.Success(4), func(n int) result.Result[int] {
//	    return result.Success(n + 1)
//	}) // Success(5)
func FlatMap[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.isSuccess {
		next := f(r.result)
		return Result[B]{
			isSuccess: next.isSuccess,
			result:    next.result,
			hasResult: next.hasResult,
			lifecycle: r.lifecycle.Add(next.lifecycle),
			message:   next.message,
		}
	}
	if !r.hasResult {
		var zero B
		return Result[B]{result: zero, lifecycle: r.lifecycle, message: r.message}
	}
	next := f(r.result)
	return Result[B]{
		isSuccess: false,
		result:    next.result,
		hasResult: next.hasResult,
		lifecycle: r.lifecycle.Add(next.lifecycle),
		message:   mergeMessages(r.message, next.message),
	}
}

// Chain is an alias for FlatMap matching the teacher's either.Chain naming.
func Chain[A, B any](f func(A) Result[B]) func(Result[A]) Result[B] {
	return func(r Result[A]) Result[B] { return FlatMap(r, f) }
}
