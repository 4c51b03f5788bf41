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

// Map applies f to the Success's result, and to the Error's partial result
// if one is present. Lifecycle and message are preserved unchanged.
//
// Example:
//
//	result.Map(result.Success(21), func(n int) int { return n * 2 }) // Success(42)
func Map[A, B any](r Result[A], f func(A) B) Result[B] {
	out := Result[B]{isSuccess: r.isSuccess, hasResult: r.hasResult, lifecycle: r.lifecycle, message: r.message}
	if r.hasResult {
		out.result = f(r.result)
	}
	return out
}
