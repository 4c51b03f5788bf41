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

import "fmt"

// Unwrap returns the Success value or panics with the error message. It
// never returns a partial: use [Result.UnwrapOrPartial] when a best-effort
// value is acceptable.
//
// Source ambiguity noted in the design notes: some call sites in the
// original appear to expect a partial-aware unwrap from a method also
// named "unwrap". This port keeps the two behaviors under distinct names
// so callers must opt into accepting a partial.
func (r Result[R]) Unwrap() R {
	if r.isSuccess {
		return r.result
	}
	panic(fmt.Sprintf("Result.Unwrap called on Error: %s", r.message))
}

// UnwrapOrPartial returns the Success value, or the partial value of an
// Error that has one, or panics if neither is available.
func (r Result[R]) UnwrapOrPartial() R {
	if r.hasResult {
		return r.result
	}
	panic(fmt.Sprintf("Result.UnwrapOrPartial called on Error with no partial: %s", r.message))
}

// UnwrapOr returns the Success value, or the partial value if present, or
// fallback otherwise. It never panics.
func (r Result[R]) UnwrapOr(fallback R) R {
	if r.hasResult {
		return r.result
	}
	return fallback
}
