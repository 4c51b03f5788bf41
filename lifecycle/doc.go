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

// Package lifecycle provides the three-state maturity marker that every
// codec [result.Result] carries: Stable, Experimental, or Deprecated(since).
//
// Lifecycle forms a commutative monoid under Add: Experimental is
// absorbing, two Deprecated values combine to the earliest deprecation
// date, and Stable is the identity. Codec combinators use Add to decide
// the lifecycle of a composite operation from the lifecycles of its parts.
package lifecycle
