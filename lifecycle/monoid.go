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

package lifecycle

// Monoid mirrors the shape of IBM-fp-go/v2/monoid.Monoid[A]: a Concat and
// an Empty, packaged as a struct of functions rather than an interface so
// callers can pass it around as a value.
type Monoid struct {
	Concat func(a, b Lifecycle) Lifecycle
	Empty  func() Lifecycle
}

// NewMonoid returns the canonical Lifecycle monoid instance.
func NewMonoid() Monoid {
	return Monoid{
		Concat: Lifecycle.Add,
		Empty:  Empty,
	}
}

// Fold reduces a slice of Lifecycle values left-to-right through Add,
// starting from Stable.
func Fold(ls []Lifecycle) Lifecycle {
	acc := Stable
	for _, l := range ls {
		acc = acc.Add(l)
	}
	return acc
}
