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

package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfu-go/dfu/lifecycle"
)

func TestAddMonoidLaws(t *testing.T) {
	assert.True(t, lifecycle.Stable.Add(lifecycle.Stable).Equal(lifecycle.Stable))
	assert.True(t, lifecycle.Experimental.Add(lifecycle.Deprecated(10)).Equal(lifecycle.Experimental))
	assert.True(t, lifecycle.Deprecated(10).Add(lifecycle.Experimental).Equal(lifecycle.Experimental))
	assert.True(t, lifecycle.Deprecated(10).Add(lifecycle.Deprecated(15)).Equal(lifecycle.Deprecated(10)))
	assert.True(t, lifecycle.Deprecated(15).Add(lifecycle.Deprecated(10)).Equal(lifecycle.Deprecated(10)))
	assert.True(t, lifecycle.Deprecated(10).Add(lifecycle.Stable).Equal(lifecycle.Deprecated(10)))
	assert.True(t, lifecycle.Stable.Add(lifecycle.Deprecated(10)).Equal(lifecycle.Deprecated(10)))
}

func TestAddCommutative(t *testing.T) {
	values := []lifecycle.Lifecycle{
		lifecycle.Stable,
		lifecycle.Experimental,
		lifecycle.Deprecated(1),
		lifecycle.Deprecated(42),
	}
	for _, a := range values {
		for _, b := range values {
			assert.True(t, a.Add(b).Equal(b.Add(a)), "Add(%v,%v) != Add(%v,%v)", a, b, b, a)
		}
	}
}

func TestAddAssociative(t *testing.T) {
	values := []lifecycle.Lifecycle{
		lifecycle.Stable,
		lifecycle.Experimental,
		lifecycle.Deprecated(3),
		lifecycle.Deprecated(9),
	}
	for _, a := range values {
		for _, b := range values {
			for _, c := range values {
				left := a.Add(b).Add(c)
				right := a.Add(b.Add(c))
				assert.True(t, left.Equal(right), "associativity failed for %v,%v,%v", a, b, c)
			}
		}
	}
}

func TestFold(t *testing.T) {
	assert.True(t, lifecycle.Fold(nil).Equal(lifecycle.Stable))
	assert.True(t, lifecycle.Fold([]lifecycle.Lifecycle{lifecycle.Stable, lifecycle.Deprecated(5), lifecycle.Stable}).Equal(lifecycle.Deprecated(5)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Stable", lifecycle.Stable.String())
	assert.Equal(t, "Experimental", lifecycle.Experimental.String())
	assert.Equal(t, "Deprecated(7)", lifecycle.Deprecated(7).String())
}
