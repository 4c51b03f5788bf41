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

package testutil

import (
	"fmt"

	"github.com/dfu-go/dfu/dynamic"
)

// Kind discriminates the shapes a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
	KindByteBuffer
	KindIntList
	KindLongList
)

// Value is the opaque tree value this package's adapter works with.
type Value struct {
	kind    Kind
	b       bool
	num     dynamic.Number
	str     string
	list    []*Value
	entries []dynamic.Pair[*Value]
	bytes   []byte
	ints    []int32
	longs   []int64
}

func (v *Value) Kind() Kind { return v.kind }

func (v *Value) String() string {
	if v == nil {
		return "null"
	}
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindNumber:
		return fmt.Sprintf("%v", v.num.AsDouble())
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindList:
		return fmt.Sprintf("list(len=%d)", len(v.list))
	case KindMap:
		return fmt.Sprintf("map(len=%d)", len(v.entries))
	case KindByteBuffer:
		return fmt.Sprintf("bytes(len=%d)", len(v.bytes))
	case KindIntList:
		return fmt.Sprintf("intlist(len=%d)", len(v.ints))
	case KindLongList:
		return fmt.Sprintf("longlist(len=%d)", len(v.longs))
	default:
		return "?"
	}
}

// Equal is a deep structural comparison, used by the adapter's Equal and
// by this package's own MapLike key lookups.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return a.num.Kind() == b.num.Kind() && a.num.AsDouble() == b.num.AsDouble()
	case KindString:
		return a.str == b.str
	case KindList:
		if len(a.list) != len(b.list) {
			return false
		}
		for i := range a.list {
			if !Equal(a.list[i], b.list[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.entries) != len(b.entries) {
			return false
		}
		for _, ea := range a.entries {
			found := false
			for _, eb := range b.entries {
				if Equal(ea.Key, eb.Key) && Equal(ea.Value, eb.Value) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	case KindByteBuffer:
		if len(a.bytes) != len(b.bytes) {
			return false
		}
		for i := range a.bytes {
			if a.bytes[i] != b.bytes[i] {
				return false
			}
		}
		return true
	case KindIntList:
		if len(a.ints) != len(b.ints) {
			return false
		}
		for i := range a.ints {
			if a.ints[i] != b.ints[i] {
				return false
			}
		}
		return true
	case KindLongList:
		if len(a.longs) != len(b.longs) {
			return false
		}
		for i := range a.longs {
			if a.longs[i] != b.longs[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}
