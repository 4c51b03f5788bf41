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

package nbt

// collectorState is which shape a listCollector has committed to so far.
type collectorState int

const (
	stateInitial collectorState = iota
	stateByte
	stateInt
	stateLong
	stateHomogeneous
	stateHeterogeneous
)

// listCollector accumulates tags into the narrowest NBT list shape that
// still fits every tag seen: a packed ByteArray/IntArray/LongArray while
// every element shares that exact numeric kind, a same-kind List when the
// first element is of a non-packable kind and every later one matches it,
// or a List of single-key "" compounds once two different kinds are mixed
// (a first Compound element starts in that state directly). Grounded on pumpkin-nbt's
// ListCollector state machine (nbt_ops.rs).
type listCollector struct {
	state   collectorState
	homKind Kind

	bytes []int8
	ints  []int32
	longs []int64
	tags  []*Tag
}

func newListCollector() *listCollector {
	return &listCollector{state: stateInitial}
}

// listCollectorFromTag reconstructs collector state from an existing list-
// shaped tag, the way MergeIntoList resumes appending onto a value that
// already exists. ok is false for a tag that is not list-shaped at all.
func listCollectorFromTag(t *Tag) (*listCollector, bool) {
	switch t.Kind() {
	case KindEnd:
		return newListCollector(), true
	case KindByteArray:
		bs := make([]int8, len(t.bytes))
		for i, b := range t.bytes {
			bs[i] = int8(b)
		}
		return &listCollector{state: stateByte, bytes: bs}, true
	case KindIntArray:
		return &listCollector{state: stateInt, ints: append([]int32(nil), t.ints...)}, true
	case KindLongArray:
		return &listCollector{state: stateLong, longs: append([]int64(nil), t.longs...)}, true
	case KindList:
		if len(t.list) == 0 {
			return newListCollector(), true
		}
		if t.list[0].Kind() == KindCompound {
			return &listCollector{state: stateHeterogeneous, tags: append([]*Tag(nil), t.list...)}, true
		}
		return &listCollector{state: stateHomogeneous, homKind: t.list[0].Kind(), tags: append([]*Tag(nil), t.list...)}, true
	default:
		return nil, false
	}
}

func (c *listCollector) accept(t *Tag) *listCollector {
	switch c.state {
	case stateInitial:
		switch t.Kind() {
		case KindCompound:
			return &listCollector{state: stateHeterogeneous, tags: []*Tag{t}}
		case KindByte:
			return &listCollector{state: stateByte, bytes: []int8{t.byteVal}}
		case KindInt:
			return &listCollector{state: stateInt, ints: []int32{t.intVal}}
		case KindLong:
			return &listCollector{state: stateLong, longs: []int64{t.longVal}}
		default:
			return &listCollector{state: stateHomogeneous, homKind: t.Kind(), tags: []*Tag{t}}
		}

	case stateByte:
		if t.Kind() == KindByte {
			c.bytes = append(c.bytes, t.byteVal)
			return c
		}
		return c.toHeterogeneousFromBytes().accept(t)

	case stateInt:
		if t.Kind() == KindInt {
			c.ints = append(c.ints, t.intVal)
			return c
		}
		return c.toHeterogeneousFromInts().accept(t)

	case stateLong:
		if t.Kind() == KindLong {
			c.longs = append(c.longs, t.longVal)
			return c
		}
		return c.toHeterogeneousFromLongs().accept(t)

	case stateHomogeneous:
		if t.Kind() == c.homKind {
			c.tags = append(c.tags, t)
			return c
		}
		return c.toHeterogeneousFromHomogeneous().accept(t)

	default: // stateHeterogeneous
		c.tags = append(c.tags, wrapIfRequired(t))
		return c
	}
}

func (c *listCollector) toHeterogeneousFromBytes() *listCollector {
	tags := make([]*Tag, len(c.bytes))
	for i, b := range c.bytes {
		tags[i] = wrapElement(TagByte(b))
	}
	return &listCollector{state: stateHeterogeneous, tags: tags}
}

func (c *listCollector) toHeterogeneousFromInts() *listCollector {
	tags := make([]*Tag, len(c.ints))
	for i, v := range c.ints {
		tags[i] = wrapElement(TagInt(v))
	}
	return &listCollector{state: stateHeterogeneous, tags: tags}
}

func (c *listCollector) toHeterogeneousFromLongs() *listCollector {
	tags := make([]*Tag, len(c.longs))
	for i, v := range c.longs {
		tags[i] = wrapElement(TagLong(v))
	}
	return &listCollector{state: stateHeterogeneous, tags: tags}
}

func (c *listCollector) toHeterogeneousFromHomogeneous() *listCollector {
	tags := make([]*Tag, len(c.tags))
	for i, t := range c.tags {
		tags[i] = wrapIfRequired(t)
	}
	return &listCollector{state: stateHeterogeneous, tags: tags}
}

func (c *listCollector) acceptAll(items []*Tag) *listCollector {
	cur := c
	for _, it := range items {
		cur = cur.accept(it)
	}
	return cur
}

func (c *listCollector) result() *Tag {
	switch c.state {
	case stateByte:
		out := make([]byte, len(c.bytes))
		for i, b := range c.bytes {
			out[i] = byte(b)
		}
		return TagByteArray(out)
	case stateInt:
		return TagIntArray(c.ints)
	case stateLong:
		return TagLongArray(c.longs)
	case stateHomogeneous, stateHeterogeneous:
		return TagList(c.tags)
	default:
		return TagList(nil)
	}
}
