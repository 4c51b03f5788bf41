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

// entryMeta is the shape-relevant information extracted from a Result,
// independent of its payload type. Apply2..Apply16 each extract one of
// these per argument and fold them with combineMeta so the applicative
// logic is written once instead of sixteen times.
type entryMeta struct {
	lifecycle lifecycle.Lifecycle
	message   string
	hasResult bool
	isSuccess bool
}

func entryOf[R any](r Result[R]) entryMeta {
	return entryMeta{lifecycle: r.lifecycle, message: r.message, hasResult: r.hasResult, isSuccess: r.isSuccess}
}

// applyMeta is the folded outcome of combineMeta: whether every input had
// at least a partial value, whether every input was a full Success, the
// combined lifecycle, and the "; "-joined messages in input order.
type applyMeta struct {
	hasAll     bool
	allSuccess bool
	lifecycle  lifecycle.Lifecycle
	message    string
}

func combineMeta(entries []entryMeta) applyMeta {
	m := applyMeta{hasAll: true, allSuccess: true, lifecycle: lifecycle.Stable}
	for _, e := range entries {
		m.lifecycle = m.lifecycle.Add(e.lifecycle)
		if !e.hasResult {
			m.hasAll = false
		}
		if !e.isSuccess {
			m.allSuccess = false
		}
		m.message = mergeMessages(m.message, e.message)
	}
	return m
}
