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

// Package json is a reference [dynamic.FormatAdapter] over encoding/json's
// own decoded shape (map[string]any, []any, string, bool, a numeric Go
// type, or nil) — there is no intermediate tree type of its own. Wire
// text is produced and consumed through [Marshal] and [Unmarshal], both
// wrapping the standard library the way the ambient result stack wraps
// every other fallible call.
//
// JSON has no byte/short/int/long/float distinction; Adapter keeps
// whatever concrete numeric Go type a codec asked to create (so a
// round-trip through this package's own values preserves width) but
// falls back to float64 for numbers that arrived from parsed JSON text,
// matching encoding/json's own default decoding.
package json
