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

package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dfu-go/dfu/dynamic"
)

func TestNumberDirectCasts(t *testing.T) {
	assert.Equal(t, int32(42), dynamic.NewInt(42).AsInt())
	assert.Equal(t, int64(42), dynamic.NewInt(42).AsLong())
	assert.Equal(t, float64(1.5), dynamic.NewDouble(1.5).AsDouble())
	assert.Equal(t, float32(1.5), dynamic.NewFloat(1.5).AsFloat())
}

func TestNumberNarrowingTruncatesViaInt32First(t *testing.T) {
	// 0x1_00_00_00_7F as a long narrows to int32 (drops the high word) then
	// to byte (drops everything but the low byte): 0x7F == 127.
	n := dynamic.NewLong(0x1_00_00_00_7F)
	assert.Equal(t, int8(0x7F), n.AsByte())

	// A long whose low 32 bits overflow an int16 truncates the same way.
	n2 := dynamic.NewLong(0x12345678)
	assert.Equal(t, int16(0x5678), n2.AsShort())
}

func TestNumberKind(t *testing.T) {
	assert.Equal(t, dynamic.KindByte, dynamic.NewByte(1).Kind())
	assert.Equal(t, dynamic.KindDouble, dynamic.NewDouble(1).Kind())
}
