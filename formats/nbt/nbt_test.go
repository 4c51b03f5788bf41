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

package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/codec"
	dfunbt "github.com/dfu-go/dfu/formats/nbt"
	"github.com/dfu-go/dfu/mapcodec"
	"github.com/dfu-go/dfu/structcodec"
)

type employee struct {
	Name       string
	Department string
	Salary     int32
}

func employeeCodec() *codec.ComposedCodec[*dfunbt.Tag, employee] {
	return structcodec.Codec3[*dfunbt.Tag, employee, string, string, int32](
		mapcodec.NewField[*dfunbt.Tag, employee, string]("name", codec.String[*dfunbt.Tag](), func(e employee) string { return e.Name }),
		mapcodec.NewField[*dfunbt.Tag, employee, string]("department", codec.String[*dfunbt.Tag](), func(e employee) string { return e.Department }),
		mapcodec.NewField[*dfunbt.Tag, employee, int32]("salary", codec.Int[*dfunbt.Tag](), func(e employee) int32 { return e.Salary }),
		func(name, department string, salary int32) employee { return employee{Name: name, Department: department, Salary: salary} },
	)
}

func TestEmployeeRoundTrip(t *testing.T) {
	c := employeeCodec()
	adapter := dfunbt.New(dfunbt.Config{})

	encoded := codec.EncodeStart[*dfunbt.Tag, employee](c, employee{Name: "John Doe", Department: "Marketing", Salary: 82000}, adapter)
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire := encoded.Unwrap()
	assert.Equal(t, dfunbt.KindCompound, wire.Kind())

	decoded := codec.Parse[*dfunbt.Tag, employee](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	assert.Equal(t, employee{Name: "John Doe", Department: "Marketing", Salary: 82000}, decoded.Unwrap())
}

func TestEmployeeRoundTripCompressed(t *testing.T) {
	c := employeeCodec()
	adapter := dfunbt.New(dfunbt.Config{Compressed: true})

	encoded := codec.EncodeStart[*dfunbt.Tag, employee](c, employee{Name: "Kelly Peak", Department: "Sales", Salary: 72000}, adapter)
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire := encoded.Unwrap()
	assert.Equal(t, dfunbt.KindList, wire.Kind())

	decoded := codec.Parse[*dfunbt.Tag, employee](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	assert.Equal(t, employee{Name: "Kelly Peak", Department: "Sales", Salary: 72000}, decoded.Unwrap())
}

func TestCreateListPacksSameKindIntoArray(t *testing.T) {
	adapter := dfunbt.New(dfunbt.Config{})
	list := adapter.CreateList([]*dfunbt.Tag{dfunbt.TagInt(10), dfunbt.TagInt(15), dfunbt.TagInt(20)})
	assert.Equal(t, dfunbt.KindIntArray, list.Kind())

	ints, ok := adapter.GetIntList(list).Result()
	require.True(t, ok)
	assert.Equal(t, []int32{10, 15, 20}, ints)
}

func TestCreateListEscalatesToHeterogeneousOnMixedKinds(t *testing.T) {
	adapter := dfunbt.New(dfunbt.Config{})
	list := adapter.CreateList([]*dfunbt.Tag{
		dfunbt.TagByte(99),
		dfunbt.TagString("99"),
		dfunbt.TagLongArray([]int64{1, 2, 3}),
	})
	require.Equal(t, dfunbt.KindList, list.Kind())

	items, ok := adapter.GetIter(list).Result()
	require.True(t, ok)
	require.Len(t, items, 3)
	assert.Equal(t, dfunbt.KindByte, items[0].Kind())
	assert.Equal(t, dfunbt.KindString, items[1].Kind())
	assert.Equal(t, dfunbt.KindLongArray, items[2].Kind())
}

func TestMergeIntoListWidensPackedArrayToHeterogeneous(t *testing.T) {
	adapter := dfunbt.New(dfunbt.Config{})
	list := adapter.CreateIntList([]int32{1, 2})
	merged := adapter.MergeIntoList(list, dfunbt.TagString("not an int"))
	assert.Equal(t, dfunbt.KindList, merged.Kind())

	items, ok := adapter.GetIter(merged).Result()
	require.True(t, ok)
	require.Len(t, items, 3)
}

func TestCompoundPutOverwritesExistingKey(t *testing.T) {
	c := dfunbt.TagCompound().Put("a", dfunbt.TagInt(1)).Put("a", dfunbt.TagInt(2))
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(2), codecIntValue(v))
}

func codecIntValue(t *dfunbt.Tag) int32 {
	adapter := dfunbt.New(dfunbt.Config{})
	n, ok := adapter.GetNumber(t).Result()
	if !ok {
		return 0
	}
	return n.AsInt()
}
