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

package mapcodec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/internal/testutil"
	"github.com/dfu-go/dfu/mapcodec"
	"github.com/dfu-go/dfu/result"
)

type player struct {
	Name string
	HP   int32
}

// twoFieldMapCodec is a minimal hand-written MapCodec used only to
// exercise FromMap before structcodec exists to generate one.
type twoFieldMapCodec struct {
	name mapcodec.Field[*testutil.Value, player, string]
	hp   mapcodec.Field[*testutil.Value, player, int32]
}

func (c twoFieldMapCodec) Keys() []string { return []string{c.name.Name(), c.hp.Name()} }

func (c twoFieldMapCodec) EncodeInto(p player, adapter dynamic.FormatAdapter[*testutil.Value], builder dynamic.StructBuilder[*testutil.Value]) dynamic.StructBuilder[*testutil.Value] {
	builder = c.name.EncodeInto(p, adapter, builder)
	builder = c.hp.EncodeInto(p, adapter, builder)
	return builder
}

func (c twoFieldMapCodec) DecodeFrom(m dynamic.MapLike[*testutil.Value], adapter dynamic.FormatAdapter[*testutil.Value]) result.Result[player] {
	return result.Apply2(func(name string, hp int32) player {
		return player{Name: name, HP: hp}
	}, c.name.DecodeValue(m, adapter), c.hp.DecodeValue(m, adapter))
}

func newPlayerMapCodec() twoFieldMapCodec {
	return twoFieldMapCodec{
		name: mapcodec.NewField[*testutil.Value, player, string]("name", codec.String[*testutil.Value](), func(p player) string { return p.Name }),
		hp:   mapcodec.OptionalFieldWithDefault[*testutil.Value, player, int32]("hp", codec.Int[*testutil.Value](), func(p player) int32 { return p.HP }, 20),
	}
}

func TestFromMapRoundTripUniversal(t *testing.T) {
	c := mapcodec.FromMap[*testutil.Value, player](newPlayerMapCodec())
	adapter := testutil.Adapter{}

	encoded := c.Encode(player{Name: "Steve", HP: 15}, adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire, _ := encoded.Result()

	decoded := codec.Parse[*testutil.Value, player](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, player{Name: "Steve", HP: 15}, out)
}

func TestFromMapRoundTripCompressed(t *testing.T) {
	c := mapcodec.FromMap[*testutil.Value, player](newPlayerMapCodec())
	adapter := testutil.Adapter{Compressed: true}

	encoded := c.Encode(player{Name: "Alex", HP: 20}, adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire, _ := encoded.Result()

	decoded := codec.Parse[*testutil.Value, player](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, player{Name: "Alex", HP: 20}, out)
}

func TestOptionalFieldOmittedWhenDefault(t *testing.T) {
	c := newPlayerMapCodec()
	adapter := testutil.Adapter{}
	builder := adapter.MapBuilder()
	builder = c.EncodeInto(player{Name: "Steve", HP: 20}, adapter, builder)
	wire, ok := builder.Build(adapter.Empty()).Result()
	require.True(t, ok)

	ml, ok := adapter.GetMap(wire).Result()
	require.True(t, ok)
	_, hasHP := ml.GetStr("hp")
	assert.False(t, hasHP)
}

func TestMissingRequiredFieldIsError(t *testing.T) {
	c := mapcodec.FromMap[*testutil.Value, player](newPlayerMapCodec())
	adapter := testutil.Adapter{}
	wire := adapter.CreateMap(nil)
	decoded := c.Decode(wire, adapter)
	assert.False(t, decoded.IsSuccess())
}
