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

package structcodec_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/codec"
	"github.com/dfu-go/dfu/dynamic"
	"github.com/dfu-go/dfu/internal/testutil"
	"github.com/dfu-go/dfu/mapcodec"
	"github.com/dfu-go/dfu/result"
	"github.com/dfu-go/dfu/structcodec"
)

type item struct {
	ID    string
	Count int32
}

func itemCodec() *codec.ComposedCodec[*testutil.Value, item] {
	return structcodec.Codec2[*testutil.Value, item, string, int32](
		mapcodec.NewField[*testutil.Value, item, string]("id", codec.String[*testutil.Value](), func(i item) string { return i.ID }),
		mapcodec.OptionalFieldWithDefault[*testutil.Value, item, int32]("count", codec.Int[*testutil.Value](), func(i item) int32 { return i.Count }, 1),
		func(id string, count int32) item { return item{ID: id, Count: count} },
	)
}

func TestCodec2RoundTrip(t *testing.T) {
	c := itemCodec()
	adapter := testutil.Adapter{}
	encoded := c.Encode(item{ID: "stick", Count: 3}, adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire, _ := encoded.Result()

	decoded := codec.Parse[*testutil.Value, item](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, item{ID: "stick", Count: 3}, out)
}

func TestCodec2OptionalFieldDefault(t *testing.T) {
	c := itemCodec()
	adapter := testutil.Adapter{}
	wire := adapter.CreateMap([]dynamic.Pair[*testutil.Value]{
		{Key: adapter.CreateString("id"), Value: adapter.CreateString("stick")},
	})
	decoded := codec.Parse[*testutil.Value, item](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, item{ID: "stick", Count: 1}, out)
}

// shape is a sum type dispatched on Kind: a square variant carrying Side,
// and a circle variant carrying Radius.
type shape struct {
	Kind   string
	Side   float64
	Radius float64
}

func (s shape) TypeKey() string { return s.Kind }

type squareFields struct {
	side mapcodec.Field[*testutil.Value, shape, float64]
}

func (f squareFields) Keys() []string { return []string{f.side.Name()} }

func (f squareFields) EncodeInto(s shape, adapter dynamic.FormatAdapter[*testutil.Value], builder dynamic.StructBuilder[*testutil.Value]) dynamic.StructBuilder[*testutil.Value] {
	return f.side.EncodeInto(s, adapter, builder)
}

func (f squareFields) DecodeFrom(m dynamic.MapLike[*testutil.Value], adapter dynamic.FormatAdapter[*testutil.Value]) result.Result[shape] {
	return result.Map(f.side.DecodeValue(m, adapter), func(side float64) shape {
		return shape{Kind: "square", Side: side}
	})
}

type circleFields struct {
	radius mapcodec.Field[*testutil.Value, shape, float64]
}

func (f circleFields) Keys() []string { return []string{f.radius.Name()} }

func (f circleFields) EncodeInto(s shape, adapter dynamic.FormatAdapter[*testutil.Value], builder dynamic.StructBuilder[*testutil.Value]) dynamic.StructBuilder[*testutil.Value] {
	return f.radius.EncodeInto(s, adapter, builder)
}

func (f circleFields) DecodeFrom(m dynamic.MapLike[*testutil.Value], adapter dynamic.FormatAdapter[*testutil.Value]) result.Result[shape] {
	return result.Map(f.radius.DecodeValue(m, adapter), func(radius float64) shape {
		return shape{Kind: "circle", Radius: radius}
	})
}

func shapeCodec() *codec.ComposedCodec[*testutil.Value, shape] {
	square := squareFields{side: mapcodec.NewField[*testutil.Value, shape, float64]("side", codec.Double[*testutil.Value](), func(s shape) float64 { return s.Side })}
	circle := circleFields{radius: mapcodec.NewField[*testutil.Value, shape, float64]("radius", codec.Double[*testutil.Value](), func(s shape) float64 { return s.Radius })}

	return structcodec.DispatchSelf[*testutil.Value, shape, string](
		"kind",
		codec.String[*testutil.Value](),
		func(kind string) (mapcodec.MapCodec[*testutil.Value, shape], error) {
			switch kind {
			case "square":
				return square, nil
			case "circle":
				return circle, nil
			default:
				return nil, fmt.Errorf("unknown shape kind %q", kind)
			}
		},
		[]string{"side", "radius"},
	)
}

func TestDispatchRoundTripSquare(t *testing.T) {
	c := shapeCodec()
	adapter := testutil.Adapter{}
	encoded := c.Encode(shape{Kind: "square", Side: 2}, adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire, _ := encoded.Result()

	decoded := codec.Parse[*testutil.Value, shape](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, shape{Kind: "square", Side: 2}, out)
}

func TestDispatchRoundTripCircle(t *testing.T) {
	c := shapeCodec()
	adapter := testutil.Adapter{}
	encoded := c.Encode(shape{Kind: "circle", Radius: 5}, adapter, adapter.Empty())
	require.True(t, encoded.IsSuccess(), encoded.Message())
	wire, _ := encoded.Result()

	decoded := codec.Parse[*testutil.Value, shape](c, wire, adapter)
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, shape{Kind: "circle", Radius: 5}, out)
}

func TestDispatchUnknownKindIsError(t *testing.T) {
	c := shapeCodec()
	adapter := testutil.Adapter{}
	wire := adapter.CreateMap([]dynamic.Pair[*testutil.Value]{
		{Key: adapter.CreateString("kind"), Value: adapter.CreateString("triangle")},
	})
	decoded := codec.Parse[*testutil.Value, shape](c, wire, adapter)
	assert.False(t, decoded.IsSuccess())
	assert.Equal(t, "Invalid differentiator value triangle", decoded.Message())
}
