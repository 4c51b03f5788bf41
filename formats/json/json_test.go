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

package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfu-go/dfu/codec"
	dfujson "github.com/dfu-go/dfu/formats/json"
	"github.com/dfu-go/dfu/mapcodec"
	"github.com/dfu-go/dfu/structcodec"
)

type coordinate struct {
	X int32
	Y int32
}

func coordinateCodec() *codec.ComposedCodec[any, coordinate] {
	return structcodec.Codec2[any, coordinate, int32, int32](
		mapcodec.NewField[any, coordinate, int32]("x", codec.Int[any](), func(c coordinate) int32 { return c.X }),
		mapcodec.NewField[any, coordinate, int32]("y", codec.Int[any](), func(c coordinate) int32 { return c.Y }),
		func(x, y int32) coordinate { return coordinate{X: x, Y: y} },
	)
}

func TestEncodeDecodeBytesRoundTrip(t *testing.T) {
	c := coordinateCodec()
	encoded := dfujson.EncodeToBytes[coordinate](c, coordinate{X: 3, Y: 4}, dfujson.Config{})
	require.True(t, encoded.IsSuccess(), encoded.Message())
	data, _ := encoded.Result()
	assert.JSONEq(t, `{"x":3,"y":4}`, string(data))

	decoded := dfujson.DecodeFromBytes[coordinate](c, data, dfujson.Config{})
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, coordinate{X: 3, Y: 4}, out)
}

func TestEncodeDecodeBytesRoundTripCompressed(t *testing.T) {
	c := coordinateCodec()
	encoded := dfujson.EncodeToBytes[coordinate](c, coordinate{X: 1, Y: 2}, dfujson.Config{Compressed: true})
	require.True(t, encoded.IsSuccess(), encoded.Message())
	data, _ := encoded.Result()
	assert.JSONEq(t, `[1,2]`, string(data))

	decoded := dfujson.DecodeFromBytes[coordinate](c, data, dfujson.Config{Compressed: true})
	require.True(t, decoded.IsSuccess(), decoded.Message())
	out, _ := decoded.Result()
	assert.Equal(t, coordinate{X: 1, Y: 2}, out)
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	decoded := dfujson.Unmarshal([]byte("{not json"))
	assert.False(t, decoded.IsSuccess())
}
