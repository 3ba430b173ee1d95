// Copyright 2025 ColQuery, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package chunk_test

import (
	"testing"

	"github.com/colquery/argminmax/pkg/types"
	"github.com/colquery/argminmax/pkg/util/chunk"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestColumnKindFolding(t *testing.T) {
	boolCol := chunk.NewColumn(types.KindBool, true)
	boolCol.AppendBool(true)
	boolCol.AppendBool(false)
	require.Equal(t, int32(1), boolCol.GetInt32(0))
	require.Equal(t, int32(0), boolCol.GetInt32(1))
	require.Equal(t, types.KindBool, boolCol.Kind())

	tsCol := chunk.NewColumn(types.KindTimestamp, true)
	tsCol.AppendTimestamp(1700000000000)
	require.Equal(t, int64(1700000000000), tsCol.GetInt64(0))

	jsonCol := chunk.NewColumn(types.KindJSON, true)
	jsonCol.AppendJSON(`{"a":1}`)
	require.Equal(t, `{"a":1}`, jsonCol.GetString(0))

	boolArr := chunk.NewColumn(types.KindBool, false)
	boolArr.AppendBoolArray([]bool{true, false, true})
	require.Equal(t, []int32{1, 0, 1}, boolArr.GetInt32Array(0))
	require.False(t, boolArr.IsSingleValue())
}

func TestColumnAppendAndRead(t *testing.T) {
	decCol := chunk.NewColumn(types.KindDecimal, true)
	decCol.AppendDecimal(decimal.RequireFromString("1.25"))
	decCol.AppendDecimal(decimal.RequireFromString("-3"))
	require.Equal(t, 2, decCol.NumRows())
	require.True(t, decimal.RequireFromString("-3").Equal(decCol.GetDecimal(1)))

	bytesArr := chunk.NewColumn(types.KindBytes, false)
	bytesArr.AppendBytesArray([][]byte{{1, 2}, {3}})
	require.Equal(t, [][]byte{{1, 2}, {3}}, bytesArr.GetBytesArray(0))
}

func TestColumnKindMismatchPanics(t *testing.T) {
	col := chunk.NewColumn(types.KindInt64, true)
	require.Panics(t, func() { col.AppendString("x") })
	require.Panics(t, func() { col.AppendInt64Array([]int64{1}) })
}

func TestChunkColumnLookup(t *testing.T) {
	score := chunk.NewColumn(types.KindInt64, true)
	score.AppendInt64(1)
	label := chunk.NewColumn(types.KindString, true)
	label.AppendString("a")

	chk := chunk.NewChunk()
	chk.AddColumn("score", score)
	chk.AddColumn("label", label)
	require.Equal(t, 1, chk.NumRows())
	require.Equal(t, []string{"score", "label"}, chk.ColumnNames())
	require.Same(t, score, chk.Column("score"))
	require.Nil(t, chk.Column("missing"))
}

func TestChunkRowCountMismatchPanics(t *testing.T) {
	one := chunk.NewColumn(types.KindInt64, true)
	one.AppendInt64(1)
	two := chunk.NewColumn(types.KindInt64, true)
	two.AppendInt64(1)
	two.AppendInt64(2)

	chk := chunk.NewChunk()
	chk.AddColumn("a", one)
	require.Panics(t, func() { chk.AddColumn("b", two) })
}
