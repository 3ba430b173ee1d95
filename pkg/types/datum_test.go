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

package types_test

import (
	"math"
	"testing"

	"github.com/colquery/argminmax/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDatumCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b types.Datum
		want int
	}{
		{"int32 less", types.NewInt32Datum(1), types.NewInt32Datum(2), -1},
		{"int32 equal", types.NewInt32Datum(2), types.NewInt32Datum(2), 0},
		{"int64 greater", types.NewInt64Datum(10), types.NewInt64Datum(-3), 1},
		{"float32 less", types.NewFloat32Datum(1.5), types.NewFloat32Datum(2.5), -1},
		{"float64 equal", types.NewFloat64Datum(3.25), types.NewFloat64Datum(3.25), 0},
		{"string order", types.NewStringDatum("apple"), types.NewStringDatum("banana"), -1},
		{"decimal greater",
			types.NewDecimalDatum(decimal.RequireFromString("10.50")),
			types.NewDecimalDatum(decimal.RequireFromString("10.4999")), 1},
		{"decimal equal despite scale",
			types.NewDecimalDatum(decimal.RequireFromString("1.50")),
			types.NewDecimalDatum(decimal.RequireFromString("1.5")), 0},
		{"nan above finite", types.NewFloat64Datum(math.NaN()), types.NewFloat64Datum(100), 1},
		{"nan above inf", types.NewFloat64Datum(math.NaN()), types.NewFloat64Datum(math.Inf(1)), 1},
		{"nan equals nan", types.NewFloat64Datum(math.NaN()), types.NewFloat64Datum(math.NaN()), 0},
		{"float32 nan above finite",
			types.NewFloat32Datum(float32(math.NaN())), types.NewFloat32Datum(5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Compare(tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)

			rev, err := tt.b.Compare(tt.a)
			require.NoError(t, err)
			require.Equal(t, -tt.want, rev)
		})
	}
}

func TestDatumCompareErrors(t *testing.T) {
	_, err := types.NewInt32Datum(1).Compare(types.NewInt64Datum(1))
	require.Error(t, err)

	_, err = types.NewBytesDatum([]byte{1}).Compare(types.NewBytesDatum([]byte{1}))
	require.Error(t, err)

	_, err = types.NewInt32ArrayDatum([]int32{1}).Compare(types.NewInt32ArrayDatum([]int32{1}))
	require.Error(t, err)
}

func TestDatumPayloads(t *testing.T) {
	require.Equal(t, int32(-7), types.NewInt32Datum(-7).GetInt32())
	require.Equal(t, int64(1<<40), types.NewInt64Datum(1<<40).GetInt64())
	require.Equal(t, float32(2.5), types.NewFloat32Datum(2.5).GetFloat32())
	require.Equal(t, 6.75, types.NewFloat64Datum(6.75).GetFloat64())
	require.Equal(t, "v", types.NewStringDatum("v").GetString())
	require.Equal(t, []byte{0xde, 0xad}, types.NewBytesDatum([]byte{0xde, 0xad}).GetBytes())
	require.True(t, decimal.RequireFromString("9.99").Equal(
		types.NewDecimalDatum(decimal.RequireFromString("9.99")).GetDecimal()))
	require.Equal(t, []int32{1, 2}, types.NewInt32ArrayDatum([]int32{1, 2}).GetInt32Array())
	require.Equal(t, []string{"a"}, types.NewStringArrayDatum([]string{"a"}).GetStringArray())
	require.Equal(t, [][]byte{{1}}, types.NewBytesArrayDatum([][]byte{{1}}).GetBytesArray())
}

func TestColumnTypeNames(t *testing.T) {
	require.Equal(t, "INT", types.TypeInt32.String())
	require.Equal(t, "LONG", types.TypeInt64.String())
	require.Equal(t, "BIG_DECIMAL", types.TypeDecimal.String())
	require.Equal(t, "INT_ARRAY", types.TypeInt32Array.String())
	require.False(t, types.TypeDecimal.IsArray())
	require.True(t, types.TypeStringArray.IsArray())
}
