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

package aggfuncs_test

import (
	"testing"

	"github.com/colquery/argminmax/pkg/executor/aggfuncs"
	"github.com/colquery/argminmax/pkg/types"
	"github.com/stretchr/testify/require"
)

// partialState runs one batch through a fresh context and returns the
// extracted state. Merge mutates its receiver, so every merge expression in
// the tests below gets freshly built operands.
func partialState(t *testing.T, fn *aggfuncs.ArgMinMax, scores []int64, labels []string) *aggfuncs.ArgMinMaxState {
	ctx := fn.NewEvalContext()
	holder := aggfuncs.NewAggregationResultHolder()
	chk := scoreLabelChunk(scores, labels)
	require.NoError(t, fn.Aggregate(ctx, chk.NumRows(), holder, chk))
	return fn.ExtractAggregationResult(ctx, holder)
}

func TestMergeKeepsWinner(t *testing.T) {
	fn := buildFn(t, true, []string{"score"}, []string{"label"})

	a := partialState(t, fn, []int64{9, 9}, []string{"a1", "a2"})
	b := partialState(t, fn, []int64{4}, []string{"b1"})
	merged, err := fn.MergePartialResult(a, b)
	require.NoError(t, err)
	require.Equal(t, []types.Datum{types.NewInt64Datum(9)}, merged.Key())
	require.Equal(t, [][]types.Datum{
		projRow(types.NewStringDatum("a1")),
		projRow(types.NewStringDatum("a2")),
	}, merged.Rows())

	// Loser on the left, winner on the right.
	a = partialState(t, fn, []int64{4}, []string{"b1"})
	b = partialState(t, fn, []int64{9, 9}, []string{"a1", "a2"})
	merged, err = fn.MergePartialResult(a, b)
	require.NoError(t, err)
	require.Equal(t, []types.Datum{types.NewInt64Datum(9)}, merged.Key())
	require.Equal(t, [][]types.Datum{
		projRow(types.NewStringDatum("a1")),
		projRow(types.NewStringDatum("a2")),
	}, merged.Rows())
}

func TestMergeTieConcatenates(t *testing.T) {
	fn := buildFn(t, true, []string{"score"}, []string{"label"})

	a := partialState(t, fn, []int64{7}, []string{"a1"})
	b := partialState(t, fn, []int64{7, 7}, []string{"b1", "b2"})
	merged, err := fn.MergePartialResult(a, b)
	require.NoError(t, err)
	require.Equal(t, []types.Datum{types.NewInt64Datum(7)}, merged.Key())
	// Receiver rows come first, then the argument's.
	require.Equal(t, [][]types.Datum{
		projRow(types.NewStringDatum("a1")),
		projRow(types.NewStringDatum("b1")),
		projRow(types.NewStringDatum("b2")),
	}, merged.Rows())
}

func TestMergeUnsetIsIdentity(t *testing.T) {
	fn := buildFn(t, false, []string{"score"}, []string{"label"})

	empty := partialState(t, fn, nil, nil)
	require.Nil(t, empty.Key())

	a := partialState(t, fn, []int64{3}, []string{"a"})
	merged, err := fn.MergePartialResult(a, partialState(t, fn, nil, nil))
	require.NoError(t, err)
	require.Equal(t, []types.Datum{types.NewInt64Datum(3)}, merged.Key())

	merged, err = fn.MergePartialResult(partialState(t, fn, nil, nil), a)
	require.NoError(t, err)
	require.Equal(t, []types.Datum{types.NewInt64Datum(3)}, merged.Key())

	merged, err = fn.MergePartialResult(nil, a)
	require.NoError(t, err)
	require.Equal(t, a, merged)
}

func TestMergeCommutativeAssociativeUpToRowOrder(t *testing.T) {
	fn := buildFn(t, true, []string{"score"}, []string{"label"})
	build := func(which int) *aggfuncs.ArgMinMaxState {
		switch which {
		case 0:
			return partialState(t, fn, []int64{8, 8}, []string{"a1", "a2"})
		case 1:
			return partialState(t, fn, []int64{8, 2}, []string{"b1", "x"})
		default:
			return partialState(t, fn, []int64{5}, []string{"c1"})
		}
	}

	ab, err := fn.MergePartialResult(build(0), build(1))
	require.NoError(t, err)
	ba, err := fn.MergePartialResult(build(1), build(0))
	require.NoError(t, err)
	require.Equal(t, ab.Key(), ba.Key())
	require.ElementsMatch(t, ab.Rows(), ba.Rows())

	abC, err := fn.MergePartialResult(ab, build(2))
	require.NoError(t, err)
	bc, err := fn.MergePartialResult(build(1), build(2))
	require.NoError(t, err)
	aBC, err := fn.MergePartialResult(build(0), bc)
	require.NoError(t, err)
	require.Equal(t, abC.Key(), aBC.Key())
	require.ElementsMatch(t, abC.Rows(), aBC.Rows())
}

func TestMergeMinDirection(t *testing.T) {
	fn := buildFn(t, false, []string{"score"}, []string{"label"})

	a := partialState(t, fn, []int64{4}, []string{"lo"})
	b := partialState(t, fn, []int64{9}, []string{"hi"})
	merged, err := fn.MergePartialResult(a, b)
	require.NoError(t, err)
	require.Equal(t, []types.Datum{types.NewInt64Datum(4)}, merged.Key())
	require.Equal(t, [][]types.Datum{projRow(types.NewStringDatum("lo"))}, merged.Rows())
}
