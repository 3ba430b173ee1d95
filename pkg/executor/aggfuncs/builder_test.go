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
	"github.com/colquery/argminmax/pkg/expression"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestBuildArgMinMax(t *testing.T) {
	args := []expression.Expression{
		expression.NewStringLiteral("fn-7"),
		expression.NewIntLiteral(2),
		expression.NewColumn("m1"),
		expression.NewColumn("m2"),
		expression.NewColumn("p1"),
		expression.NewColumn("p2"),
	}

	fn, err := aggfuncs.Build(&aggfuncs.AggFuncDesc{Name: aggfuncs.AggFuncArgMax, Args: args})
	require.NoError(t, err)
	require.True(t, fn.IsMax())
	require.Equal(t, aggfuncs.AggFuncArgMax, fn.Name())
	require.Equal(t, "fn-7", fn.FunctionID())

	fn, err = aggfuncs.Build(&aggfuncs.AggFuncDesc{Name: aggfuncs.AggFuncArgMin, Args: args})
	require.NoError(t, err)
	require.False(t, fn.IsMax())
	require.Equal(t, aggfuncs.AggFuncArgMin, fn.Name())
}

func TestBuildRejectsInvalidDeclarations(t *testing.T) {
	col := expression.NewColumn
	valid := []expression.Expression{
		expression.NewStringLiteral("fn-0"),
		expression.NewIntLiteral(1),
		col("m"),
		col("p"),
	}

	tests := []struct {
		name string
		desc *aggfuncs.AggFuncDesc
	}{
		{"unknown function name", &aggfuncs.AggFuncDesc{Name: "arg_med", Args: valid}},
		{"too few arguments", &aggfuncs.AggFuncDesc{
			Name: aggfuncs.AggFuncArgMin,
			Args: valid[:3],
		}},
		{"count not an integer literal", &aggfuncs.AggFuncDesc{
			Name: aggfuncs.AggFuncArgMin,
			Args: []expression.Expression{
				expression.NewStringLiteral("fn-0"), expression.NewStringLiteral("1"), col("m"), col("p"),
			},
		}},
		{"count below one", &aggfuncs.AggFuncDesc{
			Name: aggfuncs.AggFuncArgMin,
			Args: []expression.Expression{
				expression.NewStringLiteral("fn-0"), expression.NewIntLiteral(0), col("m"), col("p"),
			},
		}},
		{"count eats all remaining args", &aggfuncs.AggFuncDesc{
			Name: aggfuncs.AggFuncArgMin,
			Args: []expression.Expression{
				expression.NewStringLiteral("fn-0"), expression.NewIntLiteral(2), col("m"), col("p"),
			},
		}},
		{"measuring arg not a column", &aggfuncs.AggFuncDesc{
			Name: aggfuncs.AggFuncArgMin,
			Args: []expression.Expression{
				expression.NewStringLiteral("fn-0"), expression.NewIntLiteral(1), expression.NewIntLiteral(3), col("p"),
			},
		}},
		{"projection arg not a column", &aggfuncs.AggFuncDesc{
			Name: aggfuncs.AggFuncArgMin,
			Args: []expression.Expression{
				expression.NewStringLiteral("fn-0"), expression.NewIntLiteral(1), col("m"), expression.NewStringLiteral("p"),
			},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := aggfuncs.Build(tt.desc)
			require.Error(t, err)
			require.Equal(t, aggfuncs.ErrInvalidArguments, errors.Cause(err))
		})
	}
}
