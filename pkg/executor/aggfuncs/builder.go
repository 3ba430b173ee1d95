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

package aggfuncs

import (
	"github.com/colquery/argminmax/pkg/expression"
	"github.com/pingcap/errors"
)

// AggFuncDesc describes an aggregate declaration handed down from the
// outer layer: the function name and its raw argument expressions.
type AggFuncDesc struct {
	Name string
	Args []expression.Expression
}

// Build builds an ArgMinMax from its declaration. The argument convention
// is: args[0] is the opaque function id, args[1] is an integer literal
// holding the measuring-column count N, args[2:2+N] are the measuring
// columns, and the remaining args are the projection columns.
func Build(desc *AggFuncDesc) (*ArgMinMax, error) {
	var isMax bool
	switch desc.Name {
	case AggFuncArgMax:
		isMax = true
	case AggFuncArgMin:
		isMax = false
	default:
		return nil, errors.Annotatef(ErrInvalidArguments, "unknown aggregate function %s", desc.Name)
	}

	if len(desc.Args) < 4 {
		return nil, errors.Annotatef(ErrInvalidArguments,
			"%s requires a function id, a measuring-column count, and at least one measuring and one projection column", desc.Name)
	}
	functionID := desc.Args[0].String()
	countLit, ok := desc.Args[1].(*expression.IntLiteral)
	if !ok {
		return nil, errors.Annotatef(ErrInvalidArguments,
			"%s measuring-column count must be an integer literal, got %s", desc.Name, desc.Args[1])
	}
	numMeasuring := int(countLit.Val)
	if numMeasuring < 1 {
		return nil, errors.Annotatef(ErrInvalidArguments,
			"%s measuring-column count must be positive, got %d", desc.Name, numMeasuring)
	}
	if len(desc.Args) < 2+numMeasuring+1 {
		return nil, errors.Annotatef(ErrInvalidArguments,
			"%s declares %d measuring columns but only %d arguments follow the count",
			desc.Name, numMeasuring, len(desc.Args)-2)
	}

	measuring, err := columnArgs(desc.Args[2:2+numMeasuring], "measuring")
	if err != nil {
		return nil, err
	}
	projection, err := columnArgs(desc.Args[2+numMeasuring:], "projection")
	if err != nil {
		return nil, err
	}
	return NewArgMinMax(functionID, isMax, measuring, projection)
}

func columnArgs(args []expression.Expression, role string) ([]*expression.Column, error) {
	cols := make([]*expression.Column, len(args))
	for i, arg := range args {
		col, ok := arg.(*expression.Column)
		if !ok {
			return nil, errors.Annotatef(ErrInvalidArguments,
				"%s argument %s is not a column reference", role, arg)
		}
		cols[i] = col
	}
	return cols, nil
}
