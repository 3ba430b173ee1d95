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
	"github.com/colquery/argminmax/pkg/types"
	"github.com/colquery/argminmax/pkg/util/chunk"
	"github.com/pingcap/errors"
)

// measuringSource reads the comparable scalar of one measuring column.
// Implementations exist per supported variant; runtime kind dispatch
// happens once, when the source is built at schema discovery, never per
// row.
type measuringSource interface {
	// columnType is the declared schema type of the column, with bool
	// folded to INT and timestamp folded to LONG.
	columnType() types.ColumnType
	// scalarAt reads row's value as an ordered scalar datum.
	scalarAt(row int) types.Datum
	// bind points the source at the same column of a new batch.
	bind(col *chunk.Column)
}

// projectionSource reads the projected value of one projection column,
// scalar or array.
type projectionSource interface {
	columnType() types.ColumnType
	// valueAt reads row's value as a datum typed per columnType.
	valueAt(row int) types.Datum
	bind(col *chunk.Column)
}

// newMeasuringSource builds the measuring source for col, or fails if the
// column cannot be ordered. Measuring columns must be single-valued.
func newMeasuringSource(name string, col *chunk.Column) (measuringSource, error) {
	if !col.IsSingleValue() {
		return nil, errors.Annotatef(ErrUnsupportedType,
			"measuring column %s is multi-valued; only single-valued measuring columns are supported", name)
	}
	switch col.Kind() {
	case types.KindInt32, types.KindBool:
		return &int32Source{col: col}, nil
	case types.KindInt64, types.KindTimestamp:
		return &int64Source{col: col}, nil
	case types.KindFloat32:
		return &float32Source{col: col}, nil
	case types.KindFloat64:
		return &float64Source{col: col}, nil
	case types.KindString:
		return &stringSource{col: col}, nil
	case types.KindDecimal:
		return &decimalSource{col: col}, nil
	default:
		return nil, errors.Annotatef(ErrUnsupportedType,
			"measuring column %s has non-comparable kind %s", name, col.Kind())
	}
}

// newProjectionSource builds the projection source for col, or fails if
// the column's kind is outside the supported set for its arity.
func newProjectionSource(name string, col *chunk.Column) (projectionSource, error) {
	if col.IsSingleValue() {
		switch col.Kind() {
		case types.KindInt32, types.KindBool:
			return &int32Source{col: col}, nil
		case types.KindInt64, types.KindTimestamp:
			return &int64Source{col: col}, nil
		case types.KindFloat32:
			return &float32Source{col: col}, nil
		case types.KindFloat64:
			return &float64Source{col: col}, nil
		case types.KindString:
			return &stringSource{col: col}, nil
		case types.KindJSON:
			return &jsonSource{col: col}, nil
		case types.KindBytes:
			return &bytesSource{col: col}, nil
		case types.KindDecimal:
			return &decimalSource{col: col}, nil
		default:
			return nil, errors.Annotatef(ErrUnsupportedType,
				"projection column %s has unsupported kind %s", name, col.Kind())
		}
	}
	switch col.Kind() {
	case types.KindInt32, types.KindBool:
		return &int32ArraySource{col: col}, nil
	case types.KindInt64, types.KindTimestamp:
		return &int64ArraySource{col: col}, nil
	case types.KindFloat32:
		return &float32ArraySource{col: col}, nil
	case types.KindFloat64:
		return &float64ArraySource{col: col}, nil
	case types.KindString:
		return &stringArraySource{col: col}, nil
	case types.KindBytes:
		return &bytesArraySource{col: col}, nil
	default:
		return nil, errors.Annotatef(ErrUnsupportedType,
			"projection column %s has unsupported multi-valued kind %s", name, col.Kind())
	}
}

type int32Source struct {
	col *chunk.Column
}

func (*int32Source) columnType() types.ColumnType { return types.TypeInt32 }
func (s *int32Source) bind(col *chunk.Column)     { s.col = col }
func (s *int32Source) scalarAt(row int) types.Datum {
	return types.NewInt32Datum(s.col.GetInt32(row))
}
func (s *int32Source) valueAt(row int) types.Datum { return s.scalarAt(row) }

type int64Source struct {
	col *chunk.Column
}

func (*int64Source) columnType() types.ColumnType { return types.TypeInt64 }
func (s *int64Source) bind(col *chunk.Column)     { s.col = col }
func (s *int64Source) scalarAt(row int) types.Datum {
	return types.NewInt64Datum(s.col.GetInt64(row))
}
func (s *int64Source) valueAt(row int) types.Datum { return s.scalarAt(row) }

type float32Source struct {
	col *chunk.Column
}

func (*float32Source) columnType() types.ColumnType { return types.TypeFloat32 }
func (s *float32Source) bind(col *chunk.Column)     { s.col = col }
func (s *float32Source) scalarAt(row int) types.Datum {
	return types.NewFloat32Datum(s.col.GetFloat32(row))
}
func (s *float32Source) valueAt(row int) types.Datum { return s.scalarAt(row) }

type float64Source struct {
	col *chunk.Column
}

func (*float64Source) columnType() types.ColumnType { return types.TypeFloat64 }
func (s *float64Source) bind(col *chunk.Column)     { s.col = col }
func (s *float64Source) scalarAt(row int) types.Datum {
	return types.NewFloat64Datum(s.col.GetFloat64(row))
}
func (s *float64Source) valueAt(row int) types.Datum { return s.scalarAt(row) }

type stringSource struct {
	col *chunk.Column
}

func (*stringSource) columnType() types.ColumnType { return types.TypeString }
func (s *stringSource) bind(col *chunk.Column)     { s.col = col }
func (s *stringSource) scalarAt(row int) types.Datum {
	return types.NewStringDatum(s.col.GetString(row))
}
func (s *stringSource) valueAt(row int) types.Datum { return s.scalarAt(row) }

// jsonSource projects json text as a string column. JSON is not orderable,
// so it never acts as a measuring source.
type jsonSource struct {
	col *chunk.Column
}

func (*jsonSource) columnType() types.ColumnType { return types.TypeString }
func (s *jsonSource) bind(col *chunk.Column)     { s.col = col }
func (s *jsonSource) valueAt(row int) types.Datum {
	return types.NewStringDatum(s.col.GetString(row))
}

type bytesSource struct {
	col *chunk.Column
}

func (*bytesSource) columnType() types.ColumnType { return types.TypeBytes }
func (s *bytesSource) bind(col *chunk.Column)     { s.col = col }
func (s *bytesSource) valueAt(row int) types.Datum {
	return types.NewBytesDatum(s.col.GetBytes(row))
}

type decimalSource struct {
	col *chunk.Column
}

func (*decimalSource) columnType() types.ColumnType { return types.TypeDecimal }
func (s *decimalSource) bind(col *chunk.Column)     { s.col = col }
func (s *decimalSource) scalarAt(row int) types.Datum {
	return types.NewDecimalDatum(s.col.GetDecimal(row))
}
func (s *decimalSource) valueAt(row int) types.Datum { return s.scalarAt(row) }

type int32ArraySource struct {
	col *chunk.Column
}

func (*int32ArraySource) columnType() types.ColumnType { return types.TypeInt32Array }
func (s *int32ArraySource) bind(col *chunk.Column)     { s.col = col }
func (s *int32ArraySource) valueAt(row int) types.Datum {
	return types.NewInt32ArrayDatum(s.col.GetInt32Array(row))
}

type int64ArraySource struct {
	col *chunk.Column
}

func (*int64ArraySource) columnType() types.ColumnType { return types.TypeInt64Array }
func (s *int64ArraySource) bind(col *chunk.Column)     { s.col = col }
func (s *int64ArraySource) valueAt(row int) types.Datum {
	return types.NewInt64ArrayDatum(s.col.GetInt64Array(row))
}

type float32ArraySource struct {
	col *chunk.Column
}

func (*float32ArraySource) columnType() types.ColumnType { return types.TypeFloat32Array }
func (s *float32ArraySource) bind(col *chunk.Column)     { s.col = col }
func (s *float32ArraySource) valueAt(row int) types.Datum {
	return types.NewFloat32ArrayDatum(s.col.GetFloat32Array(row))
}

type float64ArraySource struct {
	col *chunk.Column
}

func (*float64ArraySource) columnType() types.ColumnType { return types.TypeFloat64Array }
func (s *float64ArraySource) bind(col *chunk.Column)     { s.col = col }
func (s *float64ArraySource) valueAt(row int) types.Datum {
	return types.NewFloat64ArrayDatum(s.col.GetFloat64Array(row))
}

type stringArraySource struct {
	col *chunk.Column
}

func (*stringArraySource) columnType() types.ColumnType { return types.TypeStringArray }
func (s *stringArraySource) bind(col *chunk.Column)     { s.col = col }
func (s *stringArraySource) valueAt(row int) types.Datum {
	return types.NewStringArrayDatum(s.col.GetStringArray(row))
}

type bytesArraySource struct {
	col *chunk.Column
}

func (*bytesArraySource) columnType() types.ColumnType { return types.TypeBytesArray }
func (s *bytesArraySource) bind(col *chunk.Column)     { s.col = col }
func (s *bytesArraySource) valueAt(row int) types.Datum {
	return types.NewBytesArrayDatum(s.col.GetBytesArray(row))
}
