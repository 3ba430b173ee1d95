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

package chunk

import (
	"fmt"

	"github.com/colquery/argminmax/pkg/types"
	"github.com/shopspring/decimal"
)

// Column holds one column's values for one batch. A column is fixed at
// construction to a runtime value kind and to being single- or multi-valued;
// both are reported once per batch to schema discovery and never change.
//
// Storage folds kinds the same way the schema side does: bool values are
// stored as int32 0/1 and timestamps as int64 epoch-milliseconds, so the
// typed read for a bool column is GetInt32 and for a timestamp column is
// GetInt64. JSON text shares the string storage.
type Column struct {
	kind   types.ValueKind
	single bool
	length int

	i32s []int32
	i64s []int64
	f32s []float32
	f64s []float64
	strs []string
	byts [][]byte
	decs []decimal.Decimal

	i32Arrs [][]int32
	i64Arrs [][]int64
	f32Arrs [][]float32
	f64Arrs [][]float64
	strArrs [][]string
	bytArrs [][][]byte
}

// NewColumn creates an empty column of the given runtime kind. single
// reports whether the column is single-valued.
func NewColumn(kind types.ValueKind, single bool) *Column {
	return &Column{kind: kind, single: single}
}

// Kind returns the runtime value kind of the column.
func (c *Column) Kind() types.ValueKind {
	return c.kind
}

// IsSingleValue reports whether the column is single-valued.
func (c *Column) IsSingleValue() bool {
	return c.single
}

// NumRows returns the number of rows appended so far.
func (c *Column) NumRows() int {
	return c.length
}

func (c *Column) assertKind(kind types.ValueKind, single bool) {
	if c.kind != kind || c.single != single {
		panic(fmt.Sprintf("column access with kind %s (single=%v) on column of kind %s (single=%v)",
			kind, single, c.kind, c.single))
	}
}

// AppendInt32 appends a single int32 value.
func (c *Column) AppendInt32(v int32) {
	c.assertKind(types.KindInt32, true)
	c.i32s = append(c.i32s, v)
	c.length++
}

// AppendBool appends a single bool value, stored as int32 0/1.
func (c *Column) AppendBool(v bool) {
	c.assertKind(types.KindBool, true)
	var i int32
	if v {
		i = 1
	}
	c.i32s = append(c.i32s, i)
	c.length++
}

// AppendInt64 appends a single int64 value.
func (c *Column) AppendInt64(v int64) {
	c.assertKind(types.KindInt64, true)
	c.i64s = append(c.i64s, v)
	c.length++
}

// AppendTimestamp appends a single timestamp value as epoch-milliseconds.
func (c *Column) AppendTimestamp(millis int64) {
	c.assertKind(types.KindTimestamp, true)
	c.i64s = append(c.i64s, millis)
	c.length++
}

// AppendFloat32 appends a single float32 value.
func (c *Column) AppendFloat32(v float32) {
	c.assertKind(types.KindFloat32, true)
	c.f32s = append(c.f32s, v)
	c.length++
}

// AppendFloat64 appends a single float64 value.
func (c *Column) AppendFloat64(v float64) {
	c.assertKind(types.KindFloat64, true)
	c.f64s = append(c.f64s, v)
	c.length++
}

// AppendString appends a single string value.
func (c *Column) AppendString(v string) {
	c.assertKind(types.KindString, true)
	c.strs = append(c.strs, v)
	c.length++
}

// AppendJSON appends a single json-text value, sharing the string storage.
func (c *Column) AppendJSON(v string) {
	c.assertKind(types.KindJSON, true)
	c.strs = append(c.strs, v)
	c.length++
}

// AppendBytes appends a single byte-blob value.
func (c *Column) AppendBytes(v []byte) {
	c.assertKind(types.KindBytes, true)
	c.byts = append(c.byts, v)
	c.length++
}

// AppendDecimal appends a single decimal value.
func (c *Column) AppendDecimal(v decimal.Decimal) {
	c.assertKind(types.KindDecimal, true)
	c.decs = append(c.decs, v)
	c.length++
}

// AppendInt32Array appends one row's int32 array.
func (c *Column) AppendInt32Array(v []int32) {
	c.assertKind(types.KindInt32, false)
	c.i32Arrs = append(c.i32Arrs, v)
	c.length++
}

// AppendBoolArray appends one row's bool array, each element stored as
// int32 0/1.
func (c *Column) AppendBoolArray(v []bool) {
	c.assertKind(types.KindBool, false)
	arr := make([]int32, len(v))
	for i, b := range v {
		if b {
			arr[i] = 1
		}
	}
	c.i32Arrs = append(c.i32Arrs, arr)
	c.length++
}

// AppendInt64Array appends one row's int64 array.
func (c *Column) AppendInt64Array(v []int64) {
	c.assertKind(types.KindInt64, false)
	c.i64Arrs = append(c.i64Arrs, v)
	c.length++
}

// AppendTimestampArray appends one row's timestamp array as
// epoch-milliseconds.
func (c *Column) AppendTimestampArray(millis []int64) {
	c.assertKind(types.KindTimestamp, false)
	c.i64Arrs = append(c.i64Arrs, millis)
	c.length++
}

// AppendFloat32Array appends one row's float32 array.
func (c *Column) AppendFloat32Array(v []float32) {
	c.assertKind(types.KindFloat32, false)
	c.f32Arrs = append(c.f32Arrs, v)
	c.length++
}

// AppendFloat64Array appends one row's float64 array.
func (c *Column) AppendFloat64Array(v []float64) {
	c.assertKind(types.KindFloat64, false)
	c.f64Arrs = append(c.f64Arrs, v)
	c.length++
}

// AppendStringArray appends one row's string array.
func (c *Column) AppendStringArray(v []string) {
	c.assertKind(types.KindString, false)
	c.strArrs = append(c.strArrs, v)
	c.length++
}

// AppendBytesArray appends one row's bytes array.
func (c *Column) AppendBytesArray(v [][]byte) {
	c.assertKind(types.KindBytes, false)
	c.bytArrs = append(c.bytArrs, v)
	c.length++
}

// GetInt32 reads the int32 value at row. Valid for int32 and bool columns.
func (c *Column) GetInt32(row int) int32 {
	return c.i32s[row]
}

// GetInt64 reads the int64 value at row. Valid for int64 and timestamp
// columns.
func (c *Column) GetInt64(row int) int64 {
	return c.i64s[row]
}

// GetFloat32 reads the float32 value at row.
func (c *Column) GetFloat32(row int) float32 {
	return c.f32s[row]
}

// GetFloat64 reads the float64 value at row.
func (c *Column) GetFloat64(row int) float64 {
	return c.f64s[row]
}

// GetString reads the string value at row. Valid for string and json
// columns.
func (c *Column) GetString(row int) string {
	return c.strs[row]
}

// GetBytes reads the byte-blob value at row.
func (c *Column) GetBytes(row int) []byte {
	return c.byts[row]
}

// GetDecimal reads the decimal value at row.
func (c *Column) GetDecimal(row int) decimal.Decimal {
	return c.decs[row]
}

// GetInt32Array reads the int32 array at row. Valid for int32 and bool
// array columns.
func (c *Column) GetInt32Array(row int) []int32 {
	return c.i32Arrs[row]
}

// GetInt64Array reads the int64 array at row. Valid for int64 and
// timestamp array columns.
func (c *Column) GetInt64Array(row int) []int64 {
	return c.i64Arrs[row]
}

// GetFloat32Array reads the float32 array at row.
func (c *Column) GetFloat32Array(row int) []float32 {
	return c.f32Arrs[row]
}

// GetFloat64Array reads the float64 array at row.
func (c *Column) GetFloat64Array(row int) []float64 {
	return c.f64Arrs[row]
}

// GetStringArray reads the string array at row.
func (c *Column) GetStringArray(row int) []string {
	return c.strArrs[row]
}

// GetBytesArray reads the bytes array at row.
func (c *Column) GetBytesArray(row int) [][]byte {
	return c.bytArrs[row]
}
