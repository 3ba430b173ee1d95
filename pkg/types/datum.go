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

package types

import (
	"fmt"
	"math"
	"strings"

	"github.com/pingcap/errors"
	"github.com/shopspring/decimal"
)

// Datum is a typed value tagged with its declared column type. All
// fixed-width scalars share the i field; float payloads are stored as their
// IEEE-754 bits so a Datum stays comparable with ==. Decimal and array
// payloads live in x.
type Datum struct {
	t ColumnType
	i int64
	s string
	b []byte
	x any
}

// ColumnType returns the declared type tag of the datum.
func (d Datum) ColumnType() ColumnType {
	return d.t
}

// NewInt32Datum creates a Datum holding an int32 value.
func NewInt32Datum(v int32) Datum {
	return Datum{t: TypeInt32, i: int64(v)}
}

// NewInt64Datum creates a Datum holding an int64 value.
func NewInt64Datum(v int64) Datum {
	return Datum{t: TypeInt64, i: v}
}

// NewFloat32Datum creates a Datum holding a float32 value.
func NewFloat32Datum(v float32) Datum {
	return Datum{t: TypeFloat32, i: int64(math.Float64bits(float64(v)))}
}

// NewFloat64Datum creates a Datum holding a float64 value.
func NewFloat64Datum(v float64) Datum {
	return Datum{t: TypeFloat64, i: int64(math.Float64bits(v))}
}

// NewStringDatum creates a Datum holding a string value.
func NewStringDatum(v string) Datum {
	return Datum{t: TypeString, s: v}
}

// NewBytesDatum creates a Datum holding a byte-blob value.
func NewBytesDatum(v []byte) Datum {
	return Datum{t: TypeBytes, b: v}
}

// NewDecimalDatum creates a Datum holding an arbitrary-precision decimal.
func NewDecimalDatum(v decimal.Decimal) Datum {
	return Datum{t: TypeDecimal, x: v}
}

// NewInt32ArrayDatum creates a Datum holding an int32 array value.
func NewInt32ArrayDatum(v []int32) Datum {
	return Datum{t: TypeInt32Array, x: v}
}

// NewInt64ArrayDatum creates a Datum holding an int64 array value.
func NewInt64ArrayDatum(v []int64) Datum {
	return Datum{t: TypeInt64Array, x: v}
}

// NewFloat32ArrayDatum creates a Datum holding a float32 array value.
func NewFloat32ArrayDatum(v []float32) Datum {
	return Datum{t: TypeFloat32Array, x: v}
}

// NewFloat64ArrayDatum creates a Datum holding a float64 array value.
func NewFloat64ArrayDatum(v []float64) Datum {
	return Datum{t: TypeFloat64Array, x: v}
}

// NewStringArrayDatum creates a Datum holding a string array value.
func NewStringArrayDatum(v []string) Datum {
	return Datum{t: TypeStringArray, x: v}
}

// NewBytesArrayDatum creates a Datum holding a bytes array value.
func NewBytesArrayDatum(v [][]byte) Datum {
	return Datum{t: TypeBytesArray, x: v}
}

// GetInt32 returns the int32 payload.
func (d Datum) GetInt32() int32 {
	return int32(d.i)
}

// GetInt64 returns the int64 payload.
func (d Datum) GetInt64() int64 {
	return d.i
}

// GetFloat32 returns the float32 payload.
func (d Datum) GetFloat32() float32 {
	return float32(math.Float64frombits(uint64(d.i)))
}

// GetFloat64 returns the float64 payload.
func (d Datum) GetFloat64() float64 {
	return math.Float64frombits(uint64(d.i))
}

// GetString returns the string payload.
func (d Datum) GetString() string {
	return d.s
}

// GetBytes returns the bytes payload.
func (d Datum) GetBytes() []byte {
	return d.b
}

// GetDecimal returns the decimal payload.
func (d Datum) GetDecimal() decimal.Decimal {
	return d.x.(decimal.Decimal)
}

// GetInt32Array returns the int32 array payload.
func (d Datum) GetInt32Array() []int32 {
	return d.x.([]int32)
}

// GetInt64Array returns the int64 array payload.
func (d Datum) GetInt64Array() []int64 {
	return d.x.([]int64)
}

// GetFloat32Array returns the float32 array payload.
func (d Datum) GetFloat32Array() []float32 {
	return d.x.([]float32)
}

// GetFloat64Array returns the float64 array payload.
func (d Datum) GetFloat64Array() []float64 {
	return d.x.([]float64)
}

// GetStringArray returns the string array payload.
func (d Datum) GetStringArray() []string {
	return d.x.([]string)
}

// GetBytesArray returns the bytes array payload.
func (d Datum) GetBytesArray() [][]byte {
	return d.x.([][]byte)
}

// Compare compares d against other, which must carry the same column type.
// It is defined for the scalar key types only; bytes and array datums are
// projected, never ordered.
func (d Datum) Compare(other Datum) (int, error) {
	if d.t != other.t {
		return 0, errors.Errorf("cannot compare %s datum with %s datum", d.t, other.t)
	}
	switch d.t {
	case TypeInt32, TypeInt64:
		return cmpInt64(d.i, other.i), nil
	case TypeFloat32, TypeFloat64:
		return cmpFloat64(d.GetFloat64(), other.GetFloat64()), nil
	case TypeString:
		return strings.Compare(d.s, other.s), nil
	case TypeDecimal:
		return d.GetDecimal().Cmp(other.GetDecimal()), nil
	default:
		return 0, errors.Errorf("datum type %s is not ordered", d.t)
	}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpFloat64 is a total order: NaN equals NaN and sorts above every other
// value, so a NaN key can never tie with a real key.
func cmpFloat64(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer, for logs and error messages.
func (d Datum) String() string {
	switch d.t {
	case TypeInt32, TypeInt64:
		return fmt.Sprintf("%d", d.i)
	case TypeFloat32, TypeFloat64:
		return fmt.Sprintf("%v", d.GetFloat64())
	case TypeString:
		return d.s
	case TypeBytes:
		return fmt.Sprintf("%x", d.b)
	case TypeDecimal:
		return d.GetDecimal().String()
	default:
		return fmt.Sprintf("%v", d.x)
	}
}
