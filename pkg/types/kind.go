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

// ValueKind is the runtime kind of a column's stored values, as reported by
// the storage layer for one batch. It is a closed set: schema discovery
// matches it exhaustively and rejects anything else up front.
type ValueKind byte

// Runtime value kinds.
const (
	KindInt32 ValueKind = iota
	KindBool
	KindInt64
	KindTimestamp
	KindFloat32
	KindFloat64
	KindString
	KindJSON
	KindBytes
	KindDecimal
)

var kindNames = map[ValueKind]string{
	KindInt32:     "int32",
	KindBool:      "bool",
	KindInt64:     "int64",
	KindTimestamp: "timestamp",
	KindFloat32:   "float32",
	KindFloat64:   "float64",
	KindString:    "string",
	KindJSON:      "json",
	KindBytes:     "bytes",
	KindDecimal:   "decimal",
}

// String implements fmt.Stringer.
func (k ValueKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ColumnType is the declared type of a column in a result schema. Boolean
// and timestamp runtime kinds fold into TypeInt32 and TypeInt64
// respectively, so the schema side only carries the types listed here.
type ColumnType byte

// Declared schema column types.
const (
	TypeInt32 ColumnType = iota
	TypeInt64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeBytes
	TypeDecimal
	TypeInt32Array
	TypeInt64Array
	TypeFloat32Array
	TypeFloat64Array
	TypeStringArray
	TypeBytesArray
)

var columnTypeNames = map[ColumnType]string{
	TypeInt32:        "INT",
	TypeInt64:        "LONG",
	TypeFloat32:      "FLOAT",
	TypeFloat64:      "DOUBLE",
	TypeString:       "STRING",
	TypeBytes:        "BYTES",
	TypeDecimal:      "BIG_DECIMAL",
	TypeInt32Array:   "INT_ARRAY",
	TypeInt64Array:   "LONG_ARRAY",
	TypeFloat32Array: "FLOAT_ARRAY",
	TypeFloat64Array: "DOUBLE_ARRAY",
	TypeStringArray:  "STRING_ARRAY",
	TypeBytesArray:   "BYTES_ARRAY",
}

// String implements fmt.Stringer.
func (t ColumnType) String() string {
	if name, ok := columnTypeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsArray reports whether t is a multi-valued column type.
func (t ColumnType) IsArray() bool {
	return t >= TypeInt32Array
}
