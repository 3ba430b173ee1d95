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

import "strings"

// Schema describes an ordered list of columns by name and declared type.
type Schema struct {
	Names []string
	Types []ColumnType
}

// NewSchema creates a Schema. Callers must pass slices of equal length.
func NewSchema(names []string, colTypes []ColumnType) *Schema {
	return &Schema{Names: names, Types: colTypes}
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.Names)
}

// String implements fmt.Stringer.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := range s.Names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.Names[i])
		sb.WriteByte('(')
		sb.WriteString(s.Types[i].String())
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}
