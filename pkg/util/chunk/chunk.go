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

import "fmt"

// Chunk is one batch of rows laid out column by column. Columns are looked
// up by name; all columns in a chunk must hold the same number of rows.
//
// A nil *Chunk at the aggregation boundary signals a structurally empty
// batch: no rows matched and no column readers exist to introspect.
type Chunk struct {
	numRows int
	names   []string
	cols    map[string]*Column
}

// NewChunk creates an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{cols: make(map[string]*Column)}
}

// AddColumn registers col under name. It panics if the column's row count
// disagrees with columns added earlier; batches are built column-complete.
func (c *Chunk) AddColumn(name string, col *Column) {
	if len(c.names) > 0 && col.NumRows() != c.numRows {
		panic(fmt.Sprintf("column %s has %d rows, chunk has %d", name, col.NumRows(), c.numRows))
	}
	if _, ok := c.cols[name]; !ok {
		c.names = append(c.names, name)
	}
	c.cols[name] = col
	c.numRows = col.NumRows()
}

// Column returns the column registered under name, or nil.
func (c *Chunk) Column(name string) *Column {
	return c.cols[name]
}

// NumRows returns the number of rows in the chunk.
func (c *Chunk) NumRows() int {
	return c.numRows
}

// ColumnNames returns the column names in registration order.
func (c *Chunk) ColumnNames() []string {
	return c.names
}
