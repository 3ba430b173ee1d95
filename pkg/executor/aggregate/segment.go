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

package aggregate

import "github.com/colquery/argminmax/pkg/util/chunk"

// Batch is one row batch of a segment together with its optional per-row
// group routing. Chunk may be nil for a structurally empty batch. For
// grouped execution exactly one of GroupIDs (one id per row) or
// MVGroupIDs (an id sequence per row) is set.
type Batch struct {
	Chunk      *chunk.Chunk
	GroupIDs   []int
	MVGroupIDs [][]int
}

// NumRows returns the batch's row count, zero for a structurally empty
// batch.
func (b *Batch) NumRows() int {
	if b.Chunk == nil {
		return 0
	}
	return b.Chunk.NumRows()
}

// Segment is one independently scannable partition of the input. Segments
// are scanned by exactly one worker each; a segment's batches are consumed
// in order, but no ordering holds across segments.
type Segment interface {
	// NextBatch returns the segment's next batch, or nil once the segment
	// is exhausted.
	NextBatch() (*Batch, error)
}

// SliceSegment is a Segment over an in-memory batch slice.
type SliceSegment struct {
	batches []*Batch
	cursor  int
}

// NewSliceSegment creates a SliceSegment serving the given batches.
func NewSliceSegment(batches ...*Batch) *SliceSegment {
	return &SliceSegment{batches: batches}
}

// NextBatch implements Segment.
func (s *SliceSegment) NextBatch() (*Batch, error) {
	if s.cursor >= len(s.batches) {
		return nil, nil
	}
	b := s.batches[s.cursor]
	s.cursor++
	return b, nil
}
