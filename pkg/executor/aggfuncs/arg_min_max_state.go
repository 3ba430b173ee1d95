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
	"github.com/pingcap/errors"
)

// CompareResult classifies one row against the current extremum key.
type CompareResult int

// Results of comparing a candidate key against the current key.
const (
	// CompareLower: the row does not reach the extremum; ignore it.
	CompareLower CompareResult = -1
	// CompareTie: the row's key equals the extremum; collect the row.
	CompareTie CompareResult = 0
	// CompareNewKey: the row establishes a new extremum; previously
	// collected rows are discarded.
	CompareNewKey CompareResult = 1
)

// ArgMinMaxState is the partial result of one aggregation scope: the
// current extremum key over the measuring columns and the projection rows
// of every row sharing that key.
//
// Invariant: rows holds exactly the projection values of rows whose
// measuring values equal key; rows is empty iff the state has seen zero
// rows (key == nil). A state is owned by exactly one scope and never
// mutated concurrently.
type ArgMinMaxState struct {
	measuringSchema  *types.Schema
	projectionSchema *types.Schema

	// key is the extremum tuple, one datum per measuring column in
	// declaration order. nil until the first row is seen.
	key  []types.Datum
	rows [][]types.Datum
}

// NewArgMinMaxState creates an unset state carrying the discovered
// schemas.
func NewArgMinMaxState(measuring, projection *types.Schema) *ArgMinMaxState {
	return &ArgMinMaxState{
		measuringSchema:  measuring,
		projectionSchema: projection,
	}
}

// MeasuringSchema returns the measuring-column schema.
func (s *ArgMinMaxState) MeasuringSchema() *types.Schema {
	return s.measuringSchema
}

// ProjectionSchema returns the projection-column schema.
func (s *ArgMinMaxState) ProjectionSchema() *types.Schema {
	return s.projectionSchema
}

// Key returns the current extremum key, or nil if no row has been seen.
func (s *ArgMinMaxState) Key() []types.Datum {
	return s.key
}

// Rows returns the collected projection rows.
func (s *ArgMinMaxState) Rows() [][]types.Datum {
	return s.rows
}

// compareAndSetKey compares row's measuring values against the current key
// in declared column order. On CompareNewKey the key is replaced and the
// collected rows are dropped; the caller is expected to collect the row's
// projection values afterwards. On CompareLower nothing changes.
func (s *ArgMinMaxState) compareAndSetKey(sources []measuringSource, row int, isMax bool) (CompareResult, error) {
	if s.key == nil {
		s.key = readKey(sources, row)
		return CompareNewKey, nil
	}
	for i, src := range sources {
		cmp, err := src.scalarAt(row).Compare(s.key[i])
		if err != nil {
			return CompareLower, errors.Annotatef(ErrSchemaMismatch,
				"measuring column %s: %v", s.measuringSchema.Names[i], err)
		}
		if cmp == 0 {
			continue
		}
		if isMax == (cmp > 0) {
			s.key = readKey(sources, row)
			s.rows = s.rows[:0]
			return CompareNewKey, nil
		}
		return CompareLower, nil
	}
	return CompareTie, nil
}

func readKey(sources []measuringSource, row int) []types.Datum {
	key := make([]types.Datum, len(sources))
	for i, src := range sources {
		key[i] = src.scalarAt(row)
	}
	return key
}

func readRow(sources []projectionSource, row int) []types.Datum {
	vals := make([]types.Datum, len(sources))
	for i, src := range sources {
		vals[i] = src.valueAt(row)
	}
	return vals
}

// addRow collects row's projection values alongside the existing ones.
func (s *ArgMinMaxState) addRow(sources []projectionSource, row int) {
	s.rows = append(s.rows, readRow(sources, row))
}

// setToNewRow replaces the collection with row's projection values alone.
func (s *ArgMinMaxState) setToNewRow(sources []projectionSource, row int) {
	s.rows = s.rows[:0]
	s.rows = append(s.rows, readRow(sources, row))
}

// Merge combines s with other under the given direction and returns the
// combined state. Merging is commutative and associative up to row order;
// on equal keys the result keeps s's rows followed by other's, so a fixed
// reduction order reproduces byte-identical results.
//
// An unset state is the identity element. The loser of an unequal-key
// merge is discarded whole.
func (s *ArgMinMaxState) Merge(other *ArgMinMaxState, isMax bool) (*ArgMinMaxState, error) {
	if other == nil || other.key == nil {
		return s, nil
	}
	if s.key == nil {
		return other, nil
	}
	for i := range s.key {
		cmp, err := other.key[i].Compare(s.key[i])
		if err != nil {
			return nil, errors.Annotatef(ErrSchemaMismatch,
				"merging measuring column %s: %v", s.measuringSchema.Names[i], err)
		}
		if cmp == 0 {
			continue
		}
		if isMax == (cmp > 0) {
			return other, nil
		}
		return s, nil
	}
	s.rows = append(s.rows, other.rows...)
	return s, nil
}
