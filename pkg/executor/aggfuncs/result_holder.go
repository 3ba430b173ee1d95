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

import "sort"

// AggregationResultHolder holds the single state of a non-grouped
// aggregation scope.
type AggregationResultHolder struct {
	result *ArgMinMaxState
}

// NewAggregationResultHolder creates an empty holder.
func NewAggregationResultHolder() *AggregationResultHolder {
	return &AggregationResultHolder{}
}

// GetResult returns the held state, or nil if no row has been aggregated.
func (h *AggregationResultHolder) GetResult() *ArgMinMaxState {
	return h.result
}

// SetResult stores the state.
func (h *AggregationResultHolder) SetResult(s *ArgMinMaxState) {
	h.result = s
}

// GroupByResultHolder holds one state per observed group id, created
// lazily on the first row routed to that group.
type GroupByResultHolder struct {
	results map[int]*ArgMinMaxState
}

// NewGroupByResultHolder creates an empty holder.
func NewGroupByResultHolder() *GroupByResultHolder {
	return &GroupByResultHolder{results: make(map[int]*ArgMinMaxState)}
}

// GetResult returns the state of groupID, or nil if the group has not
// been observed.
func (h *GroupByResultHolder) GetResult(groupID int) *ArgMinMaxState {
	return h.results[groupID]
}

// SetResultForKey stores the state of groupID.
func (h *GroupByResultHolder) SetResultForKey(groupID int, s *ArgMinMaxState) {
	h.results[groupID] = s
}

// GroupIDs returns the observed group ids in ascending order.
func (h *GroupByResultHolder) GroupIDs() []int {
	ids := make([]int, 0, len(h.results))
	for id := range h.results {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
