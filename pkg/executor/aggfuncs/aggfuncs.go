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

// Package aggfuncs implements the generalized ARG_MIN / ARG_MAX aggregate:
// given measuring columns and projection columns, it returns the projection
// values of every row achieving the extremum of the measuring columns.
//
// The aggregate works over columnar batches (chunk.Chunk), both as a
// single global aggregation and per group, and produces partial states
// that merge pairwise in any order, so partitioned execution across
// segments, goroutines, or nodes yields the same result as a sequential
// scan.
package aggfuncs

// Aggregate function names accepted by Build.
const (
	AggFuncArgMin = "arg_min"
	AggFuncArgMax = "arg_max"
)
