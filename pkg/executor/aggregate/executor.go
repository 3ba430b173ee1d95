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

// Package aggregate runs an aggregate function over many segments in
// parallel and reduces the per-worker partial states into one final state
// per aggregation scope. Each scan worker owns its evaluation context and
// result holder; nothing is shared during the scan phase, and the
// reduction relies only on the merge operator being commutative and
// associative.
package aggregate

import (
	"sync"
	"time"

	"github.com/colquery/argminmax/pkg/executor/aggfuncs"
	"github.com/colquery/argminmax/pkg/metrics"
	"github.com/colquery/argminmax/pkg/util/logutil"
	"github.com/pingcap/errors"
	"github.com/pingcap/failpoint"
	"go.uber.org/zap"
)

// Executor scans segments with a fixed pool of workers and reduces their
// partial states.
type Executor struct {
	fn          *aggfuncs.ArgMinMax
	concurrency int
}

// NewExecutor creates an Executor running fn with the given scan
// concurrency. Concurrency below one is clamped to one.
func NewExecutor(fn *aggfuncs.ArgMinMax, concurrency int) *Executor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Executor{fn: fn, concurrency: concurrency}
}

// Run aggregates all segments as one global scope and returns the final
// state. Zero input rows yield an empty state with the fallback schema.
func (ex *Executor) Run(segments []Segment) (*aggfuncs.ArgMinMaxState, error) {
	numWorkers := min(ex.concurrency, max(len(segments), 1))
	segCh := distribute(segments)

	states := make([]*aggfuncs.ArgMinMaxState, numWorkers)
	errs := make([]error, numWorkers)
	var wg sync.WaitGroup
	for id := range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			states[id], errs[id] = ex.scanWorker(segCh)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	defer func() { metrics.MergeDuration.Observe(time.Since(start).Seconds()) }()
	var final *aggfuncs.ArgMinMaxState
	var err error
	for _, state := range states {
		final, err = ex.fn.MergePartialResult(final, state)
		if err != nil {
			return nil, err
		}
	}
	return final, nil
}

// RunGroupBy aggregates all segments per group and returns one final state
// per observed group id.
func (ex *Executor) RunGroupBy(segments []Segment) (map[int]*aggfuncs.ArgMinMaxState, error) {
	numWorkers := min(ex.concurrency, max(len(segments), 1))
	segCh := distribute(segments)

	results := make([]map[int]*aggfuncs.ArgMinMaxState, numWorkers)
	errs := make([]error, numWorkers)
	var wg sync.WaitGroup
	for id := range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[id], errs[id] = ex.groupByScanWorker(segCh)
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	start := time.Now()
	defer func() { metrics.MergeDuration.Observe(time.Since(start).Seconds()) }()
	final := make(map[int]*aggfuncs.ArgMinMaxState)
	for _, partial := range results {
		for groupID, state := range partial {
			merged, err := ex.fn.MergePartialResult(final[groupID], state)
			if err != nil {
				return nil, err
			}
			final[groupID] = merged
		}
	}
	return final, nil
}

func distribute(segments []Segment) chan Segment {
	segCh := make(chan Segment, len(segments))
	for _, seg := range segments {
		segCh <- seg
	}
	close(segCh)
	return segCh
}

func (ex *Executor) scanWorker(segCh chan Segment) (state *aggfuncs.ArgMinMaxState, err error) {
	metrics.ActiveScanWorkers.Inc()
	defer metrics.ActiveScanWorkers.Dec()
	defer func() {
		if r := recover(); r != nil {
			logutil.BgLogger().Error("aggregation scan worker panicked",
				zap.Any("recover", r), zap.Stack("stack"))
			err = errors.Errorf("aggregation scan worker panicked: %v", r)
		}
	}()

	evalCtx := ex.fn.NewEvalContext()
	holder := aggfuncs.NewAggregationResultHolder()
	for seg := range segCh {
		if err := ex.scanSegment(seg, func(batch *Batch) error {
			return ex.fn.Aggregate(evalCtx, batch.NumRows(), holder, batch.Chunk)
		}); err != nil {
			return nil, err
		}
	}
	return ex.fn.ExtractAggregationResult(evalCtx, holder), nil
}

func (ex *Executor) groupByScanWorker(segCh chan Segment) (states map[int]*aggfuncs.ArgMinMaxState, err error) {
	metrics.ActiveScanWorkers.Inc()
	defer metrics.ActiveScanWorkers.Dec()
	defer func() {
		if r := recover(); r != nil {
			logutil.BgLogger().Error("aggregation scan worker panicked",
				zap.Any("recover", r), zap.Stack("stack"))
			err = errors.Errorf("aggregation scan worker panicked: %v", r)
		}
	}()

	evalCtx := ex.fn.NewEvalContext()
	holder := aggfuncs.NewGroupByResultHolder()
	for seg := range segCh {
		if err := ex.scanSegment(seg, func(batch *Batch) error {
			if batch.MVGroupIDs != nil {
				return ex.fn.AggregateGroupByMV(evalCtx, batch.NumRows(), batch.MVGroupIDs, holder, batch.Chunk)
			}
			return ex.fn.AggregateGroupBySV(evalCtx, batch.NumRows(), batch.GroupIDs, holder, batch.Chunk)
		}); err != nil {
			return nil, err
		}
	}

	states = make(map[int]*aggfuncs.ArgMinMaxState)
	for _, groupID := range holder.GroupIDs() {
		states[groupID] = ex.fn.ExtractGroupByResult(evalCtx, holder, groupID)
	}
	return states, nil
}

func (*Executor) scanSegment(seg Segment, consume func(*Batch) error) error {
	for {
		batch, err := seg.NextBatch()
		if err != nil {
			return errors.Trace(err)
		}
		if batch == nil {
			return nil
		}
		failpoint.Inject("mockScanConsumePanic", func() {
			panic("mockScanConsumePanic")
		})
		if err := consume(batch); err != nil {
			return err
		}
		metrics.ScannedBatches.Inc()
		metrics.ScannedRows.Add(float64(batch.NumRows()))
	}
}
