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

// argbench runs ARG_MIN/ARG_MAX over synthetic segments and reports the
// winning rows and timings. It exercises the whole stack end to end:
// batch generation, parallel scan, group routing, and reduction.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/colquery/argminmax/pkg/config"
	"github.com/colquery/argminmax/pkg/executor/aggfuncs"
	"github.com/colquery/argminmax/pkg/executor/aggregate"
	"github.com/colquery/argminmax/pkg/expression"
	"github.com/colquery/argminmax/pkg/metrics"
	"github.com/colquery/argminmax/pkg/types"
	"github.com/colquery/argminmax/pkg/util/chunk"
	"github.com/colquery/argminmax/pkg/util/logutil"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	configPath  = pflag.String("config", "", "config file path")
	numSegments = pflag.Int("segments", 8, "number of synthetic segments")
	numRows     = pflag.Int("rows", 1_000_000, "total number of rows across segments")
	numGroups   = pflag.Int("groups", 0, "number of groups; 0 runs the global scope")
	direction   = pflag.String("direction", "max", "max or min")
	seed        = pflag.Int64("seed", 1, "random seed for data generation")
)

func main() {
	pflag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()
	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			return err
		}
	}
	if err := logutil.InitLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	metrics.Register(prometheus.NewRegistry())

	isMax := *direction == "max"
	name := aggfuncs.AggFuncArgMin
	if isMax {
		name = aggfuncs.AggFuncArgMax
	}
	fn, err := aggfuncs.Build(&aggfuncs.AggFuncDesc{
		Name: name,
		Args: []expression.Expression{
			expression.NewStringLiteral(uuid.New().String()),
			expression.NewIntLiteral(1),
			expression.NewColumn("score"),
			expression.NewColumn("label"),
		},
	})
	if err != nil {
		return err
	}

	logger := logutil.BgLogger()
	rng := rand.New(rand.NewSource(*seed))
	segments, mapper := generateSegments(rng, *numSegments, *numRows, *numGroups, cfg.Performance.MaxChunkSize)

	ex := aggregate.NewExecutor(fn, cfg.Performance.ScanConcurrency)
	start := time.Now()
	if *numGroups > 0 {
		states, err := ex.RunGroupBy(segments)
		if err != nil {
			return err
		}
		logger.Info("grouped aggregation finished",
			zap.String("function", fn.Name()),
			zap.Int("groups", len(states)),
			zap.Duration("elapsed", time.Since(start)))
		for groupID, state := range states {
			logger.Info("group result",
				zap.ByteString("groupKey", mapper.Key(groupID)),
				zap.Any("key", state.Key()),
				zap.Int("winningRows", len(state.Rows())))
		}
		return nil
	}

	state, err := ex.Run(segments)
	if err != nil {
		return err
	}
	logger.Info("aggregation finished",
		zap.String("function", fn.Name()),
		zap.Stringer("measuringSchema", state.MeasuringSchema()),
		zap.Stringer("projectionSchema", state.ProjectionSchema()),
		zap.Any("key", state.Key()),
		zap.Int("winningRows", len(state.Rows())),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// segmentBuilder accumulates rows for one segment and cuts them into
// chunkSize batches.
type segmentBuilder struct {
	scores   []int64
	labels   []string
	groupIDs []int
}

func (b *segmentBuilder) addRow(score int64, label string, groupID int, grouped bool) {
	b.scores = append(b.scores, score)
	b.labels = append(b.labels, label)
	if grouped {
		b.groupIDs = append(b.groupIDs, groupID)
	}
}

func (b *segmentBuilder) build(chunkSize int) aggregate.Segment {
	var batches []*aggregate.Batch
	for lo := 0; lo < len(b.scores); lo += chunkSize {
		hi := min(lo+chunkSize, len(b.scores))
		score := chunk.NewColumn(types.KindInt64, true)
		label := chunk.NewColumn(types.KindString, true)
		for i := lo; i < hi; i++ {
			score.AppendInt64(b.scores[i])
			label.AppendString(b.labels[i])
		}
		chk := chunk.NewChunk()
		chk.AddColumn("score", score)
		chk.AddColumn("label", label)
		batch := &aggregate.Batch{Chunk: chk}
		if b.groupIDs != nil {
			batch.GroupIDs = b.groupIDs[lo:hi]
		}
		batches = append(batches, batch)
	}
	return aggregate.NewSliceSegment(batches...)
}

// generateSegments builds in-memory segments with an int64 score column and
// a string label column. For the global scope rows are dealt round-robin;
// grouped rows are placed by sharding the encoded category key, so each
// segment owns the groups routed to it.
func generateSegments(rng *rand.Rand, segments, totalRows, groups, chunkSize int) ([]aggregate.Segment, *aggregate.GroupKeyMapper) {
	mapper := aggregate.NewGroupKeyMapper()
	builders := make([]*segmentBuilder, segments)
	for i := range builders {
		builders[i] = &segmentBuilder{}
	}
	for i := range totalRows {
		v := rng.Int63n(int64(totalRows) * 10)
		target := i % segments
		var groupID int
		if groups > 0 {
			key := fmt.Appendf(nil, "category-%d", v%int64(groups))
			groupID = mapper.ID(key)
			target = aggregate.Shard(key, segments)
		}
		builders[target].addRow(v, fmt.Sprintf("row-%d", v), groupID, groups > 0)
	}
	out := make([]aggregate.Segment, 0, segments)
	for _, b := range builders {
		out = append(out, b.build(chunkSize))
	}
	return out, mapper
}
