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
	"github.com/colquery/argminmax/pkg/expression"
	"github.com/colquery/argminmax/pkg/types"
	"github.com/colquery/argminmax/pkg/util/chunk"
	"github.com/pingcap/errors"
)

// ArgMinMax evaluates ARG_MIN or ARG_MAX over columnar batches. One
// instance exists per aggregate in the plan and is itself stateless across
// rows; all mutable per-execution state lives in ArgMinMaxEvalContext and
// in the result holders, so parallel workers share the instance safely by
// giving each worker its own context.
type ArgMinMax struct {
	// functionID correlates this instance with sibling instances sharing
	// the same direction and measuring columns. Opaque to this package.
	functionID     string
	isMax          bool
	measuringCols  []*expression.Column
	projectionCols []*expression.Column
}

// NewArgMinMax creates an ArgMinMax aggregate.
func NewArgMinMax(functionID string, isMax bool, measuring, projection []*expression.Column) (*ArgMinMax, error) {
	if len(measuring) == 0 {
		return nil, errors.Annotate(ErrInvalidArguments, "at least one measuring column is required")
	}
	if len(projection) == 0 {
		return nil, errors.Annotate(ErrInvalidArguments, "at least one projection column is required")
	}
	return &ArgMinMax{
		functionID:     functionID,
		isMax:          isMax,
		measuringCols:  measuring,
		projectionCols: projection,
	}, nil
}

// Name returns the aggregate function name.
func (e *ArgMinMax) Name() string {
	if e.isMax {
		return AggFuncArgMax
	}
	return AggFuncArgMin
}

// IsMax reports the configured direction.
func (e *ArgMinMax) IsMax() bool {
	return e.isMax
}

// FunctionID returns the opaque correlation id of this instance.
func (e *ArgMinMax) FunctionID() string {
	return e.functionID
}

// InputExpressions rebuilds the declaration-order argument list: function
// id, measuring-column count, measuring columns, projection columns.
func (e *ArgMinMax) InputExpressions() []expression.Expression {
	exprs := make([]expression.Expression, 0, 2+len(e.measuringCols)+len(e.projectionCols))
	exprs = append(exprs, expression.NewStringLiteral(e.functionID))
	exprs = append(exprs, expression.NewIntLiteral(int64(len(e.measuringCols))))
	for _, col := range e.measuringCols {
		exprs = append(exprs, col)
	}
	for _, col := range e.projectionCols {
		exprs = append(exprs, col)
	}
	return exprs
}

// ArgMinMaxEvalContext owns the per-worker mutable state: the bound value
// sources and the schemas discovered from the first non-empty batch. Each
// parallel worker allocates its own context; contexts are never shared.
type ArgMinMaxEvalContext struct {
	schemaInitialized bool

	measuringSources  []measuringSource
	projectionSources []projectionSource

	// Runtime kinds and arity observed at discovery, kept to defensively
	// re-check later batches of the same context.
	measuringKinds   []types.ValueKind
	projectionKinds  []types.ValueKind
	projectionSingle []bool

	measuringSchema  *types.Schema
	projectionSchema *types.Schema
}

// NewEvalContext allocates a fresh per-worker evaluation context.
func (*ArgMinMax) NewEvalContext() *ArgMinMaxEvalContext {
	return &ArgMinMaxEvalContext{}
}

// MeasuringSchema returns the discovered measuring schema, or nil before
// discovery.
func (ctx *ArgMinMaxEvalContext) MeasuringSchema() *types.Schema {
	return ctx.measuringSchema
}

// ProjectionSchema returns the discovered projection schema, or nil before
// discovery.
func (ctx *ArgMinMaxEvalContext) ProjectionSchema() *types.Schema {
	return ctx.projectionSchema
}

// initWithBatch discovers the schemas from the first batch seen by the
// context, or re-binds the already-built sources to a later batch.
func (e *ArgMinMax) initWithBatch(ctx *ArgMinMaxEvalContext, input *chunk.Chunk) error {
	if ctx.schemaInitialized {
		return e.rebind(ctx, input)
	}
	if err := e.initMeasuringSources(ctx, input); err != nil {
		return err
	}
	if err := e.initProjectionSources(ctx, input); err != nil {
		return err
	}
	ctx.schemaInitialized = true
	return nil
}

func (e *ArgMinMax) initMeasuringSources(ctx *ArgMinMaxEvalContext, input *chunk.Chunk) error {
	names := make([]string, len(e.measuringCols))
	colTypes := make([]types.ColumnType, len(e.measuringCols))
	ctx.measuringSources = make([]measuringSource, 0, len(e.measuringCols))
	ctx.measuringKinds = make([]types.ValueKind, len(e.measuringCols))
	for i, col := range e.measuringCols {
		blk := input.Column(col.Name)
		if blk == nil {
			return errors.Annotatef(ErrSchemaMismatch, "measuring column %s missing from batch", col.Name)
		}
		src, err := newMeasuringSource(col.Name, blk)
		if err != nil {
			return err
		}
		ctx.measuringSources = append(ctx.measuringSources, src)
		ctx.measuringKinds[i] = blk.Kind()
		names[i] = col.Name
		colTypes[i] = src.columnType()
	}
	ctx.measuringSchema = types.NewSchema(names, colTypes)
	return nil
}

func (e *ArgMinMax) initProjectionSources(ctx *ArgMinMaxEvalContext, input *chunk.Chunk) error {
	names := make([]string, len(e.projectionCols))
	colTypes := make([]types.ColumnType, len(e.projectionCols))
	ctx.projectionSources = make([]projectionSource, 0, len(e.projectionCols))
	ctx.projectionKinds = make([]types.ValueKind, len(e.projectionCols))
	ctx.projectionSingle = make([]bool, len(e.projectionCols))
	for i, col := range e.projectionCols {
		blk := input.Column(col.Name)
		if blk == nil {
			return errors.Annotatef(ErrSchemaMismatch, "projection column %s missing from batch", col.Name)
		}
		src, err := newProjectionSource(col.Name, blk)
		if err != nil {
			return err
		}
		ctx.projectionSources = append(ctx.projectionSources, src)
		ctx.projectionKinds[i] = blk.Kind()
		ctx.projectionSingle[i] = blk.IsSingleValue()
		names[i] = col.Name
		colTypes[i] = src.columnType()
	}
	ctx.projectionSchema = types.NewSchema(names, colTypes)
	return nil
}

// rebind points the already-built sources at the new batch's columns,
// re-checking that the batch still matches the discovered schema.
func (e *ArgMinMax) rebind(ctx *ArgMinMaxEvalContext, input *chunk.Chunk) error {
	for i, col := range e.measuringCols {
		if i >= len(ctx.measuringSources) {
			break
		}
		blk := input.Column(col.Name)
		if blk == nil {
			return errors.Annotatef(ErrSchemaMismatch, "measuring column %s missing from batch", col.Name)
		}
		if blk.Kind() != ctx.measuringKinds[i] || !blk.IsSingleValue() {
			return errors.Annotatef(ErrSchemaMismatch,
				"measuring column %s changed to kind %s (single=%v)", col.Name, blk.Kind(), blk.IsSingleValue())
		}
		ctx.measuringSources[i].bind(blk)
	}
	for i, col := range e.projectionCols {
		if i >= len(ctx.projectionSources) {
			break
		}
		blk := input.Column(col.Name)
		if blk == nil {
			return errors.Annotatef(ErrSchemaMismatch, "projection column %s missing from batch", col.Name)
		}
		if blk.Kind() != ctx.projectionKinds[i] || blk.IsSingleValue() != ctx.projectionSingle[i] {
			return errors.Annotatef(ErrSchemaMismatch,
				"projection column %s changed to kind %s (single=%v)", col.Name, blk.Kind(), blk.IsSingleValue())
		}
		ctx.projectionSources[i].bind(blk)
	}
	return nil
}

// initForEmptyBatch installs the degenerate fallback schema used when a
// scope never observes a batch with readers: every column is typed as
// string. This mirrors the historical behavior of the system this
// aggregate interoperates with and is deliberately not generalized.
func (e *ArgMinMax) initForEmptyBatch(ctx *ArgMinMaxEvalContext) {
	if ctx.schemaInitialized {
		return
	}
	ctx.schemaInitialized = true

	names := make([]string, len(e.measuringCols))
	colTypes := make([]types.ColumnType, len(e.measuringCols))
	for i, col := range e.measuringCols {
		names[i] = col.Name
		colTypes[i] = types.TypeString
	}
	ctx.measuringSchema = types.NewSchema(names, colTypes)

	names = make([]string, len(e.projectionCols))
	colTypes = make([]types.ColumnType, len(e.projectionCols))
	for i, col := range e.projectionCols {
		names[i] = col.Name
		colTypes[i] = types.TypeString
	}
	ctx.projectionSchema = types.NewSchema(names, colTypes)
}

// Aggregate advances the non-grouped scope by one batch using the batch
// protocol: the whole batch is scanned for the batch-local winner set
// first, and projection values are fetched only for the rows that survive
// the scan.
func (e *ArgMinMax) Aggregate(ctx *ArgMinMaxEvalContext, length int, holder *AggregationResultHolder, input *chunk.Chunk) error {
	if input == nil {
		// Structurally empty batch: nothing to scan. The fallback schema
		// is installed at extraction time if the scope stays empty.
		return nil
	}
	if err := e.initWithBatch(ctx, input); err != nil {
		return err
	}
	state := holder.GetResult()
	if state == nil {
		state = NewArgMinMaxState(ctx.measuringSchema, ctx.projectionSchema)
	}

	var rowIDs []int
	for i := range length {
		res, err := state.compareAndSetKey(ctx.measuringSources, i, e.isMax)
		if err != nil {
			return err
		}
		switch res {
		case CompareTie:
			rowIDs = append(rowIDs, i)
		case CompareNewKey:
			rowIDs = rowIDs[:0]
			rowIDs = append(rowIDs, i)
		}
	}
	for _, rowID := range rowIDs {
		state.addRow(ctx.projectionSources, rowID)
	}

	holder.SetResult(state)
	return nil
}

// AggregateGroupBySV advances grouped scopes for a batch with one group id
// per row, using the incremental protocol: every row immediately mutates
// its own group's state, since consecutive rows may target different
// groups.
func (e *ArgMinMax) AggregateGroupBySV(ctx *ArgMinMaxEvalContext, length int, groupIDs []int, holder *GroupByResultHolder, input *chunk.Chunk) error {
	if input == nil {
		return nil
	}
	if err := e.initWithBatch(ctx, input); err != nil {
		return err
	}
	for i := range length {
		if err := e.updateGroupResult(ctx, holder, i, groupIDs[i]); err != nil {
			return err
		}
	}
	return nil
}

// AggregateGroupByMV advances grouped scopes for a batch with a group-id
// sequence per row. The row participates independently in every group it
// belongs to.
func (e *ArgMinMax) AggregateGroupByMV(ctx *ArgMinMaxEvalContext, length int, groupIDs [][]int, holder *GroupByResultHolder, input *chunk.Chunk) error {
	if input == nil {
		return nil
	}
	if err := e.initWithBatch(ctx, input); err != nil {
		return err
	}
	for i := range length {
		for _, groupID := range groupIDs[i] {
			if err := e.updateGroupResult(ctx, holder, i, groupID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *ArgMinMax) updateGroupResult(ctx *ArgMinMaxEvalContext, holder *GroupByResultHolder, row, groupID int) error {
	state := holder.GetResult(groupID)
	if state == nil {
		state = NewArgMinMaxState(ctx.measuringSchema, ctx.projectionSchema)
		holder.SetResultForKey(groupID, state)
	}
	res, err := state.compareAndSetKey(ctx.measuringSources, row, e.isMax)
	if err != nil {
		return err
	}
	switch res {
	case CompareTie:
		state.addRow(ctx.projectionSources, row)
	case CompareNewKey:
		state.setToNewRow(ctx.projectionSources, row)
	}
	return nil
}

// ExtractAggregationResult returns the final state of the non-grouped
// scope. A scope that never saw a row yields an empty state carrying the
// fallback schema, not an error.
func (e *ArgMinMax) ExtractAggregationResult(ctx *ArgMinMaxEvalContext, holder *AggregationResultHolder) *ArgMinMaxState {
	if state := holder.GetResult(); state != nil {
		return state
	}
	e.initForEmptyBatch(ctx)
	return NewArgMinMaxState(ctx.measuringSchema, ctx.projectionSchema)
}

// ExtractGroupByResult returns the final state of one group. A group id
// never routed to yields an empty, schema-valid state.
func (e *ArgMinMax) ExtractGroupByResult(ctx *ArgMinMaxEvalContext, holder *GroupByResultHolder, groupID int) *ArgMinMaxState {
	if state := holder.GetResult(groupID); state != nil {
		return state
	}
	e.initForEmptyBatch(ctx)
	return NewArgMinMaxState(ctx.measuringSchema, ctx.projectionSchema)
}

// MergePartialResult merges two partial states produced by any workers of
// this aggregate, in any pairing order.
func (e *ArgMinMax) MergePartialResult(a, b *ArgMinMaxState) (*ArgMinMaxState, error) {
	if a == nil {
		return b, nil
	}
	return a.Merge(b, e.isMax)
}
