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

import "github.com/pingcap/errors"

var (
	// ErrUnsupportedType is returned at schema-discovery time when a
	// measuring or projection column has a runtime kind outside the
	// supported set, or when a measuring column is multi-valued.
	ErrUnsupportedType = errors.New("unsupported column type for arg_min/arg_max")

	// ErrSchemaMismatch is returned when a batch disagrees with the schema
	// discovered from the first batch of the same execution context. The
	// upstream column-resolution contract guarantees this never happens;
	// it is checked defensively on every re-bind.
	ErrSchemaMismatch = errors.New("column schema changed between batches")

	// ErrInvalidArguments is returned by Build when the aggregate
	// declaration does not follow the argument convention.
	ErrInvalidArguments = errors.New("invalid arg_min/arg_max arguments")
)
