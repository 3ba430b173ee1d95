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

// Package expression carries the argument expressions handed down by the
// outer declaration layer. Only the shapes the aggregate argument
// convention needs exist here: column references and literals. Resolution
// of a column reference to values goes through chunk lookup by name; there
// is no evaluation machinery.
package expression

import "strconv"

// Expression is an argument expression of an aggregate declaration.
type Expression interface {
	String() string
}

// Column is a reference to a column by name.
type Column struct {
	Name string
}

// NewColumn creates a column reference expression.
func NewColumn(name string) *Column {
	return &Column{Name: name}
}

// String implements Expression.
func (c *Column) String() string {
	return c.Name
}

// IntLiteral is an integer literal argument.
type IntLiteral struct {
	Val int64
}

// NewIntLiteral creates an integer literal expression.
func NewIntLiteral(v int64) *IntLiteral {
	return &IntLiteral{Val: v}
}

// String implements Expression.
func (l *IntLiteral) String() string {
	return strconv.FormatInt(l.Val, 10)
}

// StringLiteral is a string literal argument, used for the opaque function
// id that correlates sibling aggregate instances.
type StringLiteral struct {
	Val string
}

// NewStringLiteral creates a string literal expression.
func NewStringLiteral(v string) *StringLiteral {
	return &StringLiteral{Val: v}
}

// String implements Expression.
func (l *StringLiteral) String() string {
	return l.Val
}
