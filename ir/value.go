// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package ir

import "fmt"

// Value is a node in the def-use graph: a function argument or the result
// of an instruction. Values are created by the [Builder] and referenced,
// never copied.
type Value struct {
	num  int
	typ  *Type
	def  *Instruction // nil for function arguments
	fn   *Function
	decl *Decl  // set on declared function arguments
	name string // argument name, for printing
	uses []*Operand
}

// Type returns the type of the value.
func (v *Value) Type() *Type { return v.typ }

// Def returns the defining instruction, or nil when the value is a function
// argument.
func (v *Value) Def() *Instruction { return v.def }

// IsArgument reports whether the value is a function argument.
func (v *Value) IsArgument() bool { return v.def == nil }

// Decl returns the source declaration attached to a function argument, or
// nil.
func (v *Value) Decl() *Decl { return v.decl }

// Parent returns the function containing the value.
func (v *Value) Parent() *Function { return v.fn }

// Uses returns the operand edges consuming this value, in creation order.
// The returned slice is owned by the value and must not be modified.
func (v *Value) Uses() []*Operand { return v.uses }

func (v *Value) String() string {
	if v.IsArgument() {
		return fmt.Sprintf("%%%d (arg %s) : $%s", v.num, v.name, v.typ)
	}

	return fmt.Sprintf("%%%d = %s : $%s", v.num, v.def.Op(), v.typ)
}

// Operand is a single use edge from a consuming instruction to one of its
// operand values.
type Operand struct {
	user  *Instruction
	index int
	value *Value

	// typeDependent marks operands that only pin a type and carry no data
	// flow. Analyses skip them.
	typeDependent bool
}

// Get returns the value the operand consumes.
func (o *Operand) Get() *Value { return o.value }

// User returns the instruction owning the operand.
func (o *Operand) User() *Instruction { return o.user }

// Index returns the operand's position in the user's operand list.
func (o *Operand) Index() int { return o.index }

// TypeDependent reports whether the operand is a type-only edge.
func (o *Operand) TypeDependent() bool { return o.typeDependent }
