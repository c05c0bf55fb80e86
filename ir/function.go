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

import (
	"iter"
	"strings"
)

// Module is a collection of functions and globals.
type Module struct {
	Name      string
	Functions []*Function
	Globals   []*Global
}

// Function is a list of basic blocks in layout order.
type Function struct {
	Name   string
	Blocks []*Block
	Params []*Value

	// Semantics holds the function's semantics attributes.
	Semantics []string

	// Implicit marks functions whose declaration was synthesized by the
	// frontend rather than written by the user.
	Implicit bool

	// AutoGenerated marks functions whose body location is
	// compiler-generated.
	AutoGenerated bool

	// SelfType is the nominal type of the self parameter when the function
	// is a method, nil otherwise.
	SelfType *NominalType

	// Scope is the function's top-level debug scope.
	Scope *DebugScope

	nvalues int
}

// HasSemanticsAttrPrefix reports whether any semantics attribute of the
// function starts with prefix.
func (f *Function) HasSemanticsAttrPrefix(prefix string) bool {
	for _, attr := range f.Semantics {
		if strings.HasPrefix(attr, prefix) {
			return true
		}
	}

	return false
}

// Instructions yields every instruction of the function in block layout
// order.
func (f *Function) Instructions() iter.Seq[*Instruction] {
	return func(yield func(*Instruction) bool) {
		for _, b := range f.Blocks {
			for _, inst := range b.Instrs {
				if !yield(inst) {
					return
				}
			}
		}
	}
}

// Block is a basic block: a sequence of instructions executed in order.
type Block struct {
	fn     *Function
	index  int
	Instrs []*Instruction
}

// Parent returns the function containing the block.
func (b *Block) Parent() *Function { return b.fn }

// Index returns the block's position in the function's layout.
func (b *Block) Index() int { return b.index }
