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

// Instruction is one operation in a block. Payload fields beyond the
// operand list are populated per opcode by the [Builder]; accessors return
// zero values for opcodes that do not carry the payload.
type Instruction struct {
	op       Opcode
	block    *Block
	index    int // position in block.Instrs
	operands []*Operand
	result   *Value // nil for instructions without a result
	loc      Location
	scope    *DebugScope

	// payloads
	decl            *Decl   // alloc_ref, alloc_box, alloc_stack, debug_value
	varName         string  // debug_value auxiliary variable info
	global          *Global // global_addr
	field           *Field  // struct_extract, ref_element_addr
	caseName        string  // unchecked_enum_data
	elemIndex       int     // tuple_extract, index_addr
	canAllocOnStack bool    // alloc_ref, alloc_ref_dynamic
}

// Op returns the instruction's opcode.
func (inst *Instruction) Op() Opcode { return inst.op }

// Block returns the containing block.
func (inst *Instruction) Block() *Block { return inst.block }

// Parent returns the containing function.
func (inst *Instruction) Parent() *Function { return inst.block.fn }

// Index returns the instruction's position in its block.
func (inst *Instruction) Index() int { return inst.index }

// Operands returns the instruction's operand edges. The slice is owned by
// the instruction and must not be modified.
func (inst *Instruction) Operands() []*Operand { return inst.operands }

// Operand returns the i-th operand edge.
func (inst *Instruction) Operand(i int) *Operand { return inst.operands[i] }

// NumOperands returns the number of operands.
func (inst *Instruction) NumOperands() int { return len(inst.operands) }

// Result returns the value the instruction produces, or nil.
func (inst *Instruction) Result() *Value { return inst.result }

// Loc returns the instruction's source location.
func (inst *Instruction) Loc() Location { return inst.loc }

// Scope returns the instruction's debug scope, or nil.
func (inst *Instruction) Scope() *DebugScope { return inst.scope }

// Decl returns the declaration attached to the instruction, or nil. Only
// allocations and debug bindings carry one.
func (inst *Instruction) Decl() *Decl { return inst.decl }

// Global returns the global referenced by a global_addr, or nil.
func (inst *Instruction) Global() *Global { return inst.global }

// Field returns the projected field of a struct_extract or
// ref_element_addr, or nil.
func (inst *Instruction) Field() *Field { return inst.field }

// CaseName returns the enum case of an unchecked_enum_data.
func (inst *Instruction) CaseName() string { return inst.caseName }

// ElemIndex returns the element index of a tuple_extract or index_addr.
func (inst *Instruction) ElemIndex() int { return inst.elemIndex }

// CanAllocOnStack reports whether an alloc_ref or alloc_ref_dynamic was
// promoted to a stack allocation.
func (inst *Instruction) CanAllocOnStack() bool { return inst.canAllocOnStack }

// DebugBinding is the debug-binding facet of an instruction: the view of an
// instruction that associates a value with a declaration or name for
// diagnostics.
type DebugBinding struct {
	inst *Instruction
}

// AsDebugBinding returns the instruction's debug-binding facet, if it has
// one. debug_value always binds; alloc_stack and alloc_box bind when they
// carry variable info.
func (inst *Instruction) AsDebugBinding() (DebugBinding, bool) {
	switch inst.op {
	case OpDebugValue:
		return DebugBinding{inst: inst}, true

	case OpAllocStack, OpAllocBox:
		if inst.decl != nil || inst.varName != "" {
			return DebugBinding{inst: inst}, true
		}
	}

	return DebugBinding{}, false
}

// Inst returns the underlying instruction.
func (b DebugBinding) Inst() *Instruction { return b.inst }

// Decl returns the bound declaration, or nil when the binding only carries
// a plain name.
func (b DebugBinding) Decl() *Decl { return b.inst.decl }

// VarName returns the auxiliary variable name recorded with the binding.
func (b DebugBinding) VarName() string { return b.inst.varName }

// Scope returns the binding's debug scope, or nil.
func (b DebugBinding) Scope() *DebugScope { return b.inst.scope }

// Loc returns the binding instruction's own source location.
func (b DebugBinding) Loc() Location { return b.inst.loc }
